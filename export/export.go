// Package export serializes decoded channels and groups to tabular text.
//
// Two modes are supported. CSV is tab-delimited with the time axis as the
// first column when present. JSON is keyed: "X" holds the time samples and
// "Y1".."Yn" the data channels, 1-indexed in group order. Both degrade
// gracefully for channels without a resolved time axis by omitting the time
// column/key. All text output is UTF-8.
//
// Export only reads the decoded model; it never modifies channels or groups.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/strainstack/catread/channel"
)

// Mode selects the output serialization.
type Mode string

const (
	CSV  Mode = "csv"
	JSON Mode = "json"
)

// WriteChannel serializes one data channel with its (possibly nil) time axis.
func WriteChannel(w io.Writer, mode Mode, timeAxis, c *channel.Channel) error {
	switch mode {
	case CSV:
		return writeChannelCSV(w, timeAxis, c)
	case JSON:
		return writeChannelJSON(w, timeAxis, c)
	default:
		return fmt.Errorf("export: unknown mode %q", mode)
	}
}

// WriteGroup serializes a group: the time axis against every data channel,
// aligned by sample index.
func WriteGroup(w io.Writer, mode Mode, g *channel.Group) error {
	switch mode {
	case CSV:
		return writeGroupCSV(w, g)
	case JSON:
		return writeGroupJSON(w, g)
	default:
		return fmt.Errorf("export: unknown mode %q", mode)
	}
}

func writeChannelCSV(w io.Writer, timeAxis, c *channel.Channel) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	for i, v := range c.Samples {
		record := make([]string, 0, 2)
		if timeAxis != nil && i < timeAxis.Len() {
			record = append(record, formatSample(timeAxis.Samples[i]))
		}
		record = append(record, formatSample(v))
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeGroupCSV(w io.Writer, g *channel.Group) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	for i := range g.Len() {
		record := make([]string, 0, len(g.Data)+1)
		if g.Time != nil {
			record = append(record, formatSample(g.Time.Samples[i]))
		}
		for _, c := range g.Data {
			if i < c.Len() {
				record = append(record, formatSample(c.Samples[i]))
			} else {
				record = append(record, "")
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

func writeChannelJSON(w io.Writer, timeAxis, c *channel.Channel) error {
	doc := make(map[string][]float64, 2)
	if timeAxis != nil {
		doc["X"] = timeAxis.Samples
	}
	doc["Y"] = c.Samples

	return writeIndented(w, doc)
}

func writeGroupJSON(w io.Writer, g *channel.Group) error {
	doc := make(map[string][]float64, len(g.Data)+1)
	if g.Time != nil {
		doc["X"] = g.Time.Samples
	}
	for i, c := range g.Data {
		doc["Y"+strconv.Itoa(i+1)] = c.Samples
	}

	return writeIndented(w, doc)
}

func writeIndented(w io.Writer, doc map[string][]float64) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FileName derives the output file name from the source name and the channel
// or group name, with spaces flattened to underscores.
func FileName(sourceName, name string, mode Mode, gzipped bool) string {
	flat := strings.ReplaceAll(name, " ", "_")
	out := fmt.Sprintf("%s.%s.%s", sourceName, flat, mode)
	if gzipped {
		out += ".gz"
	}

	return out
}

// SaveGroup writes a group under dir using the derived file name and returns
// the written path. With gzipped set, output is gzip-compressed and the file
// name gains a .gz suffix.
func SaveGroup(dir, sourceName string, g *channel.Group, mode Mode, gzipped bool) (string, error) {
	path := filepath.Join(dir, FileName(sourceName, g.Name(), mode, gzipped))

	err := writeTo(path, gzipped, func(w io.Writer) error {
		return WriteGroup(w, mode, g)
	})
	if err != nil {
		return "", err
	}

	return path, nil
}

// SaveChannel writes one channel under dir using the derived file name.
func SaveChannel(dir, sourceName string, timeAxis, c *channel.Channel, mode Mode, gzipped bool) (string, error) {
	path := filepath.Join(dir, FileName(sourceName, c.Name, mode, gzipped))

	err := writeTo(path, gzipped, func(w io.Writer) error {
		return WriteChannel(w, mode, timeAxis, c)
	})
	if err != nil {
		return "", err
	}

	return path, nil
}

func writeTo(path string, gzipped bool, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var w io.Writer = f
	var gw *gzip.Writer
	if gzipped {
		gw = gzip.NewWriter(f)
		w = gw
	}

	if err := write(w); err != nil {
		f.Close()
		return err
	}
	if gw != nil {
		if err := gw.Close(); err != nil {
			f.Close()
			return err
		}
	}

	return f.Close()
}
