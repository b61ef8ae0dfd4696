// Package catread decodes catman AP binary measurement files into named data
// channels, associates each data channel with its time axis and partitions
// the channels into groups for analysis, plotting and export.
//
// # Basic Usage
//
// Reading a measurement file:
//
//	import "github.com/strainstack/catread"
//
//	file, err := catread.ReadFile("tensile_test.bin")
//	if err != nil {
//	    return err
//	}
//
//	for _, group := range file.Groups {
//	    fmt.Printf("%s: %d data channels at %s\n",
//	        group.Name(), len(group.Data), group.IntervalString())
//	}
//
// Archived recordings (.gz, .zst, .lz4, .s2) are detected by magic number and
// unwrapped transparently.
//
// # Time Resolution
//
// Catman does not mark time axes in the format. A channel counts as a time
// candidate when its name contains "time" or "Zeit" (case-insensitive); each
// data channel is matched to the time candidate with the same entry count.
// When several candidates tie, the earliest declared one wins by default;
// override with WithAmbiguityPolicy to defer or prompt. Channels with no
// matching time axis stay unresolved and form their own groups; that is a
// representable state, not an error.
//
// # Package Structure
//
// This package is the facade and decoder. The binary layout lives in
// section, the channel model and the resolution/grouping passes in channel,
// archive unwrapping in compress, and the export and plot collaborators in
// their own packages.
package catread

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Read decodes an in-memory catman byte stream.
func Read(data []byte, opts ...Option) (*DecodedFile, error) {
	decoder, err := NewDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// ReadFile decodes the catman file at path. The DecodedFile's source name is
// the file name without directory and extension unless WithSourceName
// overrides it.
func ReadFile(path string, opts ...Option) (*DecodedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catread: %w", err)
	}

	opts = append([]Option{WithSourceName(sourceName(path))}, opts...)

	return Read(data, opts...)
}

func sourceName(path string) string {
	base := filepath.Base(path)

	// Strip archive suffixes first so "run.bin.gz" and "run.bin" share a name.
	for _, ext := range []string{".gz", ".zst", ".lz4", ".s2"} {
		base = strings.TrimSuffix(base, ext)
	}

	return strings.TrimSuffix(base, filepath.Ext(base))
}
