// Package testfile assembles synthetic catman byte streams for tests. It is
// deliberately internal: catread does not support writing measurement files,
// and this builder exists only so tests can exercise the decoder without
// binary fixtures in the repository.
package testfile

import (
	"math"

	"github.com/strainstack/catread/endian"
	"github.com/strainstack/catread/format"
	"github.com/strainstack/catread/section"
)

// Channel describes one synthetic channel.
type Channel struct {
	Name    string
	Unit    string
	Comment string
	Samples []float64
	// ExportFormat selects the stored width: 0 float64, 1 float32, 2 scaled
	// uint16.
	ExportFormat byte
	// Format defaults to numeric.
	Format format.ChannelFormat
	// ExtraDeclared inflates the declared entry count past the written
	// payload, for truncation tests.
	ExtraDeclared int32
}

// Build assembles a complete little-endian catman file with the given file
// comment and channels.
func Build(comment string, channels ...Channel) []byte {
	engine := endian.GetLittleEndianEngine()

	var headerBytes []byte
	for i, c := range channels {
		hdr := section.ChannelHeader{
			Index:      int16(i + 1),
			EntryCount: int32(len(c.Samples)) + c.ExtraDeclared,
			Name:       c.Name,
			Unit:       c.Unit,
			Comment:    c.Comment,
			Format:     c.Format,
			Ext:        section.ExtHeader{ExportFormat: c.ExportFormat},
		}
		headerBytes = append(headerBytes, hdr.Bytes()...)
	}

	fileHeader := section.FileHeader{
		Comment:      comment,
		ChannelCount: int16(len(channels)),
	}
	fileHeader.DataOffset = int32(fileHeader.Size() + len(headerBytes))

	data := fileHeader.Bytes()
	data = append(data, headerBytes...)
	for _, c := range channels {
		data = appendPayload(engine, data, c)
	}

	return data
}

func appendPayload(engine endian.EndianEngine, data []byte, c Channel) []byte {
	switch c.ExportFormat {
	case 1:
		for _, v := range c.Samples {
			data = engine.AppendUint32(data, math.Float32bits(float32(v)))
		}
	case 2:
		lo, hi := minMax(c.Samples)
		data = engine.AppendUint64(data, math.Float64bits(lo))
		data = engine.AppendUint64(data, math.Float64bits(hi))
		sf := (hi - lo) / 32767
		for _, v := range c.Samples {
			raw := uint16(0)
			if sf > 0 {
				raw = uint16(math.Round((v - lo) / sf))
			}
			data = engine.AppendUint16(data, raw)
		}
	default:
		for _, v := range c.Samples {
			data = engine.AppendUint64(data, math.Float64bits(v))
		}
	}

	return data
}

func minMax(samples []float64) (float64, float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	lo, hi := samples[0], samples[0]
	for _, v := range samples[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi
}

// Ramp returns n samples 0, step, 2*step and so on, convenient for time
// axes.
func Ramp(n int, step float64) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = float64(i) * step
	}

	return samples
}
