// Package format defines the typed constants shared by the catread packages:
// channel storage formats, sample precisions and archive (outer compression)
// types.
package format

type (
	ChannelFormat uint8
	Precision     uint8
	ArchiveType   uint8
)

const (
	FormatNumeric ChannelFormat = 0 // FormatNumeric holds fixed-width floating point samples.
	FormatString  ChannelFormat = 1 // FormatString holds text entries (not decodable).
	FormatBinary  ChannelFormat = 2 // FormatBinary holds opaque binary objects (not decodable).

	// Precision values are the stored width of one sample in bytes, derived
	// from the ExportFormat field of the extended channel header.
	PrecisionDouble Precision = 8 // PrecisionDouble stores IEEE 754 float64 samples.
	PrecisionSingle Precision = 4 // PrecisionSingle stores IEEE 754 float32 samples.
	PrecisionScaled Precision = 2 // PrecisionScaled stores uint16 samples scaled into a min/max range.

	ArchiveNone ArchiveType = 0 // ArchiveNone is a plain catman file.
	ArchiveGzip ArchiveType = 1 // ArchiveGzip is a gzip-archived recording.
	ArchiveZstd ArchiveType = 2 // ArchiveZstd is a Zstandard-archived recording.
	ArchiveLZ4  ArchiveType = 3 // ArchiveLZ4 is an LZ4-frame-archived recording.
	ArchiveS2   ArchiveType = 4 // ArchiveS2 is an S2/Snappy-archived recording.
)

func (f ChannelFormat) String() string {
	switch f {
	case FormatNumeric:
		return "Numeric"
	case FormatString:
		return "String"
	case FormatBinary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// SampleWidth returns the width of one stored sample in bytes.
func (p Precision) SampleWidth() int {
	return int(p)
}

func (p Precision) String() string {
	switch p {
	case PrecisionDouble:
		return "Double"
	case PrecisionSingle:
		return "Single"
	case PrecisionScaled:
		return "Scaled16"
	default:
		return "Unknown"
	}
}

func (a ArchiveType) String() string {
	switch a {
	case ArchiveNone:
		return "None"
	case ArchiveGzip:
		return "Gzip"
	case ArchiveZstd:
		return "Zstd"
	case ArchiveLZ4:
		return "LZ4"
	case ArchiveS2:
		return "S2"
	default:
		return "Unknown"
	}
}
