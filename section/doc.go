// Package section implements the fixed binary layout of catman AP measurement
// files: the file header, the per-channel headers and the extended channel
// header.
//
// # File Layout
//
// A catman file is little-endian throughout and consists of a file header,
// one channel header per channel, and a single bulk sample payload:
//
//	┌───────────────────────────────────────────────┐
//	│ File header                                   │
//	│   uint16  magic (5012)                        │
//	│   int32   data offset (payload start)         │
//	│   string  file comment (int16 length prefix)  │
//	│   int16   channel count                       │
//	├───────────────────────────────────────────────┤
//	│ Channel header × channel count                │
//	├───────────────────────────────────────────────┤
//	│ Sample payload, channel-wise in header order  │
//	└───────────────────────────────────────────────┘
//
// # Channel Header
//
// Each channel header carries the channel index, entry count, name, unit and
// comment, the storage format, the acquisition time, an extended header, the
// linearization fields and the formula/sensor strings. Strings are
// length-prefixed (int16, or int32 for the sensor info) and not padded.
//
// # Extended Header
//
// The extended header is a fixed 148-byte struct whose ExportFormat field
// selects the stored sample width (8, 4 or 2 bytes). Catman aligns its fields
// with explicit padding, so the struct is parsed field by field rather than
// copied. When the declared extended header size disagrees with the fixed
// layout, the reader skips to the declared end and assumes double precision,
// so the payload is still recoverable even if the header format revision is
// unknown.
//
// # Sample Payload
//
// The payload starts at the data offset declared in the file header. Samples
// are stored channel-wise, each channel contiguous, in header order:
//
//	width 8: entry count × float64
//	width 4: entry count × float32
//	width 2: float64 min, float64 max, entry count × uint16
//	         sample = raw × (max − min) / 32767 + min
//
// Parsing is strict: any field extending past the end of the stream fails
// with a format error, and no partial result is produced.
package section
