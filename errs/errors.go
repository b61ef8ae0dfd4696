// Package errs defines the sentinel errors shared across catread packages.
//
// Errors fall into two families:
//
//   - Format errors: the byte stream does not match the catman binary layout.
//     All of them wrap ErrInvalidFormat, so callers can match the whole family
//     with errors.Is(err, errs.ErrInvalidFormat). A format error aborts the
//     decode; no partial DecodedFile is returned.
//   - Resolution errors: a structurally invalid channel encountered while
//     associating time channels. These are recorded per channel and never
//     abort the rest of the file.
package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is the root of the format-error family. Every error raised
// while parsing the binary layout wraps it.
var ErrInvalidFormat = errors.New("invalid catman file format")

var (
	// ErrInvalidMagicNumber indicates the stream does not start with the
	// catman file identifier.
	ErrInvalidMagicNumber = formatErr("invalid magic number")

	// ErrInvalidHeaderSize indicates a header section is shorter than its
	// fixed size.
	ErrInvalidHeaderSize = formatErr("invalid header size")

	// ErrTruncatedData indicates the stream ended inside a declared field or
	// payload.
	ErrTruncatedData = formatErr("truncated data")

	// ErrEntryCountMismatch indicates a channel declares more entries than the
	// remaining payload can hold.
	ErrEntryCountMismatch = formatErr("declared entry count exceeds payload")

	// ErrInvalidChannelCount indicates a negative or absurd channel count in
	// the file header.
	ErrInvalidChannelCount = formatErr("invalid channel count")

	// ErrInvalidDataOffset indicates the header points the payload outside the
	// file.
	ErrInvalidDataOffset = formatErr("invalid data offset")

	// ErrUnsupportedChannelFormat indicates a channel stores non-numeric data
	// (string or binary object entries).
	ErrUnsupportedChannelFormat = formatErr("unsupported channel format")

	// ErrUnsupportedArchive indicates the input looks compressed but uses an
	// algorithm catread cannot open.
	ErrUnsupportedArchive = formatErr("unsupported archive format")
)

// ErrEmptyChannel reports a channel with zero-length samples found during time
// resolution. It is localized to the offending channel.
var ErrEmptyChannel = errors.New("channel has no samples")

// ErrAmbiguousTimeChannel reports that more than one time candidate matched a
// data channel's entry count. Advisory: resolution either applied the
// caller's ambiguity policy or left the channel unresolved, never a silent
// pick.
var ErrAmbiguousTimeChannel = errors.New("multiple matching time channels")

// ErrChannelNotFound reports a name lookup miss on a decoded file.
var ErrChannelNotFound = errors.New("channel not found")

func formatErr(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidFormat, msg)
}
