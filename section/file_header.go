package section

import (
	"fmt"
	"math"

	"github.com/strainstack/catread/endian"
	"github.com/strainstack/catread/errs"
)

// FileHeader is the fixed header at the start of every catman file. It
// declares where the sample payload begins and how many channel headers
// follow.
type FileHeader struct {
	// Comment is the free-text file comment written by the acquisition tool.
	Comment string
	// DataOffset is the absolute byte offset of the sample payload.
	DataOffset int32
	// ChannelCount is the number of channel headers following this header.
	ChannelCount int16
}

// Parse reads the file header from the current cursor position.
//
// It fails with errs.ErrInvalidMagicNumber when the stream does not start
// with the catman file identifier, and with errs.ErrInvalidChannelCount or
// errs.ErrInvalidDataOffset when the declared counts cannot describe a valid
// file.
func (h *FileHeader) Parse(r *Reader) error {
	if r.Remaining() < FileHeaderMinSize {
		return fmt.Errorf("%w: file header needs at least %d bytes", errs.ErrInvalidHeaderSize, FileHeaderMinSize)
	}

	magic, err := r.Uint16()
	if err != nil {
		return err
	}
	if magic != MagicNumber {
		return fmt.Errorf("%w: got %d, want %d", errs.ErrInvalidMagicNumber, magic, MagicNumber)
	}

	if h.DataOffset, err = r.Int32(); err != nil {
		return err
	}
	if h.Comment, err = r.ShortString(); err != nil {
		return err
	}
	count, err := r.Int16()
	if err != nil {
		return err
	}

	if count < 0 {
		return fmt.Errorf("%w: %d", errs.ErrInvalidChannelCount, count)
	}
	if h.DataOffset < 0 || int(h.DataOffset) > r.Len() {
		return fmt.Errorf("%w: %d in %d-byte stream", errs.ErrInvalidDataOffset, h.DataOffset, r.Len())
	}
	h.ChannelCount = count

	return nil
}

// Bytes serializes the file header. Used by fixtures and tests; catread never
// writes measurement files.
func (h *FileHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := engine.AppendUint16(nil, MagicNumber)
	b = engine.AppendUint32(b, uint32(h.DataOffset))
	b = appendShortString(engine, b, h.Comment)
	b = engine.AppendUint16(b, uint16(h.ChannelCount))

	return b
}

// Size returns the serialized header size in bytes.
func (h *FileHeader) Size() int {
	return FileHeaderMinSize + len(h.Comment)
}

func appendShortString(engine endian.EndianEngine, b []byte, s string) []byte {
	b = engine.AppendUint16(b, uint16(len(s)))

	return append(b, s...)
}

func appendLongString(engine endian.EndianEngine, b []byte, s string) []byte {
	b = engine.AppendUint32(b, uint32(len(s)))

	return append(b, s...)
}

func appendFixedString(b []byte, s string, n int) []byte {
	if len(s) > n {
		s = s[:n]
	}
	b = append(b, s...)
	for i := len(s); i < n; i++ {
		b = append(b, 0)
	}

	return b
}

func appendFloat32(engine endian.EndianEngine, b []byte, v float32) []byte {
	return engine.AppendUint32(b, math.Float32bits(v))
}

func appendFloat64(engine endian.EndianEngine, b []byte, v float64) []byte {
	return engine.AppendUint64(b, math.Float64bits(v))
}
