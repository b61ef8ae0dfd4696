package section

import (
	"fmt"
	"math"
	"strings"

	"github.com/strainstack/catread/endian"
	"github.com/strainstack/catread/errs"
)

// Reader is a sequential little-endian cursor over a catman byte stream.
//
// Every read validates the remaining length first, so a truncated file fails
// with errs.ErrTruncatedData at the first field that runs past the end, never
// with an index panic. Reader is not safe for concurrent use.
type Reader struct {
	data   []byte
	off    int
	engine endian.EndianEngine
}

// NewReader creates a Reader over data using the catman byte order.
func NewReader(data []byte) *Reader {
	return &Reader{
		data:   data,
		engine: endian.GetLittleEndianEngine(),
	}
}

// Offset returns the current read position.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Len returns the total stream length.
func (r *Reader) Len() int {
	return len(r.data)
}

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > len(r.data) {
		return fmt.Errorf("%w: seek to %d in %d-byte stream", errs.ErrTruncatedData, off, len(r.data))
	}
	r.off = off

	return nil
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) error {
	if n < 0 || r.Remaining() < n {
		return r.truncated("skip", n)
	}
	r.off += n

	return nil
}

func (r *Reader) take(field string, n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, r.truncated(field, n)
	}
	b := r.data[r.off : r.off+n]
	r.off += n

	return b, nil
}

func (r *Reader) truncated(field string, n int) error {
	return fmt.Errorf("%w: %s needs %d bytes at offset %d, %d remain",
		errs.ErrTruncatedData, field, n, r.off, r.Remaining())
}

// Byte reads one byte.
func (r *Reader) Byte() (byte, error) {
	b, err := r.take("byte", 1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// Uint16 reads an unsigned 16-bit integer.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take("uint16", 2)
	if err != nil {
		return 0, err
	}

	return r.engine.Uint16(b), nil
}

// Int16 reads a signed 16-bit integer.
func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()

	return int16(v), err
}

// Int32 reads a signed 32-bit integer.
func (r *Reader) Int32() (int32, error) {
	b, err := r.take("int32", 4)
	if err != nil {
		return 0, err
	}

	return int32(r.engine.Uint32(b)), nil
}

// Float32 reads an IEEE 754 single-precision value.
func (r *Reader) Float32() (float32, error) {
	b, err := r.take("float32", 4)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(r.engine.Uint32(b)), nil
}

// Float64 reads an IEEE 754 double-precision value.
func (r *Reader) Float64() (float64, error) {
	b, err := r.take("float64", 8)
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(r.engine.Uint64(b)), nil
}

// String reads a fixed-width string field, trimming trailing NUL padding.
func (r *Reader) String(n int) (string, error) {
	b, err := r.take("string", n)
	if err != nil {
		return "", err
	}

	return strings.TrimRight(string(b), "\x00"), nil
}

// ShortString reads a string with an int16 length prefix.
func (r *Reader) ShortString() (string, error) {
	n, err := r.Int16()
	if err != nil {
		return "", err
	}

	return r.prefixedString(int(n))
}

// LongString reads a string with an int32 length prefix.
func (r *Reader) LongString() (string, error) {
	n, err := r.Int32()
	if err != nil {
		return "", err
	}

	return r.prefixedString(int(n))
}

func (r *Reader) prefixedString(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative string length %d at offset %d", errs.ErrInvalidFormat, n, r.off)
	}
	b, err := r.take("string", n)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
