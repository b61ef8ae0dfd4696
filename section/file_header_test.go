package section

import (
	"testing"

	"github.com/strainstack/catread/errs"
	"github.com/stretchr/testify/require"
)

func TestFileHeader_Parse(t *testing.T) {
	t.Run("valid header", func(t *testing.T) {
		original := &FileHeader{
			Comment:      "tensile test rig 3",
			DataOffset:   64,
			ChannelCount: 4,
		}
		data := original.Bytes()
		data = append(data, make([]byte, 64)...) // room so DataOffset stays in range

		parsed := &FileHeader{}
		err := parsed.Parse(NewReader(data))

		require.NoError(t, err)
		require.Equal(t, original.Comment, parsed.Comment)
		require.Equal(t, original.DataOffset, parsed.DataOffset)
		require.Equal(t, original.ChannelCount, parsed.ChannelCount)
	})

	t.Run("empty comment", func(t *testing.T) {
		h := &FileHeader{DataOffset: 10, ChannelCount: 0}
		data := append(h.Bytes(), 0, 0)

		parsed := &FileHeader{}
		require.NoError(t, parsed.Parse(NewReader(data)))
		require.Empty(t, parsed.Comment)
	})

	t.Run("invalid magic number", func(t *testing.T) {
		data := (&FileHeader{DataOffset: 10}).Bytes()
		data[0] = 0x00
		data[1] = 0x00

		err := (&FileHeader{}).Parse(NewReader(data))
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidMagicNumber)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("too short", func(t *testing.T) {
		err := (&FileHeader{}).Parse(NewReader([]byte{0x94, 0x13, 0x00}))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("negative channel count", func(t *testing.T) {
		h := &FileHeader{DataOffset: 10, ChannelCount: -2}
		data := append(h.Bytes(), make([]byte, 8)...)

		err := (&FileHeader{}).Parse(NewReader(data))
		require.ErrorIs(t, err, errs.ErrInvalidChannelCount)
	})

	t.Run("data offset beyond end", func(t *testing.T) {
		h := &FileHeader{DataOffset: 9999, ChannelCount: 1}

		err := (&FileHeader{}).Parse(NewReader(h.Bytes()))
		require.ErrorIs(t, err, errs.ErrInvalidDataOffset)
	})

	t.Run("truncated comment", func(t *testing.T) {
		h := &FileHeader{Comment: "a very long comment", DataOffset: 10}
		data := h.Bytes()[:9] // cut inside the comment

		err := (&FileHeader{}).Parse(NewReader(data))
		require.ErrorIs(t, err, errs.ErrTruncatedData)
	})
}

func TestFileHeader_Size(t *testing.T) {
	h := &FileHeader{Comment: "abc", DataOffset: 1, ChannelCount: 1}
	require.Equal(t, len(h.Bytes()), h.Size())
}
