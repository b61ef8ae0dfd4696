package section

import (
	"testing"

	"github.com/strainstack/catread/errs"
	"github.com/strainstack/catread/format"
	"github.com/stretchr/testify/require"
)

func TestExtHeader_RoundTrip(t *testing.T) {
	original := &ExtHeader{
		T0:            1.5,
		Dt:            0.0005,
		SensorType:    7,
		SupplyVoltage: 5,
		TareVal:       0.25,
		ZeroVal:       -0.125,
		MeasRange:     20,
		InChar:        [4]float32{1, 2, 3, 4},
		SerNo:         "SN-0042",
		PhysUnit:      "bar",
		NativeUnit:    "mV/V",
		Slot:          2,
		SubSlot:       1,
		KFactor:       2.05,
		BFactor:       -0.5,
		ScaleType:     1,
		NominalRange:  25,
		CLCFactor:     1.0,
		ExportFormat:  1,
	}

	data := original.Bytes()
	require.Len(t, data, ExtHeaderSize)

	parsed := &ExtHeader{}
	r := NewReader(data)
	require.NoError(t, parsed.Parse(r, ExtHeaderSize))
	require.Equal(t, ExtHeaderSize, r.Offset())
	require.Equal(t, original, parsed)
}

func TestExtHeader_Parse_SizeMismatch(t *testing.T) {
	t.Run("larger declared size skips to declared end", func(t *testing.T) {
		ext := &ExtHeader{ExportFormat: 2}
		data := ext.Bytes()
		data = append(data, make([]byte, 10)...) // unknown revision: 10 extra bytes
		data = append(data, 0xAA)                // next field after the header

		parsed := &ExtHeader{}
		r := NewReader(data)
		require.NoError(t, parsed.Parse(r, ExtHeaderSize+10))

		// The fallback resets to double precision and leaves the cursor at the
		// declared end.
		require.Equal(t, byte(0), parsed.ExportFormat)
		require.Equal(t, format.PrecisionDouble, parsed.Precision())
		next, err := r.Byte()
		require.NoError(t, err)
		require.Equal(t, byte(0xAA), next)
	})

	t.Run("declared end beyond stream", func(t *testing.T) {
		data := make([]byte, 20)

		err := (&ExtHeader{}).Parse(NewReader(data), ExtHeaderSize)
		require.ErrorIs(t, err, errs.ErrTruncatedData)
	})
}

func TestExtHeader_Precision(t *testing.T) {
	tests := []struct {
		exportFormat byte
		want         format.Precision
	}{
		{0, format.PrecisionDouble},
		{1, format.PrecisionSingle},
		{2, format.PrecisionScaled},
		{7, format.PrecisionDouble},
	}
	for _, tt := range tests {
		h := &ExtHeader{ExportFormat: tt.exportFormat}
		require.Equal(t, tt.want, h.Precision(), "ExportFormat=%d", tt.exportFormat)
	}
}
