package section

import (
	"testing"

	"github.com/strainstack/catread/errs"
	"github.com/strainstack/catread/format"
	"github.com/stretchr/testify/require"
)

func testChannelHeader() *ChannelHeader {
	return &ChannelHeader{
		Index:      1,
		EntryCount: 500,
		Name:       "Force - 1",
		Unit:       "kN",
		Comment:    "load cell, front",
		Format:     format.FormatNumeric,
		DW:         8,
		ReadTime:   44832.25,
		Ext: ExtHeader{
			T0:           0,
			Dt:           0.001,
			SensorType:   3,
			TareVal:      0.5,
			SerNo:        "HBM-004711",
			PhysUnit:     "kN",
			NativeUnit:   "mV/V",
			KFactor:      2.0,
			ExportFormat: 0,
		},
		ThermoType: -1,
		Formula:    "",
		SensorInfo: "bridge, 350 Ohm",
	}
}

func TestChannelHeader_RoundTrip(t *testing.T) {
	original := testChannelHeader()
	data := original.Bytes()

	parsed := &ChannelHeader{}
	r := NewReader(data)
	require.NoError(t, parsed.Parse(r))
	require.Equal(t, 0, r.Remaining())

	require.Equal(t, original.Index, parsed.Index)
	require.Equal(t, original.EntryCount, parsed.EntryCount)
	require.Equal(t, original.Name, parsed.Name)
	require.Equal(t, original.Unit, parsed.Unit)
	require.Equal(t, original.Comment, parsed.Comment)
	require.Equal(t, original.Format, parsed.Format)
	require.Equal(t, original.ReadTime, parsed.ReadTime)
	require.Equal(t, original.Ext, parsed.Ext)
	require.Equal(t, original.ThermoType, parsed.ThermoType)
	require.Equal(t, original.SensorInfo, parsed.SensorInfo)
}

func TestChannelHeader_Parse(t *testing.T) {
	t.Run("negative entry count", func(t *testing.T) {
		h := testChannelHeader()
		h.EntryCount = 10
		data := h.Bytes()
		// Overwrite the int32 entry count at offset 2 with -1.
		copy(data[2:6], []byte{0xFF, 0xFF, 0xFF, 0xFF})

		err := (&ChannelHeader{}).Parse(NewReader(data))
		require.ErrorIs(t, err, errs.ErrEntryCountMismatch)
	})

	t.Run("truncated mid-header", func(t *testing.T) {
		data := testChannelHeader().Bytes()

		err := (&ChannelHeader{}).Parse(NewReader(data[:len(data)/2]))
		require.ErrorIs(t, err, errs.ErrTruncatedData)
	})
}

func TestChannelHeader_PayloadSize(t *testing.T) {
	tests := []struct {
		name         string
		exportFormat byte
		entries      int32
		want         int
	}{
		{"double precision", 0, 100, 800},
		{"single precision", 1, 100, 400},
		{"scaled adds min/max prefix", 2, 100, 216},
		{"unknown falls back to double", 9, 10, 80},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := testChannelHeader()
			h.EntryCount = tt.entries
			h.Ext.ExportFormat = tt.exportFormat
			require.Equal(t, tt.want, h.PayloadSize())
		})
	}
}
