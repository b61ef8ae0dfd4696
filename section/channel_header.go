package section

import (
	"fmt"

	"github.com/strainstack/catread/endian"
	"github.com/strainstack/catread/errs"
	"github.com/strainstack/catread/format"
)

// ChannelHeader describes one channel: identity, entry count, storage format
// and the acquisition metadata needed to slice its samples out of the bulk
// payload.
type ChannelHeader struct {
	// Index is the channel number assigned by the acquisition tool.
	Index int16
	// EntryCount is the number of samples stored for this channel.
	EntryCount int32
	// Name is the channel name, free text and not guaranteed unique.
	Name string
	// Unit is the physical unit of the samples.
	Unit string
	// Comment is the per-channel free-text comment.
	Comment string
	// Format is the entry storage format; only numeric channels carry
	// decodable samples.
	Format format.ChannelFormat
	// DW is the data width indicator carried by the file.
	DW int16
	// ReadTime is the acquisition timestamp as written by catman.
	ReadTime float64
	// Ext is the extended header; its ExportFormat selects the sample width.
	Ext ExtHeader
	// LinMode and UserScale are the linearization mode and user scale flags.
	LinMode   byte
	UserScale byte
	// ThermoType is the thermocouple type indicator.
	ThermoType int16
	// Formula is the computation formula for derived channels.
	Formula string
	// SensorInfo is the sensor database description blob.
	SensorInfo string
}

// Parse reads one channel header from the current cursor position.
func (h *ChannelHeader) Parse(r *Reader) error {
	var err error
	if h.Index, err = r.Int16(); err != nil {
		return err
	}
	if h.EntryCount, err = r.Int32(); err != nil {
		return err
	}
	if h.EntryCount < 0 {
		return fmt.Errorf("%w: channel %d declares %d entries", errs.ErrEntryCountMismatch, h.Index, h.EntryCount)
	}
	if h.Name, err = r.ShortString(); err != nil {
		return err
	}
	if h.Unit, err = r.ShortString(); err != nil {
		return err
	}
	if h.Comment, err = r.ShortString(); err != nil {
		return err
	}

	rawFormat, err := r.Int16()
	if err != nil {
		return err
	}
	h.Format = format.ChannelFormat(rawFormat)
	if h.DW, err = r.Int16(); err != nil {
		return err
	}
	if h.ReadTime, err = r.Float64(); err != nil {
		return err
	}

	extSize, err := r.Int32()
	if err != nil {
		return err
	}
	if extSize < 0 {
		return fmt.Errorf("%w: channel %q declares extended header of %d bytes", errs.ErrInvalidHeaderSize, h.Name, extSize)
	}
	if err = h.Ext.Parse(r, int(extSize)); err != nil {
		return err
	}

	if h.LinMode, err = r.Byte(); err != nil {
		return err
	}
	if h.UserScale, err = r.Byte(); err != nil {
		return err
	}

	// Unknown linearization points precede the thermo type; only their count
	// matters for cursor advancement.
	npoi, err := r.Byte()
	if err != nil {
		return err
	}
	if err = r.Skip(int(npoi) * 8); err != nil {
		return err
	}

	if h.ThermoType, err = r.Int16(); err != nil {
		return err
	}
	if h.Formula, err = r.ShortString(); err != nil {
		return err
	}
	if h.SensorInfo, err = r.LongString(); err != nil {
		return err
	}

	return nil
}

// PayloadSize returns the number of payload bytes this channel occupies.
// Scaled channels prefix their samples with the min/max range doubles.
func (h *ChannelHeader) PayloadSize() int {
	size := int(h.EntryCount) * h.Ext.Precision().SampleWidth()
	if h.Ext.Precision() == format.PrecisionScaled {
		size += 16
	}

	return size
}

// Bytes serializes the channel header. Used by fixtures and tests.
func (h *ChannelHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := engine.AppendUint16(nil, uint16(h.Index))
	b = engine.AppendUint32(b, uint32(h.EntryCount))
	b = appendShortString(engine, b, h.Name)
	b = appendShortString(engine, b, h.Unit)
	b = appendShortString(engine, b, h.Comment)
	b = engine.AppendUint16(b, uint16(h.Format))
	b = engine.AppendUint16(b, uint16(h.DW))
	b = appendFloat64(engine, b, h.ReadTime)

	ext := h.Ext.Bytes()
	b = engine.AppendUint32(b, uint32(len(ext)))
	b = append(b, ext...)

	b = append(b, h.LinMode, h.UserScale)
	b = append(b, 0) // npoi
	b = engine.AppendUint16(b, uint16(h.ThermoType))
	b = appendShortString(engine, b, h.Formula)
	b = appendLongString(engine, b, h.SensorInfo)

	return b
}
