package section

import (
	"github.com/strainstack/catread/endian"
	"github.com/strainstack/catread/format"
)

// ExtHeader is the extended channel header: sensor, amplifier and scaling
// metadata plus the ExportFormat field that selects the stored sample width.
//
// Catman stores these fields byte-padded so that each value sits at an
// address divisible by its width; the explicit pad bytes below reproduce that
// alignment.
type ExtHeader struct {
	T0              float64
	Dt              float64
	SensorType      int16
	SupplyVoltage   int16
	FiltChar        int16
	FiltFreq        int16
	TareVal         float32
	ZeroVal         float32
	MeasRange       float32
	InChar          [4]float32
	SerNo           string
	PhysUnit        string
	NativeUnit      string
	Slot            int16
	SubSlot         int16
	AmpType         int16
	APType          int16
	KFactor         float32
	BFactor         float32
	MeasSig         int16
	AmpInput        int16
	HPFilt          int16
	OLImportInfo    byte
	ScaleType       byte
	SoftwareTareVal float32
	WriteProtected  byte
	NominalRange    float32
	CLCFactor       float32
	ExportFormat    byte
}

// Parse reads the extended header from the current cursor position.
//
// declaredSize is the size announced by the channel header. When the fixed
// layout consumes a different number of bytes, the file was written by an
// unknown catman revision: Parse reseeks to the declared end and forces
// ExportFormat to double precision so the payload can still be sliced.
func (h *ExtHeader) Parse(r *Reader, declaredSize int) error {
	start := r.Offset()

	if err := h.parseFixed(r); err != nil || r.Offset()-start != declaredSize {
		if seekErr := r.Seek(start + declaredSize); seekErr != nil {
			return seekErr
		}
		h.ExportFormat = 0
	}

	return nil
}

func (h *ExtHeader) parseFixed(r *Reader) error {
	var err error
	if h.T0, err = r.Float64(); err != nil {
		return err
	}
	if h.Dt, err = r.Float64(); err != nil {
		return err
	}
	if h.SensorType, err = r.Int16(); err != nil {
		return err
	}
	if h.SupplyVoltage, err = r.Int16(); err != nil {
		return err
	}
	if h.FiltChar, err = r.Int16(); err != nil {
		return err
	}
	if h.FiltFreq, err = r.Int16(); err != nil {
		return err
	}
	if h.TareVal, err = r.Float32(); err != nil {
		return err
	}
	if h.ZeroVal, err = r.Float32(); err != nil {
		return err
	}
	if h.MeasRange, err = r.Float32(); err != nil {
		return err
	}
	for i := range h.InChar {
		if h.InChar[i], err = r.Float32(); err != nil {
			return err
		}
	}
	if h.SerNo, err = r.String(serNoLen); err != nil {
		return err
	}
	if h.PhysUnit, err = r.String(physUnitLen); err != nil {
		return err
	}
	if h.NativeUnit, err = r.String(nativeUnitLen); err != nil {
		return err
	}
	if h.Slot, err = r.Int16(); err != nil {
		return err
	}
	if h.SubSlot, err = r.Int16(); err != nil {
		return err
	}
	if h.AmpType, err = r.Int16(); err != nil {
		return err
	}
	if h.APType, err = r.Int16(); err != nil {
		return err
	}
	if h.KFactor, err = r.Float32(); err != nil {
		return err
	}
	if h.BFactor, err = r.Float32(); err != nil {
		return err
	}
	if h.MeasSig, err = r.Int16(); err != nil {
		return err
	}
	if h.AmpInput, err = r.Int16(); err != nil {
		return err
	}
	if h.HPFilt, err = r.Int16(); err != nil {
		return err
	}
	if h.OLImportInfo, err = r.Byte(); err != nil {
		return err
	}
	if h.ScaleType, err = r.Byte(); err != nil {
		return err
	}
	if h.SoftwareTareVal, err = r.Float32(); err != nil {
		return err
	}
	if h.WriteProtected, err = r.Byte(); err != nil {
		return err
	}
	if err = r.Skip(extPadLen); err != nil {
		return err
	}
	if h.NominalRange, err = r.Float32(); err != nil {
		return err
	}
	if h.CLCFactor, err = r.Float32(); err != nil {
		return err
	}
	if h.ExportFormat, err = r.Byte(); err != nil {
		return err
	}

	return r.Skip(extReserveLen)
}

// Precision maps ExportFormat onto the stored sample width. Unknown values
// fall back to double precision, matching the header-mismatch fallback.
func (h *ExtHeader) Precision() format.Precision {
	switch h.ExportFormat {
	case 0:
		return format.PrecisionDouble
	case 1:
		return format.PrecisionSingle
	case 2:
		return format.PrecisionScaled
	default:
		return format.PrecisionDouble
	}
}

// Bytes serializes the extended header in the fixed 148-byte layout.
func (h *ExtHeader) Bytes() []byte {
	engine := endian.GetLittleEndianEngine()

	b := appendFloat64(engine, nil, h.T0)
	b = appendFloat64(engine, b, h.Dt)
	b = engine.AppendUint16(b, uint16(h.SensorType))
	b = engine.AppendUint16(b, uint16(h.SupplyVoltage))
	b = engine.AppendUint16(b, uint16(h.FiltChar))
	b = engine.AppendUint16(b, uint16(h.FiltFreq))
	b = appendFloat32(engine, b, h.TareVal)
	b = appendFloat32(engine, b, h.ZeroVal)
	b = appendFloat32(engine, b, h.MeasRange)
	for _, v := range h.InChar {
		b = appendFloat32(engine, b, v)
	}
	b = appendFixedString(b, h.SerNo, serNoLen)
	b = appendFixedString(b, h.PhysUnit, physUnitLen)
	b = appendFixedString(b, h.NativeUnit, nativeUnitLen)
	b = engine.AppendUint16(b, uint16(h.Slot))
	b = engine.AppendUint16(b, uint16(h.SubSlot))
	b = engine.AppendUint16(b, uint16(h.AmpType))
	b = engine.AppendUint16(b, uint16(h.APType))
	b = appendFloat32(engine, b, h.KFactor)
	b = appendFloat32(engine, b, h.BFactor)
	b = engine.AppendUint16(b, uint16(h.MeasSig))
	b = engine.AppendUint16(b, uint16(h.AmpInput))
	b = engine.AppendUint16(b, uint16(h.HPFilt))
	b = append(b, h.OLImportInfo, h.ScaleType)
	b = appendFloat32(engine, b, h.SoftwareTareVal)
	b = append(b, h.WriteProtected)
	b = append(b, make([]byte, extPadLen)...)
	b = appendFloat32(engine, b, h.NominalRange)
	b = appendFloat32(engine, b, h.CLCFactor)
	b = append(b, h.ExportFormat)
	b = append(b, make([]byte, extReserveLen)...)

	return b
}
