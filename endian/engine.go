// Package endian provides the byte order engine used to decode catman binary
// files.
//
// Catman AP writes every file little-endian, so decoding always goes through
// GetLittleEndianEngine(). The engine type combines ByteOrder with
// AppendByteOrder so header serialization (used by tests and fixtures) can
// append fields without scratch buffers.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary. It is satisfied by binary.LittleEndian and
// binary.BigEndian, and the returned instances are immutable and safe for
// concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the byte order of
// every catman file.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// CheckEndianness determines the host byte order from a fixed integer value.
func CheckEndianness() binary.ByteOrder {
	// 256 stores its LSB (0x00) first on little-endian hosts and its
	// MSB (0x01) first on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers little-endian.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// CompareNativeEndian reports whether the engine matches the host byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}
