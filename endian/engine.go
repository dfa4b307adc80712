// Package endian provides the byte order used by golombo's byte-oriented structures.
//
// The bit-packed stream header and block payloads are MSB-first and do not use this
// package. Everything laid out in whole bytes (the envelope header and the sample
// digests of the internal hash package) is little-endian and goes through the engine
// returned by GetLittleEndianEngine:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, rawLength)
//	rawLength = engine.Uint32(buf[8:12])
//
// EndianEngine values are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines binary.ByteOrder and binary.AppendByteOrder, so a single value
// can both decode fixed fields in place and append them to a growing buffer.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
