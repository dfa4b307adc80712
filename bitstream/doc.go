// Package bitstream provides MSB-first bit-level I/O over byte sinks and sources.
//
// Writer accumulates bits in a 64-bit register and forwards whole bytes to an
// io.Writer. Reader pulls bytes from an io.Reader (or an in-memory slice) and
// serves arbitrary-width reads across refill boundaries.
//
// # Byte Alignment
//
// Independently coded sections must start on a byte boundary. The writer pads the
// current partial byte with zero bits on AlignToByte; the reader discards the rest
// of its current byte on AlignToByte so the next read starts at a fresh byte:
//
//	w := bitstream.NewWriter(&buf)
//	w.WriteBits(0b101, 3)
//	w.AlignToByte()         // 0b1010_0000 is now a complete byte
//	w.WriteBits(0xAB, 8)
//	_ = w.Flush()
//
//	r := bitstream.NewReaderBytes(buf.Bytes())
//	v, _ := r.ReadBits(3)   // 0b101
//	r.AlignToByte()         // padding bits are skipped, never returned as data
//	b, _ := r.ReadBits(8)   // 0xAB
//
// # End Of Stream
//
// Once a read needs bits beyond the end of the source, EOF reports true and every
// subsequent ReadBit returns false together with errs.ErrTruncated. Callers bound
// their loops by element counts recorded in a header, never by EOF alone.
package bitstream
