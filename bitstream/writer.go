package bitstream

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/internal/pool"
)

// stageFlushThreshold is the staged byte count that triggers a write to the sink.
const stageFlushThreshold = pool.StreamBufferDefaultSize / 2

// Writer writes bits MSB-first to an io.Writer.
//
// Bits are accumulated in a 64-bit register. Complete 64-bit words are moved into a
// pooled staging buffer, and the staging buffer is forwarded to the sink when it grows
// past stageFlushThreshold or on Flush. Errors are sticky: once a sink write fails or
// WriteBits is given an invalid count, further output is discarded and Flush/Err report
// the first error.
//
// Writer is not safe for concurrent use.
type Writer struct {
	// Hot path fields
	bitBuf   uint64 // pending bits, right-aligned
	bitCount int    // number of valid bits in bitBuf (0-63 between calls)
	written  int64  // total bits written, including alignment padding

	stage *pool.ByteBuffer
	sink  io.Writer
	err   error
}

// NewWriter creates a Writer that forwards whole bytes to w.
//
// Parameters:
//   - w: destination of the encoded bytes
//
// Returns:
//   - *Writer: a new writer, positioned at a byte boundary
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		sink:  w,
		stage: pool.GetStreamBuffer(),
	}
}

// WriteBit writes a single bit.
func (w *Writer) WriteBit(bit bool) {
	var v uint64
	if bit {
		v = 1
	}
	w.WriteBits(v, 1)
}

// WriteBits writes the low n bits of value, most significant bit first.
//
// Bits of value above n are ignored. Writing zero bits is a no-op.
//
// Parameters:
//   - value: the bits to write (right-aligned)
//   - n: number of bits to write (0-64)
//
// An n outside 0-64 writes nothing and records errs.ErrInvalidBitCount as the sticky
// error, mirroring Reader.ReadBits. Panics if the writer has been closed.
func (w *Writer) WriteBits(value uint64, n int) {
	if n < 0 || n > 64 {
		if w.err == nil {
			w.err = fmt.Errorf("%w: %d", errs.ErrInvalidBitCount, n)
		}

		return
	}
	if w.stage == nil {
		panic("bitstream: writer already closed")
	}

	if n == 0 {
		return
	}

	if n < 64 {
		value &= (1 << n) - 1
	}
	w.written += int64(n)

	available := 64 - w.bitCount
	if n < available {
		w.bitBuf = (w.bitBuf << n) | value
		w.bitCount += n

		return
	}

	// Fill the register up to 64 bits, emit it, and keep the low remainder.
	rest := n - available
	if available == 64 {
		w.bitBuf = value >> rest
	} else {
		w.bitBuf = (w.bitBuf << available) | (value >> rest)
	}
	w.emitWord()

	if rest > 0 {
		w.bitBuf = value & ((1 << rest) - 1)
	} else {
		w.bitBuf = 0
	}
	w.bitCount = rest
}

// WriteUnary writes q one-bits followed by a terminating zero-bit.
func (w *Writer) WriteUnary(q uint64) {
	for q >= 64 {
		w.WriteBits(^uint64(0), 64)
		q -= 64
	}
	// q ones followed by a single zero, at most 64 bits.
	w.WriteBits(((1<<q)-1)<<1, int(q)+1) //nolint: gosec // q < 64
}

// AlignToByte pads the current partial byte with zero bits.
//
// It is a no-op when the writer is already on a byte boundary.
func (w *Writer) AlignToByte() {
	if pad := (8 - w.bitCount%8) % 8; pad > 0 {
		w.WriteBits(0, pad)
	}
}

// BitsWritten returns the total number of bits written, including padding.
func (w *Writer) BitsWritten() int64 {
	return w.written
}

// Err returns the first error recorded by the writer, if any.
func (w *Writer) Err() error {
	return w.err
}

// Flush aligns the stream to a byte boundary and forwards all pending bytes to the sink.
//
// Returns:
//   - error: the first sink error encountered by this writer
func (w *Writer) Flush() error {
	if w.stage == nil {
		return w.err
	}

	w.AlignToByte()

	if w.bitCount > 0 {
		numBytes := w.bitCount / 8
		aligned := w.bitBuf << (64 - w.bitCount)
		start := w.stage.Len()
		w.stage.ExtendOrGrow(numBytes)
		bs := w.stage.Slice(start, start+numBytes)
		for i := range numBytes {
			bs[i] = byte(aligned >> (56 - i*8))
		}
		w.bitBuf = 0
		w.bitCount = 0
	}

	w.drain()

	return w.err
}

// Close flushes the writer and releases its staging buffer.
//
// The writer becomes unusable after Close; further writes panic.
func (w *Writer) Close() error {
	if w.stage == nil {
		return w.err
	}

	err := w.Flush()
	pool.PutStreamBuffer(w.stage)
	w.stage = nil

	return err
}

// emitWord moves the full 64-bit register into the staging buffer.
func (w *Writer) emitWord() {
	start := w.stage.Len()
	w.stage.ExtendOrGrow(8)
	binary.BigEndian.PutUint64(w.stage.Slice(start, start+8), w.bitBuf)
	w.bitBuf = 0
	w.bitCount = 0

	if w.stage.Len() >= stageFlushThreshold {
		w.drain()
	}
}

// drain forwards staged bytes to the sink.
func (w *Writer) drain() {
	if w.stage.Len() == 0 {
		return
	}

	if w.err == nil {
		if _, err := w.stage.WriteTo(w.sink); err != nil {
			w.err = fmt.Errorf("bitstream: write failed: %w", err)
		}
	}
	w.stage.Reset()
}
