package bitstream

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/bits"

	"github.com/arloliu/golombo/errs"
)

// readBufferSize is the bufio buffer size for sources that are not io.ByteReaders.
const readBufferSize = 4096

// Reader reads bits MSB-first from an io.Reader or a byte slice.
//
// Refilling across byte boundaries is transparent to callers. Once a read needs
// bits past the end of the source, EOF reports true and reads fail with
// errs.ErrTruncated.
//
// A streaming Reader holds at most one partially consumed byte, pulled through
// io.ByteReader. After AlignToByte the source is positioned exactly after the last
// byte read, so data that follows a stream in the same source stays available.
// Sources that do not implement io.ByteReader are wrapped in a bufio.Reader, which
// reads ahead of the stream.
//
// Reader is not safe for concurrent use.
type Reader struct {
	// Hot path fields
	bitBuf   uint64 // pending bits, left-aligned
	bitCount int    // number of valid bits in bitBuf
	read     int64  // total bits consumed

	data []byte // in-memory source
	pos  int    // next unread byte in data
	src  io.ByteReader
	eof  bool
	err  error // sticky non-EOF source error
}

// NewReader creates a Reader that pulls bytes from r one at a time.
//
// If r does not implement io.ByteReader it is wrapped in a bufio.Reader, and bytes
// past the end of the stream may be consumed from r.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReaderSize(r, readBufferSize)
	}

	return &Reader{src: br}
}

// NewReaderBytes creates a Reader over an in-memory byte slice.
//
// The slice is not copied and must not be modified while the reader is in use.
func NewReaderBytes(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit reads a single bit.
//
// Returns:
//   - bool: the bit value, always false once the end of the stream has been reached
//   - error: errs.ErrTruncated past the end of the stream, or a wrapped source error
func (r *Reader) ReadBit() (bool, error) {
	if r.bitCount == 0 && !r.fillBuffer() {
		return false, r.failure()
	}

	bit := r.bitBuf >> 63
	r.bitBuf <<= 1
	r.bitCount--
	r.read++

	return bit == 1, nil
}

// ReadBits reads n bits and returns them right-aligned.
//
// Parameters:
//   - n: number of bits to read (0-64)
//
// Returns:
//   - uint64: the bits read, zero on failure
//   - error: errs.ErrInvalidBitCount, errs.ErrTruncated, or a wrapped source error
func (r *Reader) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidBitCount, n)
	}
	if n == 0 {
		return 0, nil
	}

	if n <= r.bitCount {
		result := r.bitBuf >> (64 - n)
		r.bitBuf <<= n
		r.bitCount -= n
		r.read += int64(n)

		return result, nil
	}

	var result uint64
	for n > 0 {
		if r.bitCount == 0 && !r.fillBuffer() {
			return 0, r.failure()
		}

		take := min(n, r.bitCount)
		chunk := r.bitBuf >> (64 - take)
		if take == 64 {
			result = chunk
		} else {
			result = (result << take) | chunk
		}

		r.bitBuf <<= take
		r.bitCount -= take
		r.read += int64(take)
		n -= take
	}

	return result, nil
}

// ReadUnary counts one-bits up to and including the terminating zero-bit.
//
// Parameters:
//   - limit: the largest count accepted
//
// Returns:
//   - uint64: number of one-bits before the terminator
//   - error: errs.ErrQuotientOverflow once the count exceeds limit,
//     errs.ErrTruncated if the stream ends first
func (r *Reader) ReadUnary(limit uint64) (uint64, error) {
	var q uint64
	for {
		if r.bitCount == 0 && !r.fillBuffer() {
			return 0, r.failure()
		}

		// Bits below bitCount are zero, so ^bitBuf never reports ones past the valid bits.
		ones := bits.LeadingZeros64(^r.bitBuf)
		if ones >= r.bitCount {
			q += uint64(r.bitCount) //nolint: gosec // bitCount is 1-64
			r.read += int64(r.bitCount)
			r.bitBuf = 0
			r.bitCount = 0
		} else {
			q += uint64(ones) //nolint: gosec // ones is 0-63
			r.bitBuf <<= ones + 1
			r.bitCount -= ones + 1
			r.read += int64(ones + 1)

			if q > limit {
				return 0, errs.ErrQuotientOverflow
			}

			return q, nil
		}

		if q > limit {
			return 0, errs.ErrQuotientOverflow
		}
	}
}

// AlignToByte discards the remaining bits of the current byte.
//
// The next read starts at a fresh byte. It is a no-op on a byte boundary.
func (r *Reader) AlignToByte() {
	drop := r.bitCount % 8
	r.bitBuf <<= drop
	r.bitCount -= drop
	r.read += int64(drop)
}

// EOF reports whether a read attempted to pull bits past the end of the source.
func (r *Reader) EOF() bool {
	return r.eof
}

// BitsRead returns the number of bits consumed so far, including skipped padding.
func (r *Reader) BitsRead() int64 {
	return r.read
}

// failure returns the error matching the reason the last refill failed.
func (r *Reader) failure() error {
	if r.err != nil {
		return r.err
	}

	return errs.ErrTruncated
}

// fillBuffer loads the empty bit register: up to 8 bytes from an in-memory source,
// one byte from a streaming source.
//
// Returns false when no byte is available; EOF is set when the source is exhausted.
func (r *Reader) fillBuffer() bool {
	if r.src != nil {
		return r.fillByte()
	}

	available := len(r.data) - r.pos
	if available == 0 {
		r.eof = true
		return false
	}

	if available >= 8 {
		r.bitBuf = binary.BigEndian.Uint64(r.data[r.pos : r.pos+8])
		r.pos += 8
		r.bitCount = 64

		return true
	}

	r.bitBuf = 0
	for i := 0; i < available; i++ {
		r.bitBuf = (r.bitBuf << 8) | uint64(r.data[r.pos])
		r.pos++
	}
	r.bitBuf <<= (8 - available) * 8
	r.bitCount = available * 8

	return true
}

// fillByte pulls the next byte from the streaming source.
func (r *Reader) fillByte() bool {
	if r.eof || r.err != nil {
		return false
	}

	b, err := r.src.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.eof = true
		} else {
			r.err = fmt.Errorf("bitstream: read failed: %w", err)
		}

		return false
	}

	r.bitBuf = uint64(b) << 56
	r.bitCount = 8

	return true
}
