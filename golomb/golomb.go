// Package golomb implements Golomb coding of signed integers with a truncated-binary
// remainder.
//
// A value v is first folded into a non-negative integer u according to the sign
// mapping, then split into a quotient q = u / m and a remainder r = u % m:
//
//   - q is written in unary: q one-bits followed by a terminating zero-bit.
//   - r is written in truncated binary with b = floor(log2(m)) and k = 2^(b+1) - m:
//     if r < k it takes b bits, otherwise r+k takes b+1 bits.
//
// m == 1 degenerates to a pure unary code with no remainder bits, and powers of two
// give plain Rice codes.
package golomb

import (
	"fmt"
	"math/bits"

	"github.com/arloliu/golombo/bitstream"
	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
	"github.com/arloliu/golombo/internal/options"
)

// DefaultMaxQuotient is the default ceiling on the unary quotient.
//
// It bounds the work a corrupted stream can cause. A 25-bit coded channel (24-bit
// samples after a stereo transform) has Linear3 residuals below 2^27 in magnitude,
// which both sign mappings fold below 2^28, so m == 1 always fits.
const DefaultMaxQuotient = 1 << 28

// maxMagnitude bounds |value| so that mapped values never overflow uint64.
const maxMagnitude = 1 << 62

// Coder encodes and decodes one signed integer at a time with parameter m.
//
// The zero value is not usable; create coders with New.
type Coder struct {
	m       uint64
	k       uint64 // truncated-binary split point, 2^(b+1) - m
	b       int    // floor(log2(m))
	maxQ    uint64
	mapping format.SignMapping
}

// Option configures a Coder.
type Option = options.Option[*Coder]

// WithMaxQuotient sets the largest unary quotient the coder writes or accepts.
//
// Encode refuses values whose quotient exceeds the ceiling so that every stream it
// produces can be decoded by a coder with the same ceiling.
func WithMaxQuotient(limit uint64) Option {
	return options.New(func(c *Coder) error {
		if limit == 0 {
			return errs.ErrInvalidQuotientCap
		}
		c.maxQ = limit

		return nil
	})
}

// New creates a coder with parameter m and the given sign mapping.
//
// Parameters:
//   - m: Golomb parameter, must be positive
//   - mapping: format.SignAndMagnitude or format.OddEvenMapping
//   - opts: optional configuration
//
// Returns:
//   - *Coder: the configured coder
//   - error: errs.ErrInvalidM, errs.ErrUnsupportedMapping, or an option error
func New(m int, mapping format.SignMapping, opts ...Option) (*Coder, error) {
	switch mapping { //nolint: exhaustive
	case format.SignAndMagnitude, format.OddEvenMapping:
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedMapping, mapping)
	}

	c := &Coder{mapping: mapping, maxQ: DefaultMaxQuotient}
	if err := c.SetM(m); err != nil {
		return nil, err
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// SetM changes the Golomb parameter and recomputes b and k.
//
// Returns errs.ErrInvalidM if m is not positive; the coder keeps its previous m.
func (c *Coder) SetM(m int) error {
	if m <= 0 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidM, m)
	}

	c.m = uint64(m)
	c.b = bits.Len64(c.m) - 1
	c.k = (uint64(1) << (c.b + 1)) - c.m

	return nil
}

// M returns the current Golomb parameter.
func (c *Coder) M() int {
	return int(c.m) //nolint: gosec // set from a positive int
}

// B returns floor(log2(m)).
func (c *Coder) B() int {
	return c.b
}

// K returns the truncated-binary split point 2^(b+1) - m.
func (c *Coder) K() int {
	return int(c.k) //nolint: gosec // k <= m
}

// Mapping returns the sign mapping of the coder.
func (c *Coder) Mapping() format.SignMapping {
	return c.mapping
}

// MaxQuotient returns the unary quotient ceiling.
func (c *Coder) MaxQuotient() uint64 {
	return c.maxQ
}

// Encode writes value to w.
//
// Returns:
//   - int: number of bits written
//   - error: errs.ErrValueOverflow if the quotient would exceed the ceiling or the
//     magnitude is 2^62 or more; nothing is written in that case
func (c *Coder) Encode(w *bitstream.Writer, value int64) (int, error) {
	if value >= maxMagnitude || value <= -maxMagnitude {
		return 0, fmt.Errorf("%w: %d", errs.ErrValueOverflow, value)
	}

	u, negative := c.fold(value)
	q := u / c.m
	if q > c.maxQ {
		return 0, fmt.Errorf("%w: value %d with m=%d", errs.ErrValueOverflow, value, c.m)
	}
	r := u - q*c.m

	n := 0
	if c.mapping == format.SignAndMagnitude {
		w.WriteBit(negative)
		n++
	}

	w.WriteUnary(q)
	n += int(q) + 1 //nolint: gosec // q <= maxQ

	if r < c.k {
		w.WriteBits(r, c.b)
		n += c.b
	} else {
		w.WriteBits(r+c.k, c.b+1)
		n += c.b + 1
	}

	return n, nil
}

// Decode reads one value from r.
//
// Returns:
//   - int64: the decoded value
//   - error: errs.ErrQuotientOverflow when the unary run exceeds the ceiling,
//     errs.ErrTruncated when the stream ends, or a wrapped source error
func (c *Coder) Decode(r *bitstream.Reader) (int64, error) {
	negative := false
	if c.mapping == format.SignAndMagnitude {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		negative = bit
	}

	q, err := r.ReadUnary(c.maxQ)
	if err != nil {
		return 0, err
	}

	rem, err := r.ReadBits(c.b)
	if err != nil {
		return 0, err
	}

	if rem >= c.k {
		extra, err := r.ReadBits(1)
		if err != nil {
			return 0, err
		}
		rem = (rem<<1 | extra) - c.k
	}

	return c.unfold(q*c.m+rem, negative), nil
}

// Length returns the number of bits Encode would write for value.
func (c *Coder) Length(value int64) int {
	u, _ := c.fold(value)
	q := u / c.m
	r := u - q*c.m

	n := int(q) + 1 //nolint: gosec // callers bound value
	if c.mapping == format.SignAndMagnitude {
		n++
	}
	if r < c.k {
		return n + c.b
	}

	return n + c.b + 1
}

// fold maps a signed value to the non-negative integer that gets Golomb coded.
func (c *Coder) fold(value int64) (uint64, bool) {
	if c.mapping == format.SignAndMagnitude {
		if value < 0 {
			return uint64(-value), true
		}

		return uint64(value), false
	}

	// Zig-zag: positive values take the odd codes, zero and negatives the even ones.
	if value > 0 {
		return uint64(value)*2 - 1, false
	}

	return uint64(-value) * 2, false
}

// unfold inverts fold.
func (c *Coder) unfold(u uint64, negative bool) int64 {
	if c.mapping == format.SignAndMagnitude {
		if negative {
			return -int64(u) //nolint: gosec // u < 2^62 for streams this coder wrote
		}

		return int64(u) //nolint: gosec // see above
	}

	if u&1 == 1 {
		return int64((u + 1) / 2) //nolint: gosec // (u+1)/2 <= 2^63
	}

	return -int64(u / 2) //nolint: gosec // u/2 < 2^63
}

// CodeLength returns the number of bits a coder with parameter m and the given
// mapping writes for value. It returns -1 if m is not positive.
func CodeLength(value int64, m int, mapping format.SignMapping) int {
	c := Coder{mapping: mapping}
	if c.SetM(m) != nil {
		return -1
	}

	return c.Length(value)
}
