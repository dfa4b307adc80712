// Package channel implements reversible integer transforms between correlated channels.
//
// Stereo pairs can be coded as (mid, side), (left, side) or (side, right), and three
// plane RGB images as (Y, Cb, Cr) with the JPEG 2000 reversible color transform. All
// divisions by two are arithmetic right shifts, so rounding is floor toward negative
// infinity in both directions and every transform is exactly invertible.
package channel

import (
	"fmt"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

// MidSide maps a stereo sample pair to (floor((l+r)/2), l-r).
func MidSide(left, right int32) (mid, side int32) {
	return int32((int64(left) + int64(right)) >> 1), left - right
}

// InverseMidSide reverses MidSide.
func InverseMidSide(mid, side int32) (left, right int32) {
	half := side >> 1
	right = mid - half
	left = right + side

	return left, right
}

// LeftSide maps a stereo sample pair to (l, l-r).
func LeftSide(left, right int32) (l, side int32) {
	return left, left - right
}

// InverseLeftSide reverses LeftSide.
func InverseLeftSide(left, side int32) (l, right int32) {
	return left, left - side
}

// RightSide maps a stereo sample pair to (l-r, r).
func RightSide(left, right int32) (side, r int32) {
	return left - right, right
}

// InverseRightSide reverses RightSide.
func InverseRightSide(side, right int32) (left, r int32) {
	return side + right, right
}

// ForwardRCT maps (R, G, B) to (Y, Cb, Cr) with Cb = B-G, Cr = R-G and
// Y = G + floor((Cb+Cr)/4).
func ForwardRCT(r, g, b int32) (y, cb, cr int32) {
	cb = b - g
	cr = r - g
	y = g + ((cb + cr) >> 2)

	return y, cb, cr
}

// InverseRCT reverses ForwardRCT.
func InverseRCT(y, cb, cr int32) (r, g, b int32) {
	g = y - ((cb + cr) >> 2)

	return cr + g, g, cb + g
}

// Apply transforms a stereo pair into the two coded channels of t.
//
// The inputs are not modified. TransformIndependent returns copies of the inputs.
func Apply(t format.ChannelTransform, left, right []int32) ([]int32, []int32, error) {
	a := make([]int32, len(left))
	b := make([]int32, len(right))
	if err := ApplyInto(t, left, right, a, b); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// ApplyInto is Apply writing the coded channels into a and b, which must have the
// length of the inputs.
func ApplyInto(t format.ChannelTransform, left, right, a, b []int32) error {
	if len(left) != len(right) || len(a) != len(left) || len(b) != len(left) {
		return fmt.Errorf("%w: %d/%d into %d/%d", errs.ErrChannelMismatch, len(left), len(right), len(a), len(b))
	}

	pair, err := stereoPair(t)
	if err != nil {
		return err
	}

	for i := range left {
		a[i], b[i] = pair.forward(left[i], right[i])
	}

	return nil
}

// Restore reverses Apply in place: on return a holds the left channel and b the right.
func Restore(t format.ChannelTransform, a, b []int32) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d != %d", errs.ErrChannelMismatch, len(a), len(b))
	}

	pair, err := stereoPair(t)
	if err != nil {
		return err
	}

	for i := range a {
		a[i], b[i] = pair.inverse(a[i], b[i])
	}

	return nil
}

// ApplyRCT transforms RGB planes into new Y, Cb and Cr planes.
func ApplyRCT(r, g, b []int32) ([]int32, []int32, []int32, error) {
	y := make([]int32, len(r))
	cb := make([]int32, len(r))
	cr := make([]int32, len(r))
	if err := ApplyRCTInto(r, g, b, y, cb, cr); err != nil {
		return nil, nil, nil, err
	}

	return y, cb, cr, nil
}

// ApplyRCTInto is ApplyRCT writing into y, cb and cr, which must have the length of
// the inputs.
func ApplyRCTInto(r, g, b, y, cb, cr []int32) error {
	n := len(r)
	if len(g) != n || len(b) != n || len(y) != n || len(cb) != n || len(cr) != n {
		return fmt.Errorf("%w: planes %d/%d/%d into %d/%d/%d", errs.ErrDimensionMismatch,
			len(r), len(g), len(b), len(y), len(cb), len(cr))
	}

	for i := range r {
		y[i], cb[i], cr[i] = ForwardRCT(r[i], g[i], b[i])
	}

	return nil
}

// RestoreRCT reverses ApplyRCT in place: on return the planes hold R, G and B.
func RestoreRCT(y, cb, cr []int32) error {
	if len(y) != len(cb) || len(cb) != len(cr) {
		return fmt.Errorf("%w: planes %d/%d/%d", errs.ErrDimensionMismatch, len(y), len(cb), len(cr))
	}

	for i := range y {
		y[i], cb[i], cr[i] = InverseRCT(y[i], cb[i], cr[i])
	}

	return nil
}

// Choose returns the stereo transform whose coded channels have the smallest total
// first-order absolute difference.
//
// It only inspects the encoder's input and the result is recorded in the stream
// header. Ties keep the earlier of Independent, MidSide, LeftSide and RightSide.
func Choose(left, right []int32) format.ChannelTransform {
	var costL, costR, costM, costS int64
	for i := 1; i < min(len(left), len(right)); i++ {
		m0, s0 := MidSide(left[i-1], right[i-1])
		m1, s1 := MidSide(left[i], right[i])
		costL += absDiff(left[i], left[i-1])
		costR += absDiff(right[i], right[i-1])
		costM += absDiff(m1, m0)
		costS += absDiff(s1, s0)
	}

	best, bestCost := format.TransformIndependent, costL+costR
	for _, c := range []struct {
		t    format.ChannelTransform
		cost int64
	}{
		{format.TransformMidSide, costM + costS},
		{format.TransformLeftSide, costL + costS},
		{format.TransformRightSide, costS + costR},
	} {
		if c.cost < bestCost {
			best, bestCost = c.t, c.cost
		}
	}

	return best
}

type pairTransform struct {
	forward func(l, r int32) (int32, int32)
	inverse func(a, b int32) (int32, int32)
}

func identity(a, b int32) (int32, int32) { return a, b }

func stereoPair(t format.ChannelTransform) (pairTransform, error) {
	switch t { //nolint: exhaustive
	case format.TransformIndependent:
		return pairTransform{identity, identity}, nil
	case format.TransformMidSide:
		return pairTransform{MidSide, InverseMidSide}, nil
	case format.TransformLeftSide:
		return pairTransform{LeftSide, InverseLeftSide}, nil
	case format.TransformRightSide:
		return pairTransform{RightSide, InverseRightSide}, nil
	default:
		return pairTransform{}, fmt.Errorf("%w: %s on a stereo pair", errs.ErrUnsupportedTransform, t)
	}
}

func absDiff(a, b int32) int64 {
	d := int64(a) - int64(b)
	if d < 0 {
		return -d
	}

	return d
}
