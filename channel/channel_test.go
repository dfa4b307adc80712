package channel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

func TestMidSide_Rounding(t *testing.T) {
	tests := []struct {
		l, r      int32
		mid, side int32
	}{
		{3, 0, 1, 3},
		{-3, 0, -2, -3},
		{0, -3, -2, 3},
		{-1, -2, -2, 1},
		{5, 5, 5, 0},
	}

	for _, tt := range tests {
		mid, side := MidSide(tt.l, tt.r)
		require.Equal(t, tt.mid, mid, "mid(%d,%d)", tt.l, tt.r)
		require.Equal(t, tt.side, side, "side(%d,%d)", tt.l, tt.r)

		l, r := InverseMidSide(mid, side)
		require.Equal(t, tt.l, l)
		require.Equal(t, tt.r, r)
	}
}

func TestStereo_Invertible16Bit(t *testing.T) {
	const lo, hi = -32768, 32767

	check := func(l, r int32) {
		mid, side := MidSide(l, r)
		gl, gr := InverseMidSide(mid, side)
		if gl != l || gr != r {
			t.Fatalf("mid-side (%d,%d) -> (%d,%d)", l, r, gl, gr)
		}

		a, s := LeftSide(l, r)
		if gl, gr = InverseLeftSide(a, s); gl != l || gr != r {
			t.Fatalf("left-side (%d,%d) -> (%d,%d)", l, r, gl, gr)
		}

		s, b := RightSide(l, r)
		if gl, gr = InverseRightSide(s, b); gl != l || gr != r {
			t.Fatalf("right-side (%d,%d) -> (%d,%d)", l, r, gl, gr)
		}
	}

	// every left value against a strided sweep of right values, plus the edges
	for l := int32(lo); l <= hi; l++ {
		check(l, lo)
		check(l, hi)
		check(l, 0)
		check(l, -l)
		check(l, l^0x55)
	}
	for l := int32(lo); l <= hi; l += 251 {
		for r := int32(lo); r <= hi; r += 241 {
			check(l, r)
		}
	}
}

func TestApplyRestore(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	left := make([]int32, 500)
	right := make([]int32, 500)
	for i := range left {
		left[i] = int32(rng.Intn(1<<24) - 1<<23)
		right[i] = int32(rng.Intn(1<<24) - 1<<23)
	}

	for _, tr := range []format.ChannelTransform{
		format.TransformIndependent, format.TransformMidSide, format.TransformLeftSide, format.TransformRightSide,
	} {
		t.Run(tr.String(), func(t *testing.T) {
			a, b, err := Apply(tr, left, right)
			require.NoError(t, err)
			require.NoError(t, Restore(tr, a, b))
			require.Equal(t, left, a)
			require.Equal(t, right, b)
		})
	}

	t.Run("rejects mismatched lengths", func(t *testing.T) {
		_, _, err := Apply(format.TransformMidSide, left, right[:10])
		require.ErrorIs(t, err, errs.ErrChannelMismatch)
		require.ErrorIs(t, Restore(format.TransformMidSide, left, right[:10]), errs.ErrChannelMismatch)
	})

	t.Run("into caller buffers", func(t *testing.T) {
		a, b := make([]int32, len(left)), make([]int32, len(right))
		require.NoError(t, ApplyInto(format.TransformLeftSide, left, right, a, b))
		require.Equal(t, left, a)

		require.ErrorIs(t, ApplyInto(format.TransformLeftSide, left, right, a, b[:1]), errs.ErrChannelMismatch)
	})

	t.Run("rejects rct on a pair", func(t *testing.T) {
		_, _, err := Apply(format.TransformRCT, left, right)
		require.ErrorIs(t, err, errs.ErrUnsupportedTransform)
	})
}

func TestRCT(t *testing.T) {
	t.Run("cube corners", func(t *testing.T) {
		for _, r := range []int32{0, 255} {
			for _, g := range []int32{0, 255} {
				for _, b := range []int32{0, 255} {
					y, cb, cr := ForwardRCT(r, g, b)
					gr, gg, gb := InverseRCT(y, cb, cr)
					require.Equal(t, []int32{r, g, b}, []int32{gr, gg, gb})
				}
			}
		}
	})

	t.Run("random 8-bit and 16-bit", func(t *testing.T) {
		rng := rand.New(rand.NewSource(9))
		for _, depth := range []int{8, 16} {
			for range 20000 {
				r, g, b := int32(rng.Intn(1<<depth)), int32(rng.Intn(1<<depth)), int32(rng.Intn(1<<depth))
				y, cb, cr := ForwardRCT(r, g, b)
				gr, gg, gb := InverseRCT(y, cb, cr)
				require.Equal(t, r, gr)
				require.Equal(t, g, gg)
				require.Equal(t, b, gb)
			}
		}
	})

	t.Run("known value", func(t *testing.T) {
		// cb = 30-20 = 10, cr = 10-20 = -10, y = 20 + 0
		y, cb, cr := ForwardRCT(10, 20, 30)
		require.Equal(t, int32(20), y)
		require.Equal(t, int32(10), cb)
		require.Equal(t, int32(-10), cr)
	})

	t.Run("planes", func(t *testing.T) {
		r := []int32{1, 2, 3, 200}
		g := []int32{4, 5, 6, 0}
		b := []int32{7, 8, 9, 255}
		y, cb, cr, err := ApplyRCT(r, g, b)
		require.NoError(t, err)
		require.NoError(t, RestoreRCT(y, cb, cr))
		require.Equal(t, r, y)
		require.Equal(t, g, cb)
		require.Equal(t, b, cr)

		_, _, _, err = ApplyRCT(r, g, b[:2])
		require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	})
}

func TestChoose(t *testing.T) {
	t.Run("identical channels prefer mid-side", func(t *testing.T) {
		left := []int32{0, 100, -100, 50, 0, 300}
		// side is identically zero; mid equals left, so mid-side beats independent
		require.Equal(t, format.TransformMidSide, Choose(left, left))
	})

	t.Run("uncorrelated channels stay independent", func(t *testing.T) {
		left := []int32{0, 0, 0, 0, 0, 0}
		right := []int32{0, 1000, 0, 1000, 0, 1000}
		require.Equal(t, format.TransformIndependent, Choose(left, right))
	})

	t.Run("empty input", func(t *testing.T) {
		require.Equal(t, format.TransformIndependent, Choose(nil, nil))
	})
}
