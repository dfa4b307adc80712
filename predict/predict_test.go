package predict

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

func TestFor1D(t *testing.T) {
	for _, pt := range []format.PredictorType{
		format.PredictorNone, format.PredictorLinear1, format.PredictorLinear2, format.PredictorLinear3,
	} {
		p, err := For1D(pt)
		require.NoError(t, err)
		require.Equal(t, pt, p.Type())
	}

	for _, pt := range []format.PredictorType{format.PredictorLeft, format.PredictorAdaptive, format.PredictorType(0xFF)} {
		_, err := For1D(pt)
		require.ErrorIs(t, err, errs.ErrUnsupportedPredictor)
	}
}

func TestFor2D(t *testing.T) {
	for _, pt := range []format.PredictorType{
		format.PredictorNone, format.PredictorLeft, format.PredictorTop,
		format.PredictorAverage, format.PredictorPaeth, format.PredictorMedianEdge,
	} {
		p, err := For2D(pt)
		require.NoError(t, err)
		require.Equal(t, pt, p.Type())
	}

	for _, pt := range []format.PredictorType{format.PredictorLinear2, format.PredictorAdaptive} {
		_, err := For2D(pt)
		require.ErrorIs(t, err, errs.ErrUnsupportedPredictor)
	}
}

func TestSentinel(t *testing.T) {
	require.Equal(t, int32(128), Sentinel(8))
	require.Equal(t, int32(32768), Sentinel(16))
	require.Equal(t, int32(1), Sentinel(1))
	require.Equal(t, int32(0), Sentinel(0))
}

func TestLinear(t *testing.T) {
	tests := []struct {
		name string
		p    Predictor1D
		past []int32
		want int64
	}{
		{"linear1 empty", Linear1{}, nil, 0},
		{"linear1", Linear1{}, []int32{3, 7}, 7},
		{"linear2 empty", Linear2{}, nil, 0},
		{"linear2 falls back to order 1", Linear2{}, []int32{5}, 5},
		{"linear2", Linear2{}, []int32{10, 12}, 14},
		{"linear3 falls back to order 1", Linear3{}, []int32{-4}, -4},
		{"linear3 falls back to order 2", Linear3{}, []int32{1, 4}, 7},
		{"linear3", Linear3{}, []int32{1, 4, 9}, 16},
		{"linear3 negative", Linear3{}, []int32{-1, -4, -9}, -16},
		{"none", None{}, []int32{100, 200}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.p.Predict(tt.past))
		})
	}
}

func TestLinear_NoOverflowAtExtremes(t *testing.T) {
	const hi, lo = 1<<23 - 1, -(1 << 23)
	past := []int32{lo, hi, lo}
	require.Equal(t, int64(3)*lo-3*hi+lo, Linear3{}.Predict(past))
}

// plane 4x3:
//
//	10 20 30 40
//	15 25 35 45
//	12 22 32 42
var plane = []int32{
	10, 20, 30, 40,
	15, 25, 35, 45,
	12, 22, 32, 42,
}

const planeWidth = 4

func TestSpatial_Boundaries(t *testing.T) {
	const s = int32(128)

	t.Run("origin predicts sentinel", func(t *testing.T) {
		for _, p := range []Predictor2D{Left{}, Top{}, Average{}, Paeth{}, MedianEdge{}} {
			require.Equal(t, int64(s), p.PredictPixel(nil, planeWidth, s), p.Type().String())
		}
		require.Equal(t, int64(0), None{}.PredictPixel(nil, planeWidth, s))
	})

	t.Run("first row", func(t *testing.T) {
		past := plane[:2]
		require.Equal(t, int64(20), Left{}.PredictPixel(past, planeWidth, s))
		require.Equal(t, int64(s), Top{}.PredictPixel(past, planeWidth, s))
		for _, p := range []Predictor2D{Average{}, Paeth{}, MedianEdge{}} {
			require.Equal(t, int64(20), p.PredictPixel(past, planeWidth, s), p.Type().String())
		}
	})

	t.Run("first column", func(t *testing.T) {
		past := plane[:8]
		require.Equal(t, int64(s), Left{}.PredictPixel(past, planeWidth, s))
		require.Equal(t, int64(15), Top{}.PredictPixel(past, planeWidth, s))
		for _, p := range []Predictor2D{Average{}, Paeth{}, MedianEdge{}} {
			require.Equal(t, int64(15), p.PredictPixel(past, planeWidth, s), p.Type().String())
		}
	})
}

func TestSpatial_Interior(t *testing.T) {
	// position (1,1): left=15 top=20 topLeft=10
	past := plane[:5]
	require.Equal(t, int64(15), Left{}.PredictPixel(past, planeWidth, 0))
	require.Equal(t, int64(20), Top{}.PredictPixel(past, planeWidth, 0))
	require.Equal(t, int64(17), Average{}.PredictPixel(past, planeWidth, 0))
	// topLeft <= min, so the larger neighbour
	require.Equal(t, int64(20), MedianEdge{}.PredictPixel(past, planeWidth, 0))
	// p = 25: pa=10, pb=5, pc=15
	require.Equal(t, int64(20), Paeth{}.PredictPixel(past, planeWidth, 0))
}

func TestMedianEdge_Cases(t *testing.T) {
	tests := []struct {
		name              string
		left, top, corner int32
		want              int64
	}{
		{"corner above max", 10, 20, 30, 10},
		{"corner below min", 10, 20, 5, 20},
		{"corner between", 10, 20, 15, 15},
		{"corner equal max", 10, 20, 20, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			past := []int32{tt.corner, tt.top, tt.left}
			require.Equal(t, tt.want, MedianEdge{}.PredictPixel(past, 2, 0))
		})
	}
}

func TestPaeth_TieOrder(t *testing.T) {
	// left == top == topLeft: every distance is zero, left wins
	require.Equal(t, int64(7), Paeth{}.PredictPixel([]int32{7, 7, 7}, 2, 0))

	// left=4 top=6 topLeft=5: p=5, pa=1 pb=1 pc=0, topLeft wins
	require.Equal(t, int64(5), Paeth{}.PredictPixel([]int32{5, 6, 4}, 2, 0))

	// left=2 top=4 topLeft=2: p=4, pa=2 pb=0 pc=2, top wins
	require.Equal(t, int64(4), Paeth{}.PredictPixel([]int32{2, 4, 2}, 2, 0))
}

func TestAverage_Floor(t *testing.T) {
	// left=-3 top=0: floor(-3/2) = -2
	require.Equal(t, int64(-2), Average{}.PredictPixel([]int32{0, 0, -3}, 2, 0))
}

func TestCausality(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	data := make([]int32, 5*7)
	for i := range data {
		data[i] = int32(rng.Intn(256))
	}

	t.Run("1-D", func(t *testing.T) {
		for _, p := range []Predictor1D{None{}, Linear1{}, Linear2{}, Linear3{}} {
			for i := 0; i <= len(data); i++ {
				// a capped prefix panics on any read at or past i
				prefix := data[:i:i]
				require.NotPanics(t, func() { _ = p.Predict(prefix) })
			}
		}
	})

	t.Run("2-D", func(t *testing.T) {
		for _, p := range []Predictor2D{None{}, Left{}, Top{}, Average{}, Paeth{}, MedianEdge{}} {
			for i := 0; i < len(data); i++ {
				prefix := data[:i:i]
				want := p.PredictPixel(prefix, 7, 128)

				mutated := append([]int32(nil), data...)
				for j := i; j < len(mutated); j++ {
					mutated[j] = -mutated[j] - 1
				}
				require.Equal(t, want, p.PredictPixel(mutated[:i:i], 7, 128))
			}
		}
	})
}
