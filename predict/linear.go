package predict

import "github.com/arloliu/golombo/format"

// Linear1 predicts x[n-1].
type Linear1 struct{}

// Linear2 predicts 2x[n-1] - x[n-2].
type Linear2 struct{}

// Linear3 predicts 3x[n-1] - 3x[n-2] + x[n-3].
type Linear3 struct{}

var (
	_ Predictor1D = Linear1{}
	_ Predictor1D = Linear2{}
	_ Predictor1D = Linear3{}
)

func (Linear1) Type() format.PredictorType { return format.PredictorLinear1 }
func (Linear2) Type() format.PredictorType { return format.PredictorLinear2 }
func (Linear3) Type() format.PredictorType { return format.PredictorLinear3 }

func (Linear1) Predict(past []int32) int64 { return linear(past, 1) }
func (Linear2) Predict(past []int32) int64 { return linear(past, 2) }
func (Linear3) Predict(past []int32) int64 { return linear(past, 3) }

// linear evaluates the fixed polynomial predictor of the given order, falling back to
// the highest order the history supports. An empty history predicts zero.
func linear(past []int32, order int) int64 {
	n := len(past)
	switch min(order, n) {
	case 0:
		return 0
	case 1:
		return int64(past[n-1])
	case 2:
		return 2*int64(past[n-1]) - int64(past[n-2])
	default:
		return 3*int64(past[n-1]) - 3*int64(past[n-2]) + int64(past[n-3])
	}
}
