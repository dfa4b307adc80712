package predict

import (
	"fmt"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

// Predictor1D predicts the next element of a one-dimensional signal.
type Predictor1D interface {
	// Type returns the wire identifier of the predictor.
	Type() format.PredictorType
	// Predict returns the prediction for position len(past).
	Predict(past []int32) int64
}

// Predictor2D predicts the next pixel of a raster-scanned plane.
type Predictor2D interface {
	// Type returns the wire identifier of the predictor.
	Type() format.PredictorType
	// PredictPixel returns the prediction for raster position len(past) in a plane of
	// the given width. Missing neighbours are replaced by sentinel.
	PredictPixel(past []int32, width int, sentinel int32) int64
}

// For1D returns the one-dimensional predictor identified by t.
//
// PredictorAdaptive is not a concrete predictor; callers resolve it with SelectLinear.
func For1D(t format.PredictorType) (Predictor1D, error) {
	switch t { //nolint: exhaustive
	case format.PredictorNone:
		return None{}, nil
	case format.PredictorLinear1:
		return Linear1{}, nil
	case format.PredictorLinear2:
		return Linear2{}, nil
	case format.PredictorLinear3:
		return Linear3{}, nil
	default:
		return nil, fmt.Errorf("%w: %s is not a 1-D predictor", errs.ErrUnsupportedPredictor, t)
	}
}

// For2D returns the two-dimensional predictor identified by t.
//
// PredictorAdaptive is not a concrete predictor; callers resolve it with SelectRow.
func For2D(t format.PredictorType) (Predictor2D, error) {
	switch t { //nolint: exhaustive
	case format.PredictorNone:
		return None{}, nil
	case format.PredictorLeft:
		return Left{}, nil
	case format.PredictorTop:
		return Top{}, nil
	case format.PredictorAverage:
		return Average{}, nil
	case format.PredictorPaeth:
		return Paeth{}, nil
	case format.PredictorMedianEdge:
		return MedianEdge{}, nil
	default:
		return nil, fmt.Errorf("%w: %s is not a 2-D predictor", errs.ErrUnsupportedPredictor, t)
	}
}

// Sentinel returns the mid-range value used for missing neighbours at the given bit depth.
func Sentinel(bitDepth int) int32 {
	if bitDepth <= 0 {
		return 0
	}

	return int32(1) << (bitDepth - 1)
}

// None predicts zero everywhere, so residuals equal the input.
type None struct{}

var (
	_ Predictor1D = None{}
	_ Predictor2D = None{}
)

func (None) Type() format.PredictorType { return format.PredictorNone }

func (None) Predict([]int32) int64 { return 0 }

func (None) PredictPixel([]int32, int, int32) int64 { return 0 }

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
