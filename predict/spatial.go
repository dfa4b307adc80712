package predict

import "github.com/arloliu/golombo/format"

// Left predicts the pixel to the left, or the sentinel in the first column.
type Left struct{}

// Top predicts the pixel above, or the sentinel in the first row.
type Top struct{}

// Average predicts floor((left+top)/2).
type Average struct{}

// Paeth is the PNG Paeth predictor.
type Paeth struct{}

// MedianEdge is the JPEG-LS median edge detector.
type MedianEdge struct{}

var (
	_ Predictor2D = Left{}
	_ Predictor2D = Top{}
	_ Predictor2D = Average{}
	_ Predictor2D = Paeth{}
	_ Predictor2D = MedianEdge{}
)

func (Left) Type() format.PredictorType       { return format.PredictorLeft }
func (Top) Type() format.PredictorType        { return format.PredictorTop }
func (Average) Type() format.PredictorType    { return format.PredictorAverage }
func (Paeth) Type() format.PredictorType      { return format.PredictorPaeth }
func (MedianEdge) Type() format.PredictorType { return format.PredictorMedianEdge }

func (Left) PredictPixel(past []int32, width int, sentinel int32) int64 {
	pos := len(past)
	if pos%width == 0 {
		return int64(sentinel)
	}

	return int64(past[pos-1])
}

func (Top) PredictPixel(past []int32, width int, sentinel int32) int64 {
	pos := len(past)
	if pos < width {
		return int64(sentinel)
	}

	return int64(past[pos-width])
}

func (Average) PredictPixel(past []int32, width int, sentinel int32) int64 {
	left, top, _, edge, ok := neighbors(past, width, sentinel)
	if !ok {
		return edge
	}

	return (left + top) >> 1
}

func (Paeth) PredictPixel(past []int32, width int, sentinel int32) int64 {
	left, top, topLeft, edge, ok := neighbors(past, width, sentinel)
	if !ok {
		return edge
	}

	p := left + top - topLeft
	pa, pb, pc := abs64(p-left), abs64(p-top), abs64(p-topLeft)
	switch {
	case pa <= pb && pa <= pc:
		return left
	case pb <= pc:
		return top
	default:
		return topLeft
	}
}

func (MedianEdge) PredictPixel(past []int32, width int, sentinel int32) int64 {
	left, top, topLeft, edge, ok := neighbors(past, width, sentinel)
	if !ok {
		return edge
	}

	lo, hi := min(left, top), max(left, top)
	switch {
	case topLeft >= hi:
		return lo
	case topLeft <= lo:
		return hi
	default:
		return left + top - topLeft
	}
}

// neighbors returns the left, top and top-left neighbours of raster position len(past).
//
// On the first row or column ok is false and edge holds the single-neighbour fallback:
// the pixel above in the first column, the pixel to the left in the first row, and the
// sentinel at the origin.
func neighbors(past []int32, width int, sentinel int32) (left, top, topLeft, edge int64, ok bool) {
	pos := len(past)
	x, y := pos%width, pos/width

	switch {
	case x == 0 && y == 0:
		return 0, 0, 0, int64(sentinel), false
	case x == 0:
		return 0, 0, 0, int64(past[pos-width]), false
	case y == 0:
		return 0, 0, 0, int64(past[pos-1]), false
	}

	return int64(past[pos-1]), int64(past[pos-width]), int64(past[pos-width-1]), 0, true
}
