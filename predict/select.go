package predict

// linearCandidates are evaluated in order; earlier entries win ties.
var linearCandidates = [...]Predictor1D{Linear1{}, Linear2{}, Linear3{}}

// rowCandidates are evaluated in order; earlier entries win ties.
var rowCandidates = [...]Predictor2D{MedianEdge{}, Paeth{}, Average{}, Left{}, Top{}}

// rowSampleTarget is the number of pixels SelectRow samples from a row.
const rowSampleTarget = 64

// SelectLinear returns the linear predictor with the smallest absolute error over the
// last window elements of past.
//
// Each candidate predicts every element of the window from the elements before it.
// Ties favour the lower order, and an empty history selects Linear1.
func SelectLinear(past []int32, window int) Predictor1D {
	n := len(past)
	start := max(0, n-max(window, 0))
	if start == n {
		return linearCandidates[0]
	}

	best := linearCandidates[0]
	bestErr := int64(-1)
	for _, p := range linearCandidates {
		var sum int64
		for i := start; i < n; i++ {
			sum += abs64(int64(past[i]) - p.Predict(past[:i]))
		}
		if bestErr < 0 || sum < bestErr {
			best, bestErr = p, sum
		}
	}

	return best
}

// SelectRow returns the spatial predictor with the smallest absolute error on the row
// above raster position len(past).
//
// The row is sampled every max(1, width/64) pixels. The first row selects Left.
func SelectRow(past []int32, width int, sentinel int32) Predictor2D {
	if width <= 0 || len(past) < width {
		return Left{}
	}

	rowStart := (len(past)/width - 1) * width
	stride := max(1, width/rowSampleTarget)

	var best Predictor2D
	bestErr := int64(-1)
	for _, p := range rowCandidates {
		var sum int64
		for x := 0; x < width; x += stride {
			i := rowStart + x
			sum += abs64(int64(past[i]) - p.PredictPixel(past[:i], width, sentinel))
		}
		if bestErr < 0 || sum < bestErr {
			best, bestErr = p, sum
		}
	}

	return best
}
