package codec

import (
	"math"
	"math/rand"
)

// toneSignal returns a smooth 16-bit-range signal with a little noise.
func toneSignal(n int, seed int64, amplitude float64) []int32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int32, n)
	for i := range out {
		v := amplitude*math.Sin(float64(i)*0.031) + amplitude/4*math.Sin(float64(i)*0.17) + rng.NormFloat64()*3
		out[i] = int32(math.Round(v))
	}

	return out
}

// noiseSignal returns uniformly distributed samples of the given signed width.
func noiseSignal(n int, seed int64, bits int) []int32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(rng.Int63n(int64(1)<<bits) - int64(1)<<(bits-1))
	}

	return out
}

// extremeSignal alternates between the extremes of a signed width, with runs of zero.
func extremeSignal(n int, bits int) []int32 {
	lo, hi := -(int32(1) << (bits - 1)), int32(1)<<(bits-1)-1
	out := make([]int32, n)
	for i := range out {
		switch i % 5 {
		case 0, 3:
			out[i] = lo
		case 1:
			out[i] = hi
		default:
			out[i] = 0
		}
	}

	return out
}

// gradientPlane returns a smooth unsigned plane with noise, clamped to the bit depth.
func gradientPlane(width, height int, seed int64, bits int) []int32 {
	rng := rand.New(rand.NewSource(seed))
	maxVal := int32(1)<<bits - 1
	out := make([]int32, width*height)
	for y := range height {
		for x := range width {
			v := int32(float64(maxVal)*(float64(x+y)/float64(width+height))) + int32(rng.Intn(5)) - 2
			out[y*width+x] = max(0, min(maxVal, v))
		}
	}

	return out
}

func flatPlane(n int, v int32) []int32 {
	out := make([]int32, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// noiseUnsigned returns uniformly distributed unsigned samples.
func noiseUnsigned(n int, seed int64, bits int) []int32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]int32, n)
	for i := range out {
		out[i] = int32(rng.Int63n(int64(1) << bits))
	}

	return out
}
