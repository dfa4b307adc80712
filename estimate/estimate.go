// Package estimate sizes the Golomb parameter of a block from its residuals.
//
// The estimate is round(mean(|r|) * Num/Den), computed in integer arithmetic over a
// reproducible strided sample of the block and clamped to [1, MaxM].
package estimate

import (
	"fmt"

	"github.com/arloliu/golombo/errs"
)

// MaxTransmittedM is the largest m a 16-bit block header field can carry.
const MaxTransmittedM = 1<<16 - 1

// Estimator derives a Golomb parameter from residual statistics.
type Estimator struct {
	// Num and Den form the scale factor applied to the mean absolute residual.
	Num, Den int64
	// MaxM caps the estimate.
	MaxM int
	// SampleCap bounds how many residuals are inspected; larger blocks are sampled
	// every ceil(count/SampleCap) elements starting at index 0.
	SampleCap int
}

// Audio returns the preset tuned for 16-bit audio residuals: scale 0.95, m <= 32767.
func Audio() Estimator {
	return Estimator{Num: 19, Den: 20, MaxM: 32767, SampleCap: 4096}
}

// Image returns the preset tuned for 8-bit image residuals: scale 0.7, m <= 256.
func Image() Estimator {
	return Estimator{Num: 7, Den: 10, MaxM: 256, SampleCap: 2000}
}

// Validate checks that the estimator can produce a transmittable m.
func (e Estimator) Validate() error {
	if e.Num <= 0 || e.Den <= 0 {
		return fmt.Errorf("%w: scale %d/%d", errs.ErrInvalidEstimator, e.Num, e.Den)
	}
	if e.MaxM < 1 || e.MaxM > MaxTransmittedM {
		return fmt.Errorf("%w: max m %d not in [1, %d]", errs.ErrInvalidEstimator, e.MaxM, MaxTransmittedM)
	}
	if e.SampleCap < 1 {
		return fmt.Errorf("%w: sample cap %d", errs.ErrInvalidEstimator, e.SampleCap)
	}

	return nil
}

// Stride returns the sampling stride used for a block of count residuals.
func (e Estimator) Stride(count int) int {
	if count <= e.SampleCap || e.SampleCap <= 0 {
		return 1
	}

	return (count + e.SampleCap - 1) / e.SampleCap
}

// Estimate returns the Golomb parameter for residuals. An empty block yields 1.
func (e Estimator) Estimate(residuals []int64) int {
	if len(residuals) == 0 {
		return 1
	}

	stride := e.Stride(len(residuals))
	var sum, n int64
	for i := 0; i < len(residuals); i += stride {
		v := residuals[i]
		if v < 0 {
			v = -v
		}
		sum += v
		n++
	}

	m := (2*sum*e.Num + n*e.Den) / (2 * n * e.Den)

	return int(max(1, min(m, int64(e.MaxM))))
}
