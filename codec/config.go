package codec

import (
	"fmt"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/estimate"
	"github.com/arloliu/golombo/format"
	"github.com/arloliu/golombo/golomb"
	"github.com/arloliu/golombo/internal/options"
	"github.com/arloliu/golombo/section"
)

// EncoderConfig holds the coding parameters shared by the audio and image encoders.
type EncoderConfig struct {
	domain         format.Domain
	predictor      format.PredictorType
	mapping        format.SignMapping
	transform      format.ChannelTransform
	adaptiveStereo bool
	blockSize      int
	adaptiveM      bool
	fixedM         int
	estimator      estimate.Estimator
	maxQuotient    uint64
}

// newEncoderConfig creates a configuration with the defaults of the given domain.
func newEncoderConfig(domain format.Domain) *EncoderConfig {
	c := &EncoderConfig{
		domain:      domain,
		mapping:     format.OddEvenMapping,
		transform:   format.TransformIndependent,
		blockSize:   section.DefaultBlockSize,
		adaptiveM:   true,
		maxQuotient: golomb.DefaultMaxQuotient,
	}

	if domain == format.DomainImage {
		c.predictor = format.PredictorMedianEdge
		c.estimator = estimate.Image()
	} else {
		c.predictor = format.PredictorLinear2
		c.estimator = estimate.Audio()
	}

	return c
}

// validate checks the options that depend on the encoder domain.
func (c *EncoderConfig) validate() error {
	if !c.predictor.ValidFor(c.domain) {
		return fmt.Errorf("%w: %w: %s for %s", errs.ErrParameter, errs.ErrUnsupportedPredictor, c.predictor, c.domain)
	}

	switch c.transform { //nolint: exhaustive
	case format.TransformIndependent:
		return nil
	case format.TransformMidSide, format.TransformLeftSide, format.TransformRightSide:
		if c.domain == format.DomainAudio {
			return nil
		}
	case format.TransformRCT:
		if c.domain == format.DomainImage {
			return nil
		}
	}

	return fmt.Errorf("%w: %w: %s for %s", errs.ErrParameter, errs.ErrUnsupportedTransform, c.transform, c.domain)
}

// fillHeader copies the coding parameters into h.
func (c *EncoderConfig) fillHeader(h *section.StreamHeader) {
	h.Predictor = c.predictor
	h.Mapping = c.mapping
	h.AdaptiveM = c.adaptiveM
	h.FixedM = 0
	if !c.adaptiveM {
		h.FixedM = uint16(c.fixedM) //nolint: gosec // WithFixedM bounds m to 16 bits
	}
	h.BlockSize = uint32(c.blockSize) //nolint: gosec // WithBlockSize bounds the size
}

// EncoderOption configures an audio or image encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithPredictor sets the predictor. PredictorAdaptive selects a linear order per block
// for audio and a spatial predictor per row for images.
//
// The predictor must be valid for the encoder domain; this is checked when the
// encoder is created.
func WithPredictor(p format.PredictorType) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.predictor = p
	})
}

// WithSignMapping sets how signed residuals are folded before Golomb coding.
// The default is format.OddEvenMapping.
func WithSignMapping(m format.SignMapping) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		switch m { //nolint: exhaustive
		case format.SignAndMagnitude, format.OddEvenMapping:
			c.mapping = m
			return nil
		default:
			return fmt.Errorf("%w: %w: %d", errs.ErrParameter, errs.ErrUnsupportedMapping, m)
		}
	})
}

// WithBlockSize sets the number of elements that share one Golomb parameter.
// The default is 1024.
func WithBlockSize(n int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if n < 1 || n > section.MaxBlockSize {
			return fmt.Errorf("%w: %d not in [1, %d]", errs.ErrInvalidBlockSize, n, section.MaxBlockSize)
		}
		c.blockSize = n

		return nil
	})
}

// WithFixedM disables estimation and codes every block with parameter m.
func WithFixedM(m int) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if m < 1 || m > section.MaxBlockM {
			return fmt.Errorf("%w: %d not in [1, %d]", errs.ErrInvalidM, m, section.MaxBlockM)
		}
		c.adaptiveM = false
		c.fixedM = m

		return nil
	})
}

// WithAdaptiveM estimates the Golomb parameter of every block from its residuals.
// It is the default.
func WithAdaptiveM() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.adaptiveM = true
	})
}

// WithEstimator replaces the domain preset used by adaptive m.
func WithEstimator(e estimate.Estimator) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if err := e.Validate(); err != nil {
			return err
		}
		c.estimator = e

		return nil
	})
}

// WithChannelTransform sets the stereo transform of an audio encoder.
// Streams that do not have exactly two channels are rejected by Encode.
func WithChannelTransform(t format.ChannelTransform) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.transform = t
		c.adaptiveStereo = false
	})
}

// WithAdaptiveStereo lets an audio encoder pick the stereo transform per stream with
// channel.Choose. Streams that do not have two channels are coded independently.
func WithAdaptiveStereo() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.adaptiveStereo = true
	})
}

// WithColorTransform enables the reversible color transform of an image encoder.
// Images that do not have three planes are rejected by Encode.
func WithColorTransform(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		if enabled {
			c.transform = format.TransformRCT
		} else {
			c.transform = format.TransformIndependent
		}
	})
}

// WithMaxQuotient sets the Golomb quotient ceiling. Encoding fails with
// errs.ErrValueOverflow rather than emit a longer unary run. Decoders must be
// configured with at least the same ceiling.
func WithMaxQuotient(limit uint64) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		if limit == 0 {
			return errs.ErrInvalidQuotientCap
		}
		c.maxQuotient = limit

		return nil
	})
}

// DecoderConfig holds decoder limits.
type DecoderConfig struct {
	maxQuotient uint64
}

func newDecoderConfig() *DecoderConfig {
	return &DecoderConfig{maxQuotient: golomb.DefaultMaxQuotient}
}

// DecoderOption configures an audio or image decoder.
type DecoderOption = options.Option[*DecoderConfig]

// WithDecoderMaxQuotient sets the largest unary quotient the decoder accepts before
// reporting errs.ErrQuotientOverflow.
func WithDecoderMaxQuotient(limit uint64) DecoderOption {
	return options.New(func(c *DecoderConfig) error {
		if limit == 0 {
			return errs.ErrInvalidQuotientCap
		}
		c.maxQuotient = limit

		return nil
	})
}
