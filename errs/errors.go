// Package errs defines the sentinel errors returned by golombo packages.
//
// Errors are grouped into three classes that callers can test with errors.Is:
//
//   - ErrFormat: the input or the stream does not describe a valid golombo payload
//     (bad magic, unsupported version, channel or dimension mismatch, checksum mismatch).
//   - ErrDecodeBounds: decoding ran past a sanity bound (unary quotient ceiling,
//     end of stream, decoded sample outside the declared bit depth).
//   - ErrParameter: a caller supplied an invalid configuration value.
//
// I/O failures of the underlying io.Writer or io.Reader are returned wrapped as-is.
package errs

import (
	"errors"
	"fmt"
	"io"
)

// Error classes.
var (
	ErrFormat       = errors.New("format error")
	ErrDecodeBounds = errors.New("decode bounds exceeded")
	ErrParameter    = errors.New("invalid parameter")
)

// Format errors.
var (
	ErrInvalidMagic          = fmt.Errorf("%w: invalid magic number", ErrFormat)
	ErrUnsupportedVersion    = fmt.Errorf("%w: unsupported version", ErrFormat)
	ErrInvalidDomain         = fmt.Errorf("%w: invalid stream domain", ErrFormat)
	ErrInvalidHeader         = fmt.Errorf("%w: invalid stream header", ErrFormat)
	ErrChannelMismatch       = fmt.Errorf("%w: channel length mismatch", ErrFormat)
	ErrDimensionMismatch     = fmt.Errorf("%w: dimension mismatch", ErrFormat)
	ErrInvalidChannelCount   = fmt.Errorf("%w: invalid channel count", ErrFormat)
	ErrSampleRange           = fmt.Errorf("%w: sample outside declared bit depth", ErrFormat)
	ErrInvalidEnvelope       = fmt.Errorf("%w: invalid envelope", ErrFormat)
	ErrChecksumMismatch      = fmt.Errorf("%w: checksum mismatch", ErrFormat)
	ErrUnsupportedTransform  = fmt.Errorf("%w: channel transform not applicable", ErrFormat)
	ErrUnsupportedPredictor  = fmt.Errorf("%w: predictor not valid for domain", ErrFormat)
	ErrUnsupportedMapping    = fmt.Errorf("%w: unknown sign mapping", ErrFormat)
	ErrUnsupportedCompressor = fmt.Errorf("%w: unknown compression type", ErrFormat)
)

// Decode bounds errors.
var (
	// ErrTruncated is returned when a read needs bits past the end of the stream.
	// It also matches io.ErrUnexpectedEOF.
	ErrTruncated        = fmt.Errorf("%w: %w", ErrDecodeBounds, io.ErrUnexpectedEOF)
	ErrQuotientOverflow = fmt.Errorf("%w: golomb quotient exceeds ceiling", ErrDecodeBounds)
	ErrInvalidBlockM    = fmt.Errorf("%w: block parameter m is zero", ErrDecodeBounds)
	ErrSampleOutOfRange = fmt.Errorf("%w: decoded sample outside declared bit depth", ErrDecodeBounds)
)

// Parameter errors.
var (
	ErrInvalidM           = fmt.Errorf("%w: golomb parameter m must be positive", ErrParameter)
	ErrInvalidBitCount    = fmt.Errorf("%w: bit count out of range", ErrParameter)
	ErrInvalidBlockSize   = fmt.Errorf("%w: block size out of range", ErrParameter)
	ErrInvalidBitDepth    = fmt.Errorf("%w: bit depth out of range", ErrParameter)
	ErrInvalidEstimator   = fmt.Errorf("%w: invalid estimator configuration", ErrParameter)
	ErrInvalidQuotientCap = fmt.Errorf("%w: quotient ceiling must be positive", ErrParameter)
	ErrValueOverflow      = fmt.Errorf("%w: value does not fit the golomb quotient ceiling", ErrParameter)
)
