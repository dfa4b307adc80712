// Package golombo provides lossless compression of audio and image samples with
// causal prediction and adaptive Golomb coding.
//
// Every sample is predicted from samples already coded, and only the prediction
// residual is stored, as a Golomb code whose parameter m is sized per block from the
// local residual magnitude. The decoder reproduces the same predictions from the
// samples it has reconstructed, so the original data is restored bit for bit.
//
// # Core Features
//
//   - Linear audio predictors of order 1 to 3, with per-block order selection
//   - Spatial image predictors (Left, Top, Average, Paeth, median edge), with per-row selection
//   - Mid-side, left-side and right-side stereo decorrelation, chosen per stream on request
//   - Reversible color transform for RGB images
//   - Per-block statistics returned with every encode and decode
//   - Optional envelope with an xxHash64 checksum and Zstd, S2 or LZ4 compression
//
// # Basic Usage
//
// Encoding interleaved 16-bit stereo audio:
//
//	channels, _ := golombo.Deinterleave(pcm, 2)
//	res, err := golombo.EncodeAudio(44100, 16, channels)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d bytes, %.2f bits per sample\n", len(res.Bytes), res.Stats.BitsPerElement())
//
// Decoding:
//
//	audio, stats, err := golombo.DecodeAudio(res.Bytes)
//
// # Package Structure
//
// This package wraps the codec package for the common cases. Use codec directly to
// reuse encoders, stream to an io.Writer, or decode from an io.Reader, and the envelope
// package to add integrity checks and general-purpose compression.
package golombo

import (
	"fmt"

	"github.com/arloliu/golombo/codec"
	"github.com/arloliu/golombo/errs"
)

// EncodeAudio encodes per-channel audio samples.
//
// Parameters:
//   - sampleRate: sample rate recorded in the stream header
//   - bitsPerSample: signed sample width, 1 to 24
//   - channels: 1 to 8 channels of equal length
//   - opts: encoder options, see codec.NewAudioEncoder for the defaults
//
// Returns:
//   - codec.Result: the encoded stream and its statistics
//   - error: a parameter or input validation error
func EncodeAudio(sampleRate uint32, bitsPerSample int, channels [][]int32, opts ...codec.EncoderOption) (codec.Result, error) {
	enc, err := codec.NewAudioEncoder(opts...)
	if err != nil {
		return codec.Result{}, err
	}

	return enc.Encode(codec.Audio{SampleRate: sampleRate, BitDepth: bitsPerSample, Channels: channels})
}

// DecodeAudio decodes an audio stream.
func DecodeAudio(data []byte, opts ...codec.DecoderOption) (codec.Audio, codec.Stats, error) {
	dec, err := codec.NewAudioDecoder(opts...)
	if err != nil {
		return codec.Audio{}, codec.Stats{}, err
	}

	return dec.Decode(data)
}

// EncodeImage encodes a grayscale (one plane) or RGB (three planes) image.
//
// Parameters:
//   - width, height: image dimensions in pixels
//   - bitDepth: unsigned sample width, 1 to 16
//   - planes: Width*Height samples per plane in row-major order
//   - opts: encoder options, see codec.NewImageEncoder for the defaults
func EncodeImage(width, height, bitDepth int, planes [][]int32, opts ...codec.EncoderOption) (codec.Result, error) {
	enc, err := codec.NewImageEncoder(opts...)
	if err != nil {
		return codec.Result{}, err
	}

	return enc.Encode(codec.Image{Width: width, Height: height, BitDepth: bitDepth, Planes: planes})
}

// DecodeImage decodes an image stream.
func DecodeImage(data []byte, opts ...codec.DecoderOption) (codec.Image, codec.Stats, error) {
	dec, err := codec.NewImageDecoder(opts...)
	if err != nil {
		return codec.Image{}, codec.Stats{}, err
	}

	return dec.Decode(data)
}

// Deinterleave splits frame-interleaved samples (L R L R ... for stereo) into one
// slice per channel.
//
// Returns:
//   - [][]int32: n newly allocated channels
//   - error: errs.ErrInvalidChannelCount if n < 1, errs.ErrChannelMismatch if
//     len(samples) is not a multiple of n
func Deinterleave(samples []int32, n int) ([][]int32, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidChannelCount, n)
	}
	if len(samples)%n != 0 {
		return nil, fmt.Errorf("%w: %d samples do not split into %d channels", errs.ErrChannelMismatch, len(samples), n)
	}

	frames := len(samples) / n
	channels := make([][]int32, n)
	for ch := range channels {
		channels[ch] = make([]int32, frames)
	}

	for i, v := range samples {
		channels[i%n][i/n] = v
	}

	return channels, nil
}

// Interleave merges equal-length channels into one frame-interleaved slice.
//
// Returns:
//   - []int32: a newly allocated slice of len(channels)*len(channels[0]) samples
//   - error: errs.ErrInvalidChannelCount for no channels, errs.ErrChannelMismatch
//     for channels of different lengths
func Interleave(channels [][]int32) ([]int32, error) {
	n := len(channels)
	if n == 0 {
		return nil, fmt.Errorf("%w: no channels", errs.ErrInvalidChannelCount)
	}

	frames := len(channels[0])
	for i, ch := range channels {
		if len(ch) != frames {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d", errs.ErrChannelMismatch, i, len(ch), frames)
		}
	}

	out := make([]int32, n*frames)
	for ch, samples := range channels {
		for i, v := range samples {
			out[i*n+ch] = v
		}
	}

	return out, nil
}
