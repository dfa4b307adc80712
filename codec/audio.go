package codec

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/arloliu/golombo/bitstream"
	"github.com/arloliu/golombo/channel"
	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
	"github.com/arloliu/golombo/internal/hash"
	"github.com/arloliu/golombo/internal/options"
	"github.com/arloliu/golombo/internal/pool"
	"github.com/arloliu/golombo/section"
)

// Audio is a multi-channel PCM signal.
type Audio struct {
	// SampleRate is carried through the stream unchanged.
	SampleRate uint32
	// BitDepth is the signed sample width, 1 to 24 bits.
	BitDepth int
	// Channels holds one equally long slice of samples per channel.
	Channels [][]int32
}

// Result is the outcome of an Encode call.
type Result struct {
	Bytes []byte
	Stats Stats
}

// AudioEncoder encodes Audio values into golombo streams.
type AudioEncoder struct {
	cfg *EncoderConfig
}

// NewAudioEncoder creates an audio encoder.
//
// Defaults: Linear2 prediction, odd-even mapping, blocks of 1024 samples, adaptive m
// with the estimate.Audio preset, independent channels.
//
// Returns:
//   - *AudioEncoder: the configured encoder
//   - error: an errs.ErrParameter-class error for invalid options
func NewAudioEncoder(opts ...EncoderOption) (*AudioEncoder, error) {
	cfg := newEncoderConfig(format.DomainAudio)
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &AudioEncoder{cfg: cfg}, nil
}

// Encode encodes a into a new byte slice.
//
// Returns:
//   - Result: the stream and its statistics
//   - error: a format error for inconsistent input, or errs.ErrValueOverflow when a
//     residual exceeds the quotient ceiling
func (e *AudioEncoder) Encode(a Audio) (Result, error) {
	buf := pool.GetOutputBuffer()
	defer pool.PutOutputBuffer(buf)

	stats, err := e.EncodeTo(buf, a)
	if err != nil {
		return Result{}, err
	}

	return Result{Bytes: bytes.Clone(buf.Bytes()), Stats: stats}, nil
}

// EncodeTo encodes a and writes the stream to w.
//
// The input is fully validated before anything is written. A write error may leave a
// partial stream in w.
func (e *AudioEncoder) EncodeTo(w io.Writer, a Audio) (Stats, error) {
	h, err := e.prepare(a)
	if err != nil {
		return Stats{}, err
	}

	coded, cleanup, err := codedChannels(&h, a.Channels)
	if err != nil {
		return Stats{}, err
	}
	defer cleanup()

	stats := newStats(&h)
	stats.Digest = hash.Samples(a.Channels)
	if err := encodeStream(w, &h, e.cfg, coded, &stats); err != nil {
		return Stats{}, err
	}

	return stats, nil
}

// prepare validates a and returns its stream header.
func (e *AudioEncoder) prepare(a Audio) (section.StreamHeader, error) {
	n := len(a.Channels)
	if n < 1 || n > section.MaxAudioChannels {
		return section.StreamHeader{}, fmt.Errorf("%w: %d audio channels", errs.ErrInvalidChannelCount, n)
	}

	if a.BitDepth < 1 || a.BitDepth > section.MaxAudioBitDepth {
		return section.StreamHeader{}, fmt.Errorf("%w: %d bits per audio sample", errs.ErrInvalidBitDepth, a.BitDepth)
	}

	count := len(a.Channels[0])
	for i, ch := range a.Channels {
		if len(ch) != count {
			return section.StreamHeader{}, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				errs.ErrChannelMismatch, i, len(ch), count)
		}
	}
	if uint64(count) > math.MaxUint32 {
		return section.StreamHeader{}, fmt.Errorf("%w: %d samples per channel", errs.ErrInvalidHeader, count)
	}

	if err := checkRange(a.Channels, signedRange(a.BitDepth), errs.ErrSampleRange); err != nil {
		return section.StreamHeader{}, err
	}

	transform := e.cfg.transform
	if e.cfg.adaptiveStereo {
		transform = format.TransformIndependent
		if n == 2 {
			transform = channel.Choose(a.Channels[0], a.Channels[1])
		}
	}

	if transform != format.TransformIndependent && n != 2 {
		return section.StreamHeader{}, fmt.Errorf("%w: %s needs 2 channels, got %d", errs.ErrUnsupportedTransform, transform, n)
	}

	h := section.NewAudioHeader(a.SampleRate, uint8(a.BitDepth), uint8(n), uint32(count)) //nolint: gosec // bounded above
	e.cfg.fillHeader(&h)
	h.Transform = transform

	return h, h.Validate()
}

// AudioDecoder decodes golombo audio streams.
type AudioDecoder struct {
	cfg *DecoderConfig
}

// NewAudioDecoder creates an audio decoder.
func NewAudioDecoder(opts ...DecoderOption) (*AudioDecoder, error) {
	cfg := newDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &AudioDecoder{cfg: cfg}, nil
}

// Decode decodes a complete audio stream held in data.
//
// Returns:
//   - Audio: the reconstructed signal
//   - Stats: statistics of the decoded stream
//   - error: a format error for an invalid header, or a decode bounds error for a
//     corrupted or truncated stream
func (d *AudioDecoder) Decode(data []byte) (Audio, Stats, error) {
	return d.decode(bitstream.NewReaderBytes(data), int64(len(data)))
}

// DecodeFrom decodes an audio stream read from r.
//
// When r implements io.ByteReader (bytes.Reader, bytes.Buffer, bufio.Reader) it is
// left positioned right after the stream, so consecutive streams can be decoded from
// one source. Other readers are buffered and may be read past the end of the stream.
func (d *AudioDecoder) DecodeFrom(r io.Reader) (Audio, Stats, error) {
	return d.decode(bitstream.NewReader(r), -1)
}

func (d *AudioDecoder) decode(r *bitstream.Reader, sizeHint int64) (Audio, Stats, error) {
	h, channels, stats, err := decodeStream(r, format.DomainAudio, d.cfg, sizeHint)
	if err != nil {
		return Audio{}, Stats{}, err
	}

	if h.Transform != format.TransformIndependent {
		if err := channel.Restore(h.Transform, channels[0], channels[1]); err != nil {
			return Audio{}, Stats{}, err
		}
	}

	if err := checkRange(channels, sourceRange(&h), errs.ErrSampleOutOfRange); err != nil {
		return Audio{}, Stats{}, err
	}

	stats.Digest = hash.Samples(channels)

	return Audio{SampleRate: h.SampleRate, BitDepth: int(h.BitDepth), Channels: channels}, stats, nil
}
