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

// Image is a raster-scanned image with one or three planes.
type Image struct {
	Width, Height int
	// BitDepth is the unsigned sample width, 1 to 16 bits.
	BitDepth int
	// Planes holds Width*Height samples per plane in row-major order: one plane for
	// grayscale, R, G and B for color.
	Planes [][]int32
}

// ImageEncoder encodes Image values into golombo streams.
type ImageEncoder struct {
	cfg *EncoderConfig
}

// NewImageEncoder creates an image encoder.
//
// Defaults: median edge prediction, odd-even mapping, blocks of 1024 pixels, adaptive
// m with the estimate.Image preset, no color transform.
func NewImageEncoder(opts ...EncoderOption) (*ImageEncoder, error) {
	cfg := newEncoderConfig(format.DomainImage)
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	if cfg.adaptiveStereo {
		return nil, fmt.Errorf("%w: %w: adaptive stereo on an image encoder", errs.ErrParameter, errs.ErrUnsupportedTransform)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &ImageEncoder{cfg: cfg}, nil
}

// Encode encodes img into a new byte slice.
func (e *ImageEncoder) Encode(img Image) (Result, error) {
	buf := pool.GetOutputBuffer()
	defer pool.PutOutputBuffer(buf)

	stats, err := e.EncodeTo(buf, img)
	if err != nil {
		return Result{}, err
	}

	return Result{Bytes: bytes.Clone(buf.Bytes()), Stats: stats}, nil
}

// EncodeTo encodes img and writes the stream to w.
func (e *ImageEncoder) EncodeTo(w io.Writer, img Image) (Stats, error) {
	h, err := e.prepare(img)
	if err != nil {
		return Stats{}, err
	}

	coded, cleanup, err := codedChannels(&h, img.Planes)
	if err != nil {
		return Stats{}, err
	}
	defer cleanup()

	stats := newStats(&h)
	stats.Digest = hash.Samples(img.Planes)
	if err := encodeStream(w, &h, e.cfg, coded, &stats); err != nil {
		return Stats{}, err
	}

	return stats, nil
}

// prepare validates img and returns its stream header.
func (e *ImageEncoder) prepare(img Image) (section.StreamHeader, error) {
	n := len(img.Planes)
	if n != section.ImagePlanesGray && n != section.ImagePlanesRGB {
		return section.StreamHeader{}, fmt.Errorf("%w: %d image planes", errs.ErrInvalidChannelCount, n)
	}

	if img.BitDepth < 1 || img.BitDepth > section.MaxImageBitDepth {
		return section.StreamHeader{}, fmt.Errorf("%w: %d bits per pixel", errs.ErrInvalidBitDepth, img.BitDepth)
	}

	if img.Width <= 0 || img.Height <= 0 || int64(img.Width)*int64(img.Height) > math.MaxUint32 {
		return section.StreamHeader{}, fmt.Errorf("%w: %dx%d image", errs.ErrDimensionMismatch, img.Width, img.Height)
	}

	pixels := img.Width * img.Height
	for i, p := range img.Planes {
		if len(p) != pixels {
			return section.StreamHeader{}, fmt.Errorf("%w: plane %d has %d samples, want %d",
				errs.ErrDimensionMismatch, i, len(p), pixels)
		}
	}

	if err := checkRange(img.Planes, unsignedRange(img.BitDepth), errs.ErrSampleRange); err != nil {
		return section.StreamHeader{}, err
	}

	if e.cfg.transform == format.TransformRCT && n != section.ImagePlanesRGB {
		return section.StreamHeader{}, fmt.Errorf("%w: RCT needs 3 planes, got %d", errs.ErrUnsupportedTransform, n)
	}

	//nolint: gosec // bounded above
	h := section.NewImageHeader(uint32(img.Width), uint32(img.Height), uint8(img.BitDepth), uint8(n))
	e.cfg.fillHeader(&h)
	h.Transform = e.cfg.transform

	return h, h.Validate()
}

// ImageDecoder decodes golombo image streams.
type ImageDecoder struct {
	cfg *DecoderConfig
}

// NewImageDecoder creates an image decoder.
func NewImageDecoder(opts ...DecoderOption) (*ImageDecoder, error) {
	cfg := newDecoderConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &ImageDecoder{cfg: cfg}, nil
}

// Decode decodes a complete image stream held in data.
func (d *ImageDecoder) Decode(data []byte) (Image, Stats, error) {
	return d.decode(bitstream.NewReaderBytes(data), int64(len(data)))
}

// DecodeFrom decodes an image stream read from r.
//
// When r implements io.ByteReader (bytes.Reader, bytes.Buffer, bufio.Reader) it is
// left positioned right after the stream, so consecutive streams can be decoded from
// one source. Other readers are buffered and may be read past the end of the stream.
func (d *ImageDecoder) DecodeFrom(r io.Reader) (Image, Stats, error) {
	return d.decode(bitstream.NewReader(r), -1)
}

func (d *ImageDecoder) decode(r *bitstream.Reader, sizeHint int64) (Image, Stats, error) {
	h, planes, stats, err := decodeStream(r, format.DomainImage, d.cfg, sizeHint)
	if err != nil {
		return Image{}, Stats{}, err
	}

	if h.Transform == format.TransformRCT {
		if err := channel.RestoreRCT(planes[0], planes[1], planes[2]); err != nil {
			return Image{}, Stats{}, err
		}
	}

	if err := checkRange(planes, sourceRange(&h), errs.ErrSampleOutOfRange); err != nil {
		return Image{}, Stats{}, err
	}

	stats.Digest = hash.Samples(planes)

	return Image{
		Width:    int(h.Width),
		Height:   int(h.Height),
		BitDepth: int(h.BitDepth),
		Planes:   planes,
	}, stats, nil
}
