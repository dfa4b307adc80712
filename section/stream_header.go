package section

import (
	"fmt"

	"github.com/arloliu/golombo/bitstream"
	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

// StreamHeader describes an encoded golombo stream.
type StreamHeader struct {
	// Domain selects the audio or image field layout.
	Domain format.Domain
	// Channels is the number of audio channels or image planes.
	Channels uint8
	// SampleRate is the audio sample rate in Hz. Unused for images.
	SampleRate uint32
	// Width and Height are the image dimensions. Unused for audio.
	Width, Height uint32
	// BitDepth is the number of bits per sample of the original signal.
	BitDepth uint8
	// Predictor is the predictor used for every channel.
	Predictor format.PredictorType
	// Mapping is the Golomb sign mapping.
	Mapping format.SignMapping
	// Transform is the inter-channel transform applied before coding.
	Transform format.ChannelTransform
	// AdaptiveM reports whether m was estimated per block.
	AdaptiveM bool
	// FixedM is the configured m when AdaptiveM is false.
	FixedM uint16
	// BlockSize is the number of elements sharing one m.
	BlockSize uint32
	// Count is the number of elements per channel.
	Count uint32
}

// NewAudioHeader creates an audio header with default coding parameters.
func NewAudioHeader(sampleRate uint32, bitDepth uint8, channels uint8, count uint32) StreamHeader {
	return StreamHeader{
		Domain:     format.DomainAudio,
		Channels:   channels,
		SampleRate: sampleRate,
		BitDepth:   bitDepth,
		Predictor:  format.PredictorLinear2,
		Mapping:    format.OddEvenMapping,
		Transform:  format.TransformIndependent,
		AdaptiveM:  true,
		BlockSize:  DefaultBlockSize,
		Count:      count,
	}
}

// NewImageHeader creates an image header with default coding parameters.
func NewImageHeader(width, height uint32, bitDepth uint8, planes uint8) StreamHeader {
	return StreamHeader{
		Domain:    format.DomainImage,
		Channels:  planes,
		Width:     width,
		Height:    height,
		BitDepth:  bitDepth,
		Predictor: format.PredictorMedianEdge,
		Mapping:   format.OddEvenMapping,
		Transform: format.TransformIndependent,
		AdaptiveM: true,
		BlockSize: DefaultBlockSize,
		Count:     width * height,
	}
}

// Bits returns the serialized header size in bits, including the final padding.
func (h *StreamHeader) Bits() int {
	n := magicBits + versionBits + domainBits + channelBits + bitDepthBits + 3*enumBits +
		flagBits + BlockMBits + blockSizeBits + countBits
	if h.Domain == format.DomainImage {
		n += 2 * dimensionBits
	} else {
		n += rateBits
	}

	return (n + 7) &^ 7
}

// WriteTo validates the header and writes it to w, leaving w on a byte boundary.
//
// Returns:
//   - error: a validation error, or the sticky sink error of w
func (h *StreamHeader) WriteTo(w *bitstream.Writer) error {
	if err := h.Validate(); err != nil {
		return err
	}

	w.WriteBits(MagicNumber, magicBits)
	w.WriteBits(StreamVersion, versionBits)
	w.WriteBits(uint64(h.Domain), domainBits)
	w.WriteBits(uint64(h.Channels), channelBits)
	if h.Domain == format.DomainImage {
		w.WriteBits(uint64(h.Width), dimensionBits)
		w.WriteBits(uint64(h.Height), dimensionBits)
	} else {
		w.WriteBits(uint64(h.SampleRate), rateBits)
	}
	w.WriteBits(uint64(h.BitDepth), bitDepthBits)
	w.WriteBits(uint64(h.Predictor), enumBits)
	w.WriteBits(uint64(h.Mapping), enumBits)
	w.WriteBits(uint64(h.Transform), enumBits)
	w.WriteBit(h.AdaptiveM)
	w.WriteBits(uint64(h.FixedM), BlockMBits)
	w.WriteBits(uint64(h.BlockSize), blockSizeBits)
	w.WriteBits(uint64(h.Count), countBits)
	w.AlignToByte()

	return w.Err()
}

// Parse reads and validates a header from r, leaving r on a byte boundary.
//
// Returns:
//   - error: errs.ErrInvalidMagic, errs.ErrUnsupportedVersion, a validation error,
//     or errs.ErrTruncated when the stream ends inside the header
func (h *StreamHeader) Parse(r *bitstream.Reader) error {
	magic, err := r.ReadBits(magicBits)
	if err != nil {
		return err
	}
	if magic != MagicNumber {
		return fmt.Errorf("%w: 0x%08X", errs.ErrInvalidMagic, magic)
	}

	hr := headerReader{r: r}
	if version := hr.read(versionBits); hr.err == nil && version != StreamVersion {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, version)
	}

	*h = StreamHeader{}
	h.Domain = format.Domain(hr.read(domainBits))
	h.Channels = uint8(hr.read(channelBits))
	if h.Domain == format.DomainImage {
		h.Width = uint32(hr.read(dimensionBits))
		h.Height = uint32(hr.read(dimensionBits))
	} else {
		h.SampleRate = uint32(hr.read(rateBits))
	}
	h.BitDepth = uint8(hr.read(bitDepthBits))
	h.Predictor = format.PredictorType(hr.read(enumBits))
	h.Mapping = format.SignMapping(hr.read(enumBits))
	h.Transform = format.ChannelTransform(hr.read(enumBits))
	h.AdaptiveM = hr.read(flagBits) == 1
	h.FixedM = uint16(hr.read(BlockMBits))
	h.BlockSize = uint32(hr.read(blockSizeBits))
	h.Count = uint32(hr.read(countBits))
	if hr.err != nil {
		return hr.err
	}
	r.AlignToByte()

	return h.Validate()
}

// Validate checks the header fields for consistency.
func (h *StreamHeader) Validate() error {
	switch h.Domain {
	case format.DomainAudio:
		if h.Channels < 1 || h.Channels > MaxAudioChannels {
			return fmt.Errorf("%w: %d audio channels", errs.ErrInvalidChannelCount, h.Channels)
		}
		if h.BitDepth < 1 || h.BitDepth > MaxAudioBitDepth {
			return fmt.Errorf("%w: %d bits per audio sample", errs.ErrInvalidHeader, h.BitDepth)
		}
	case format.DomainImage:
		if h.Channels != ImagePlanesGray && h.Channels != ImagePlanesRGB {
			return fmt.Errorf("%w: %d image planes", errs.ErrInvalidChannelCount, h.Channels)
		}
		if h.BitDepth < 1 || h.BitDepth > MaxImageBitDepth {
			return fmt.Errorf("%w: %d bits per pixel", errs.ErrInvalidHeader, h.BitDepth)
		}
		if h.Width == 0 || h.Height == 0 {
			return fmt.Errorf("%w: %dx%d image", errs.ErrDimensionMismatch, h.Width, h.Height)
		}
		if uint64(h.Width)*uint64(h.Height) != uint64(h.Count) {
			return fmt.Errorf("%w: %dx%d image with %d pixels", errs.ErrDimensionMismatch, h.Width, h.Height, h.Count)
		}
	default:
		return fmt.Errorf("%w: %d", errs.ErrInvalidDomain, h.Domain)
	}

	if !h.Predictor.ValidFor(h.Domain) {
		return fmt.Errorf("%w: %s for %s", errs.ErrUnsupportedPredictor, h.Predictor, h.Domain)
	}

	if h.Mapping != format.SignAndMagnitude && h.Mapping != format.OddEvenMapping {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedMapping, h.Mapping)
	}

	if err := h.validateTransform(); err != nil {
		return err
	}

	if h.BlockSize < 1 || h.BlockSize > MaxBlockSize {
		return fmt.Errorf("%w: block size %d", errs.ErrInvalidHeader, h.BlockSize)
	}

	if !h.AdaptiveM && h.FixedM == 0 {
		return fmt.Errorf("%w: fixed m is zero", errs.ErrInvalidHeader)
	}

	return nil
}

func (h *StreamHeader) validateTransform() error {
	switch h.Transform {
	case format.TransformIndependent:
		return nil
	case format.TransformMidSide, format.TransformLeftSide, format.TransformRightSide:
		if h.Domain == format.DomainAudio && h.Channels == 2 {
			return nil
		}
	case format.TransformRCT:
		if h.Domain == format.DomainImage && h.Channels == ImagePlanesRGB {
			return nil
		}
	}

	return fmt.Errorf("%w: %s with %d %s channels", errs.ErrUnsupportedTransform, h.Transform, h.Channels, h.Domain)
}

// headerReader keeps the first read error so that fixed fields can be read in sequence.
type headerReader struct {
	r   *bitstream.Reader
	err error
}

func (hr *headerReader) read(n int) uint64 {
	if hr.err != nil {
		return 0
	}

	v, err := hr.r.ReadBits(n)
	if err != nil {
		hr.err = err
		return 0
	}

	return v
}
