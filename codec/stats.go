package codec

import "github.com/arloliu/golombo/format"

// BlockStats describes one coded block.
type BlockStats struct {
	// Channel is the index of the coded channel the block belongs to.
	Channel int
	// Index is the block index within its channel.
	Index int
	// Start is the position of the first element of the block within its channel.
	Start int
	// Len is the number of elements in the block.
	Len int
	// M is the Golomb parameter of the block.
	M int
	// Predictor is the predictor in effect at the start of the block.
	Predictor format.PredictorType
	// Bits is the size of the block including its 16-bit m field.
	Bits int64
}

// Stats describes a single encode or decode call.
//
// Stats values are independent snapshots; nothing in them is shared with the encoder,
// the decoder or other calls.
type Stats struct {
	Domain    format.Domain
	Channels  int
	Elements  int // per channel
	BitDepth  int
	Predictor format.PredictorType
	Mapping   format.SignMapping
	Transform format.ChannelTransform

	// HeaderBits is the size of the stream header including its padding.
	HeaderBits int64
	// PayloadBits is the sum of all block sizes.
	PayloadBits int64
	// TotalBits is the size of the whole stream, a multiple of 8.
	TotalBits int64

	Blocks []BlockStats

	// Digest is the xxHash64 of the original channels. Equal digests on the encode
	// and decode side confirm a lossless round trip.
	Digest uint64
}

// OriginalBits returns the size of the raw signal at its declared bit depth.
func (s Stats) OriginalBits() int64 {
	return int64(s.Channels) * int64(s.Elements) * int64(s.BitDepth)
}

// Ratio returns the compressed size divided by the original size.
//
// Values below 1.0 indicate compression. Returns 0.0 for an empty signal.
func (s Stats) Ratio() float64 {
	original := s.OriginalBits()
	if original == 0 {
		return 0.0
	}

	return float64(s.TotalBits) / float64(original)
}

// SpaceSavings returns the space savings as a percentage of the original size.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

// BitsPerElement returns the average number of stream bits per element.
func (s Stats) BitsPerElement() float64 {
	n := int64(s.Channels) * int64(s.Elements)
	if n == 0 {
		return 0.0
	}

	return float64(s.TotalBits) / float64(n)
}

// MeanM returns the average Golomb parameter over all blocks.
func (s Stats) MeanM() float64 {
	if len(s.Blocks) == 0 {
		return 0.0
	}

	var sum int64
	for _, b := range s.Blocks {
		sum += int64(b.M)
	}

	return float64(sum) / float64(len(s.Blocks))
}
