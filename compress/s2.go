package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

// S2Compressor compresses streams with S2, the Snappy extension from klauspost/compress.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Type returns format.CompressionS2.
func (c S2Compressor) Type() format.CompressionType {
	return format.CompressionS2
}

// Compress encodes src as an S2 block.
func (c S2Compressor) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, src), nil
}

// Decompress decodes an S2 block into a buffer of rawLen bytes.
func (c S2Compressor) Decompress(src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 {
		return nil, checkLength(format.CompressionS2, 0, rawLen)
	}

	n, err := s2.DecodedLen(src)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrInvalidEnvelope, err)
	}
	if err := checkLength(format.CompressionS2, n, rawLen); err != nil {
		return nil, err
	}

	out, err := s2.Decode(make([]byte, rawLen), src)
	if err != nil {
		return nil, fmt.Errorf("%w: s2: %w", errs.ErrInvalidEnvelope, err)
	}

	return out, nil
}
