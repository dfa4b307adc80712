package compress

import "github.com/arloliu/golombo/format"

// NoOpCompressor stores streams without compression.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a codec that passes data through unchanged.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Type returns format.CompressionNone.
func (c NoOpCompressor) Type() format.CompressionType {
	return format.CompressionNone
}

// Compress returns src itself. The result shares memory with src.
func (c NoOpCompressor) Compress(src []byte) ([]byte, error) {
	return src, nil
}

// Decompress returns src itself after checking its length.
func (c NoOpCompressor) Decompress(src []byte, rawLen int) ([]byte, error) {
	if err := checkLength(format.CompressionNone, len(src), rawLen); err != nil {
		return nil, err
	}

	return src, nil
}
