package compress

import "github.com/arloliu/golombo/format"

// maxZstdPrealloc caps the output capacity reserved from an untrusted length.
const maxZstdPrealloc = 1 << 20

// ZstdCompressor compresses streams as Zstandard frames.
//
// The implementation is selected at build time, see the package documentation.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec with the default level.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// Type returns format.CompressionZstd.
func (c ZstdCompressor) Type() format.CompressionType {
	return format.CompressionZstd
}
