package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

const maxLZ4Ratio = 255

// lz4CompressorPool pools lz4.Compressor instances, which keep a hash table between calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses streams as raw LZ4 blocks.
//
// LZ4 blocks do not record their decoded size; the envelope length is used instead.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Type returns format.CompressionLZ4.
func (c LZ4Compressor) Type() format.CompressionType {
	return format.CompressionLZ4
}

// Compress encodes src as one LZ4 block.
//
// Returns:
//   - []byte: the compressed block, nil if src is empty
//   - error: compression error if any
func (c LZ4Compressor) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(src)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}

	return dst[:n], nil
}

// Decompress decodes an LZ4 block that must expand to exactly rawLen bytes.
func (c LZ4Compressor) Decompress(src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 {
		return nil, checkLength(format.CompressionLZ4, 0, rawLen)
	}

	// a block expands at most 255 times its size
	if rawLen > maxLZ4Ratio*len(src) {
		return nil, checkLength(format.CompressionLZ4, maxLZ4Ratio*len(src), rawLen)
	}

	buf := make([]byte, rawLen)
	n, err := lz4.UncompressBlock(src, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %w", errs.ErrInvalidEnvelope, err)
	}
	if err := checkLength(format.CompressionLZ4, n, rawLen); err != nil {
		return nil, err
	}

	return buf, nil
}
