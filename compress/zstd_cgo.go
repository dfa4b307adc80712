//go:build cgozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

const gozstdLevel = 3

// Compress encodes src with libzstd.
func (c ZstdCompressor) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, src, gozstdLevel), nil
}

// Decompress decodes a Zstandard frame with libzstd.
func (c ZstdCompressor) Decompress(src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 {
		return nil, checkLength(format.CompressionZstd, 0, rawLen)
	}

	out, err := gozstd.Decompress(make([]byte, 0, min(rawLen, maxZstdPrealloc)), src)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrInvalidEnvelope, err)
	}
	if err := checkLength(format.CompressionZstd, len(out), rawLen); err != nil {
		return nil, err
	}

	return out, nil
}
