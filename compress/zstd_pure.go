//go:build !cgozstd

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

// maxZstdWindow bounds the decoder memory for hostile frames.
const maxZstdWindow = 64 << 20

// zstdDecoderPool pools zstd decoders; they run without allocations once warmed up.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
			zstd.WithDecoderMaxWindow(maxZstdWindow),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

// Compress encodes src with a pooled encoder.
func (c ZstdCompressor) Compress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(src, make([]byte, 0, len(src)/2)), nil
}

// Decompress decodes a Zstandard frame with a pooled decoder.
func (c ZstdCompressor) Decompress(src []byte, rawLen int) ([]byte, error) {
	if len(src) == 0 {
		return nil, checkLength(format.CompressionZstd, 0, rawLen)
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(src, make([]byte, 0, min(rawLen, maxZstdPrealloc)))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %w", errs.ErrInvalidEnvelope, err)
	}
	if err := checkLength(format.CompressionZstd, len(out), rawLen); err != nil {
		return nil, err
	}

	return out, nil
}
