package compress

import (
	"fmt"

	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

// Compressor compresses a complete encoded stream.
type Compressor interface {
	// Type returns the compression type recorded in the envelope header.
	Type() format.CompressionType

	// Compress returns the compressed form of src.
	//
	// The returned slice may alias src for codecs that do not transform their input;
	// src itself is never modified.
	Compress(src []byte) ([]byte, error)
}

// Decompressor restores a stream compressed by the matching Compressor.
type Decompressor interface {
	// Decompress expands src, which must decode to exactly rawLen bytes.
	//
	// Returns:
	//   - []byte: the restored stream
	//   - error: errs.ErrInvalidEnvelope if src is corrupt or expands to a different length
	Decompress(src []byte, rawLen int) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a new Codec for the given compression type.
//
// Returns:
//   - Codec: a codec instance for compressionType
//   - error: errs.ErrUnsupportedCompressor for unknown types
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompressor, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompressor, compressionType)
}

// checkLength reports a payload that did not expand to the recorded length.
func checkLength(algo format.CompressionType, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s payload expands to %d bytes, header says %d", errs.ErrInvalidEnvelope, algo, got, want)
	}

	return nil
}
