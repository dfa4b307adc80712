// Package compress provides the general-purpose codecs that can be layered over an
// encoded golombo stream by the envelope package.
//
// Golomb coded streams are already close to the entropy of their residuals, so a
// second stage mostly pays off for long runs of identical codes, such as silence in
// audio or flat regions in images. The supported algorithms are:
//   - None: the stream is stored as is
//   - Zstd: best ratio, moderate speed
//   - S2: balanced speed and ratio
//   - LZ4: fastest decompression
//
// # Interfaces
//
//	type Compressor interface {
//	    Type() format.CompressionType
//	    Compress(src []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(src []byte, rawLen int) ([]byte, error)
//	}
//
// Decompress receives the uncompressed length recorded by the envelope. Codecs use it
// to size their output exactly and fail with errs.ErrInvalidEnvelope when the payload
// does not expand to that length.
//
// # Zstd builds
//
// The default Zstd codec is the pure Go github.com/klauspost/compress/zstd. Building
// with the cgozstd tag switches to github.com/valyala/gozstd, which links libzstd:
//
//	go build -tags cgozstd ./...
//
// Both produce standard Zstandard frames and can read each other's output.
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders, and may be
// shared across goroutines.
package compress
