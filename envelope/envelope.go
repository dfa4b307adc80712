// Package envelope frames an encoded golombo stream for storage or transport.
//
// An envelope is a fixed section.EnvelopeHeader followed by the payload. The header
// records the compression applied to the payload, the length of the original stream
// and its xxHash64 checksum, so Unpack can verify the stream before it reaches a
// decoder. The golombo stream format itself never depends on this package.
//
// Example:
//
//	res, _ := enc.Encode(audio)
//	packed, err := envelope.Pack(res.Bytes, format.CompressionZstd)
//	...
//	stream, err := envelope.Unpack(packed)
//	audio, stats, err := dec.Decode(stream)
package envelope

import (
	"fmt"
	"math"

	"github.com/arloliu/golombo/compress"
	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
	"github.com/arloliu/golombo/internal/hash"
	"github.com/arloliu/golombo/section"
)

// Pack compresses stream with the given codec and prepends an envelope header.
//
// Parameters:
//   - stream: an encoded golombo stream, not modified
//   - compression: the codec applied to the payload
//
// Returns:
//   - []byte: the envelope, a new slice
//   - error: errs.ErrUnsupportedCompressor for unknown codecs, errs.ErrInvalidEnvelope
//     for streams of 4 GiB or more, or a compression error
func Pack(stream []byte, compression format.CompressionType) ([]byte, error) {
	if uint64(len(stream)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: stream of %d bytes", errs.ErrInvalidEnvelope, len(stream))
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Compress(stream)
	if err != nil {
		return nil, fmt.Errorf("compress %s payload: %w", compression, err)
	}

	h := section.EnvelopeHeader{
		Compression: compression,
		RawLength:   uint32(len(stream)), //nolint: gosec // checked above
		Checksum:    hash.Checksum(stream),
	}

	out := make([]byte, 0, section.EnvelopeHeaderSize+len(payload))
	out = h.AppendTo(out)
	out = append(out, payload...)

	return out, nil
}

// Unpack verifies an envelope and returns the original stream.
//
// The returned slice may share memory with data when the payload is uncompressed.
//
// Returns:
//   - []byte: the stream passed to Pack
//   - error: errs.ErrInvalidEnvelope, errs.ErrUnsupportedVersion,
//     errs.ErrUnsupportedCompressor or errs.ErrChecksumMismatch
func Unpack(data []byte) ([]byte, error) {
	h, err := Inspect(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(h.Compression)
	if err != nil {
		return nil, err
	}

	stream, err := codec.Decompress(data[section.EnvelopeHeaderSize:], int(h.RawLength))
	if err != nil {
		return nil, err
	}

	if sum := hash.Checksum(stream); sum != h.Checksum {
		return nil, fmt.Errorf("%w: got %016x, want %016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	return stream, nil
}

// Inspect parses the envelope header of data without touching the payload.
func Inspect(data []byte) (section.EnvelopeHeader, error) {
	var h section.EnvelopeHeader
	if err := h.Parse(data); err != nil {
		return section.EnvelopeHeader{}, err
	}

	return h, nil
}
