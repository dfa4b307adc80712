package section

import (
	"fmt"

	"github.com/arloliu/golombo/endian"
	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

// EnvelopeHeader is the fixed-size header that precedes an enveloped stream.
type EnvelopeHeader struct {
	// Compression is the codec applied to the stream payload.
	Compression format.CompressionType
	// RawLength is the length of the uncompressed stream in bytes.
	RawLength uint32
	// Checksum is the xxHash64 of the uncompressed stream.
	Checksum uint64
}

// Parse parses the header from data.
//
// Parameters:
//   - data: byte slice holding at least EnvelopeHeaderSize bytes
//
// Returns:
//   - error: errs.ErrInvalidEnvelope for short input, bad magic or a non-zero reserved
//     field, errs.ErrUnsupportedVersion or errs.ErrUnsupportedCompressor
func (h *EnvelopeHeader) Parse(data []byte) error {
	if len(data) < EnvelopeHeaderSize {
		return fmt.Errorf("%w: %d bytes", errs.ErrInvalidEnvelope, len(data))
	}

	if string(data[0:4]) != EnvelopeMagic {
		return fmt.Errorf("%w: bad magic %q", errs.ErrInvalidEnvelope, data[0:4])
	}

	if data[4] != EnvelopeVersion {
		return fmt.Errorf("%w: envelope version %d", errs.ErrUnsupportedVersion, data[4])
	}

	engine := endian.GetLittleEndianEngine()
	if engine.Uint16(data[6:8]) != 0 {
		return fmt.Errorf("%w: reserved field is set", errs.ErrInvalidEnvelope)
	}

	h.Compression = format.CompressionType(data[5])
	h.RawLength = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])

	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return nil
	default:
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedCompressor, h.Compression)
	}
}

// Bytes serializes the header into a new EnvelopeHeaderSize byte slice.
func (h *EnvelopeHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, EnvelopeHeaderSize))
}

// AppendTo appends the serialized header to dst and returns the extended slice.
func (h *EnvelopeHeader) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = append(dst, EnvelopeMagic...)
	dst = append(dst, EnvelopeVersion, byte(h.Compression))
	dst = engine.AppendUint16(dst, 0)
	dst = engine.AppendUint32(dst, h.RawLength)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}
