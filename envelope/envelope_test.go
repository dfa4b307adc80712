package envelope

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/golombo/codec"
	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
	"github.com/arloliu/golombo/internal/hash"
	"github.com/arloliu/golombo/section"
)

var allTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// silentStream encodes a mostly silent mono signal; its payload is a long run of
// one-bit codes that every codec compresses well.
func silentStream(t *testing.T) []byte {
	t.Helper()

	samples := make([]int32, 20000)
	for i := 5000; i < 5100; i++ {
		samples[i] = int32(i%17) - 8
	}

	enc, err := codec.NewAudioEncoder()
	require.NoError(t, err)
	res, err := enc.Encode(codec.Audio{SampleRate: 16000, BitDepth: 16, Channels: [][]int32{samples}})
	require.NoError(t, err)

	return res.Bytes
}

func TestPackUnpack(t *testing.T) {
	stream := silentStream(t)

	for _, ct := range allTypes {
		t.Run(ct.String(), func(t *testing.T) {
			packed, err := Pack(stream, ct)
			require.NoError(t, err)
			require.Equal(t, section.EnvelopeMagic, string(packed[:4]))

			h, err := Inspect(packed)
			require.NoError(t, err)
			require.Equal(t, ct, h.Compression)
			require.Equal(t, uint32(len(stream)), h.RawLength)
			require.Equal(t, hash.Checksum(stream), h.Checksum)

			got, err := Unpack(packed)
			require.NoError(t, err)
			require.Equal(t, stream, got)

			dec, err := codec.NewAudioDecoder()
			require.NoError(t, err)
			_, _, err = dec.Decode(got)
			require.NoError(t, err)
		})
	}
}

func TestPack_Compresses(t *testing.T) {
	stream := silentStream(t)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		packed, err := Pack(stream, ct)
		require.NoError(t, err)
		require.Less(t, len(packed), len(stream), ct.String())
	}

	packed, err := Pack(stream, format.CompressionNone)
	require.NoError(t, err)
	require.Len(t, packed, section.EnvelopeHeaderSize+len(stream))
}

func TestPack_Empty(t *testing.T) {
	for _, ct := range allTypes {
		packed, err := Pack(nil, ct)
		require.NoError(t, err)
		require.Len(t, packed, section.EnvelopeHeaderSize)

		got, err := Unpack(packed)
		require.NoError(t, err)
		require.Empty(t, got)
	}
}

func TestPack_UnknownCompression(t *testing.T) {
	_, err := Pack([]byte{1, 2, 3}, format.CompressionType(9))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompressor)
}

func TestUnpack_Errors(t *testing.T) {
	stream := silentStream(t)

	t.Run("checksum mismatch", func(t *testing.T) {
		packed, err := Pack(stream, format.CompressionNone)
		require.NoError(t, err)
		packed[len(packed)-1] ^= 0x01

		_, err = Unpack(packed)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
		require.ErrorIs(t, err, errs.ErrFormat)
	})

	t.Run("flipped checksum field", func(t *testing.T) {
		packed, err := Pack(stream, format.CompressionS2)
		require.NoError(t, err)
		packed[12] ^= 0xFF

		_, err = Unpack(packed)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("short header", func(t *testing.T) {
		_, err := Unpack([]byte("GLME"))
		require.ErrorIs(t, err, errs.ErrInvalidEnvelope)
	})

	t.Run("bad magic", func(t *testing.T) {
		packed, err := Pack(stream, format.CompressionNone)
		require.NoError(t, err)
		copy(packed, "GLMB")

		_, err = Unpack(packed)
		require.ErrorIs(t, err, errs.ErrInvalidEnvelope)
	})

	t.Run("truncated payload", func(t *testing.T) {
		for _, ct := range allTypes {
			packed, err := Pack(stream, ct)
			require.NoError(t, err)

			_, err = Unpack(packed[:len(packed)-1])
			require.ErrorIs(t, err, errs.ErrInvalidEnvelope, ct.String())
		}
	})

	t.Run("length field", func(t *testing.T) {
		packed, err := Pack(stream, format.CompressionLZ4)
		require.NoError(t, err)
		packed = bytes.Clone(packed)
		packed[8]++

		_, err = Unpack(packed)
		require.ErrorIs(t, err, errs.ErrInvalidEnvelope)
	})
}
