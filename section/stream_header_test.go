package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/golombo/bitstream"
	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
)

func writeHeader(t *testing.T, h StreamHeader) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := bitstream.NewWriter(&buf)
	require.NoError(t, h.WriteTo(w))
	require.Equal(t, int64(h.Bits()), w.BitsWritten())
	require.NoError(t, w.Close())

	return buf.Bytes()
}

func TestStreamHeader_RoundTrip(t *testing.T) {
	audio := NewAudioHeader(44100, 16, 2, 123456)
	audio.Transform = format.TransformMidSide
	audio.Predictor = format.PredictorAdaptive
	audio.Mapping = format.SignAndMagnitude
	audio.AdaptiveM = false
	audio.FixedM = 65535
	audio.BlockSize = 4096

	image := NewImageHeader(640, 480, 8, 3)
	image.Transform = format.TransformRCT
	image.BlockSize = 1

	for _, h := range []StreamHeader{audio, image} {
		t.Run(h.Domain.String(), func(t *testing.T) {
			data := writeHeader(t, h)
			require.Len(t, data, h.Bits()/8)

			var got StreamHeader
			r := bitstream.NewReaderBytes(data)
			require.NoError(t, got.Parse(r))
			require.Equal(t, h, got)
			require.Equal(t, int64(h.Bits()), r.BitsRead())
		})
	}
}

func TestStreamHeader_Layout(t *testing.T) {
	h := NewAudioHeader(8000, 8, 1, 0)
	data := writeHeader(t, h)

	require.Equal(t, []byte("GLMB"), data[0:4])
	require.Equal(t, byte(StreamVersion), data[4])
	require.Equal(t, byte(format.DomainAudio), data[5])
	require.Equal(t, byte(1), data[6])
	require.Equal(t, []byte{0, 0, 0x1F, 0x40}, data[7:11])
	require.Equal(t, 26, len(data))
	imageHeader := NewImageHeader(1, 1, 8, 1)
	require.Equal(t, 30, imageHeader.Bits()/8)
}

func TestStreamHeader_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(h *StreamHeader)
		image  bool
		want   error
	}{
		{"unknown domain", func(h *StreamHeader) { h.Domain = 7 }, false, errs.ErrInvalidDomain},
		{"zero audio channels", func(h *StreamHeader) { h.Channels = 0 }, false, errs.ErrInvalidChannelCount},
		{"too many audio channels", func(h *StreamHeader) { h.Channels = 9 }, false, errs.ErrInvalidChannelCount},
		{"two image planes", func(h *StreamHeader) { h.Channels = 2 }, true, errs.ErrInvalidChannelCount},
		{"audio bit depth zero", func(h *StreamHeader) { h.BitDepth = 0 }, false, errs.ErrInvalidHeader},
		{"audio bit depth 25", func(h *StreamHeader) { h.BitDepth = 25 }, false, errs.ErrInvalidHeader},
		{"image bit depth 17", func(h *StreamHeader) { h.BitDepth = 17 }, true, errs.ErrInvalidHeader},
		{"zero width", func(h *StreamHeader) { h.Width = 0; h.Count = 0 }, true, errs.ErrDimensionMismatch},
		{"count mismatch", func(h *StreamHeader) { h.Count++ }, true, errs.ErrDimensionMismatch},
		{"image predictor on audio", func(h *StreamHeader) { h.Predictor = format.PredictorPaeth }, false, errs.ErrUnsupportedPredictor},
		{"audio predictor on image", func(h *StreamHeader) { h.Predictor = format.PredictorLinear3 }, true, errs.ErrUnsupportedPredictor},
		{"unknown mapping", func(h *StreamHeader) { h.Mapping = 0 }, false, errs.ErrUnsupportedMapping},
		{"mid-side on mono", func(h *StreamHeader) { h.Channels = 1; h.Transform = format.TransformMidSide }, false, errs.ErrUnsupportedTransform},
		{"rct on audio", func(h *StreamHeader) { h.Transform = format.TransformRCT }, false, errs.ErrUnsupportedTransform},
		{"rct on gray image", func(h *StreamHeader) { h.Channels = 1; h.Transform = format.TransformRCT }, true, errs.ErrUnsupportedTransform},
		{"unknown transform", func(h *StreamHeader) { h.Transform = 42 }, false, errs.ErrUnsupportedTransform},
		{"zero block size", func(h *StreamHeader) { h.BlockSize = 0 }, false, errs.ErrInvalidHeader},
		{"block size too large", func(h *StreamHeader) { h.BlockSize = MaxBlockSize + 1 }, false, errs.ErrInvalidHeader},
		{"fixed m zero", func(h *StreamHeader) { h.AdaptiveM = false; h.FixedM = 0 }, false, errs.ErrInvalidHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAudioHeader(44100, 16, 2, 100)
			if tt.image {
				h = NewImageHeader(4, 4, 8, 3)
			}
			tt.modify(&h)

			err := h.Validate()
			require.ErrorIs(t, err, tt.want)
			require.ErrorIs(t, err, errs.ErrFormat)

			w := bitstream.NewWriter(&bytes.Buffer{})
			require.ErrorIs(t, h.WriteTo(w), tt.want)
			require.Zero(t, w.BitsWritten())
		})
	}

	t.Run("adaptive m ignores fixed m", func(t *testing.T) {
		h := NewAudioHeader(44100, 16, 1, 0)
		h.FixedM = 0
		require.NoError(t, h.Validate())
	})
}

func TestStreamHeader_ParseErrors(t *testing.T) {
	valid := writeHeader(t, NewImageHeader(8, 2, 8, 1))

	t.Run("bad magic", func(t *testing.T) {
		data := bytes.Clone(valid)
		data[0] = 'X'
		var h StreamHeader
		require.ErrorIs(t, h.Parse(bitstream.NewReaderBytes(data)), errs.ErrInvalidMagic)
	})

	t.Run("unsupported version", func(t *testing.T) {
		data := bytes.Clone(valid)
		data[4] = 2
		var h StreamHeader
		require.ErrorIs(t, h.Parse(bitstream.NewReaderBytes(data)), errs.ErrUnsupportedVersion)
	})

	t.Run("corrupted field", func(t *testing.T) {
		data := bytes.Clone(valid)
		data[5] = byte(format.DomainAudio)
		var h StreamHeader
		require.ErrorIs(t, h.Parse(bitstream.NewReaderBytes(data)), errs.ErrFormat)
	})

	t.Run("truncated", func(t *testing.T) {
		for cut := range len(valid) {
			var h StreamHeader
			err := h.Parse(bitstream.NewReaderBytes(valid[:cut]))
			require.ErrorIs(t, err, errs.ErrTruncated, "cut=%d", cut)
		}
	})
}
