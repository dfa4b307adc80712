package codec

import (
	"fmt"
	"io"

	"github.com/arloliu/golombo/bitstream"
	"github.com/arloliu/golombo/channel"
	"github.com/arloliu/golombo/errs"
	"github.com/arloliu/golombo/format"
	"github.com/arloliu/golombo/golomb"
	"github.com/arloliu/golombo/internal/pool"
	"github.com/arloliu/golombo/section"
)

// maxPrealloc caps the capacity reserved up front for a decoded channel, so that a
// corrupted count in a streamed header cannot force a huge allocation.
const maxPrealloc = 1 << 20

// valueRange is an inclusive range of sample values.
type valueRange struct {
	lo, hi int64
}

func (r valueRange) contains(v int64) bool {
	return v >= r.lo && v <= r.hi
}

func signedRange(bits int) valueRange {
	return valueRange{lo: -(int64(1) << (bits - 1)), hi: int64(1)<<(bits-1) - 1}
}

func unsignedRange(bits int) valueRange {
	return valueRange{lo: 0, hi: int64(1)<<bits - 1}
}

// sourceRange returns the range of the original samples described by h.
func sourceRange(h *section.StreamHeader) valueRange {
	if h.Domain == format.DomainImage {
		return unsignedRange(int(h.BitDepth))
	}

	return signedRange(int(h.BitDepth))
}

// codedRange returns the range of the channels that are actually block coded.
// Difference channels of a transformed stream need one extra bit.
func codedRange(h *section.StreamHeader) valueRange {
	if h.Transform != format.TransformIndependent {
		return signedRange(int(h.BitDepth) + 1)
	}

	return sourceRange(h)
}

// checkRange reports the first sample outside r.
func checkRange(channels [][]int32, r valueRange, sentinel error) error {
	for ch, samples := range channels {
		for i, v := range samples {
			if !r.contains(int64(v)) {
				return fmt.Errorf("%w: channel %d sample %d is %d, want [%d, %d]", sentinel, ch, i, v, r.lo, r.hi)
			}
		}
	}

	return nil
}

// codedChannels returns the channels that are block coded for h. Transformed channels
// live in pooled buffers released by the returned cleanup.
func codedChannels(h *section.StreamHeader, src [][]int32) ([][]int32, func(), error) {
	if h.Transform == format.TransformIndependent {
		return src, func() {}, nil
	}

	n := int(h.Count)
	coded := make([][]int32, len(src))
	cleanups := make([]func(), 0, len(src))
	cleanup := func() {
		for _, fn := range cleanups {
			fn()
		}
	}
	for i := range coded {
		buf, release := pool.GetInt32Slice(n)
		coded[i] = buf
		cleanups = append(cleanups, release)
	}

	var err error
	if h.Transform == format.TransformRCT {
		err = channel.ApplyRCTInto(src[0], src[1], src[2], coded[0], coded[1], coded[2])
	} else {
		err = channel.ApplyInto(h.Transform, src[0], src[1], coded[0], coded[1])
	}
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return coded, cleanup, nil
}

// newStats creates the stats skeleton of a stream described by h.
func newStats(h *section.StreamHeader) Stats {
	return Stats{
		Domain:    h.Domain,
		Channels:  int(h.Channels),
		Elements:  int(h.Count),
		BitDepth:  int(h.BitDepth),
		Predictor: h.Predictor,
		Mapping:   h.Mapping,
		Transform: h.Transform,
	}
}

// encodeStream writes h followed by the block coded channels to sink.
func encodeStream(sink io.Writer, h *section.StreamHeader, cfg *EncoderConfig, coded [][]int32, stats *Stats) error {
	w := bitstream.NewWriter(sink)
	defer func() { _ = w.Close() }()

	if err := h.WriteTo(w); err != nil {
		return err
	}
	stats.HeaderBits = w.BitsWritten()

	coder, err := golomb.New(1, h.Mapping, golomb.WithMaxQuotient(cfg.maxQuotient))
	if err != nil {
		return err
	}

	blockSize := int(h.BlockSize)
	residuals, cleanup := pool.GetInt64Slice(blockSize)
	defer cleanup()

	for ch, samples := range coded {
		sc, err := newScanner(h)
		if err != nil {
			return err
		}

		for start, idx := 0, 0; start < len(samples); start, idx = start+blockSize, idx+1 {
			end := min(start+blockSize, len(samples))
			before := w.BitsWritten()

			pt := sc.begin(samples[:start])
			block := residuals[:end-start]
			for i := start; i < end; i++ {
				block[i-start] = int64(samples[i]) - sc.predict(samples[:i])
			}

			m := cfg.fixedM
			if h.AdaptiveM {
				m = cfg.estimator.Estimate(block)
			}
			if err := coder.SetM(m); err != nil {
				return err
			}

			w.WriteBits(uint64(m), section.BlockMBits) //nolint: gosec // m is in [1, 65535]
			for i, r := range block {
				if _, err := coder.Encode(w, r); err != nil {
					return fmt.Errorf("channel %d sample %d: %w", ch, start+i, err)
				}
			}

			bits := w.BitsWritten() - before
			stats.PayloadBits += bits
			stats.Blocks = append(stats.Blocks, BlockStats{
				Channel:   ch,
				Index:     idx,
				Start:     start,
				Len:       end - start,
				M:         m,
				Predictor: pt,
				Bits:      bits,
			})
		}

		w.AlignToByte()
		if err := w.Err(); err != nil {
			return fmt.Errorf("write stream: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("write stream: %w", err)
	}
	stats.TotalBits = w.BitsWritten()

	return nil
}

// decodeStream parses the header from r and decodes every coded channel.
//
// sizeHint is the stream length in bytes, or -1 when unknown. A known length lets the
// decoder reject headers that declare more elements than the stream can hold.
func decodeStream(r *bitstream.Reader, domain format.Domain, cfg *DecoderConfig, sizeHint int64) (section.StreamHeader, [][]int32, Stats, error) {
	var h section.StreamHeader
	if err := h.Parse(r); err != nil {
		return h, nil, Stats{}, err
	}

	if h.Domain != domain {
		return h, nil, Stats{}, fmt.Errorf("%w: %s stream, want %s", errs.ErrInvalidDomain, h.Domain, domain)
	}

	// every element takes at least one bit
	if sizeHint >= 0 && int64(h.Channels)*int64(h.Count) > sizeHint*8 {
		return h, nil, Stats{}, fmt.Errorf("%w: %d elements declared in %d bytes", errs.ErrTruncated, int64(h.Channels)*int64(h.Count), sizeHint)
	}

	stats := newStats(&h)
	stats.HeaderBits = r.BitsRead()

	coder, err := golomb.New(1, h.Mapping, golomb.WithMaxQuotient(cfg.maxQuotient))
	if err != nil {
		return h, nil, Stats{}, err
	}

	bounds := codedRange(&h)
	blockSize := int(h.BlockSize)
	count := int(h.Count)
	channels := make([][]int32, h.Channels)

	for ch := range channels {
		r.AlignToByte()

		sc, err := newScanner(&h)
		if err != nil {
			return h, nil, Stats{}, err
		}

		out := make([]int32, 0, min(count, maxPrealloc))
		for start, idx := 0, 0; start < count; start, idx = start+blockSize, idx+1 {
			end := min(start+blockSize, count)
			before := r.BitsRead()

			pt := sc.begin(out)
			m, err := r.ReadBits(section.BlockMBits)
			if err != nil {
				return h, nil, Stats{}, fmt.Errorf("channel %d block %d: %w", ch, idx, err)
			}
			if m == 0 {
				return h, nil, Stats{}, fmt.Errorf("%w: channel %d block %d", errs.ErrInvalidBlockM, ch, idx)
			}
			if err := coder.SetM(int(m)); err != nil {
				return h, nil, Stats{}, err
			}

			for i := start; i < end; i++ {
				res, err := coder.Decode(r)
				if err != nil {
					return h, nil, Stats{}, fmt.Errorf("channel %d sample %d: %w", ch, i, err)
				}

				v := sc.predict(out) + res
				if !bounds.contains(v) {
					return h, nil, Stats{}, fmt.Errorf("%w: channel %d sample %d is %d", errs.ErrSampleOutOfRange, ch, i, v)
				}
				out = append(out, int32(v))
			}

			bits := r.BitsRead() - before
			stats.PayloadBits += bits
			stats.Blocks = append(stats.Blocks, BlockStats{
				Channel:   ch,
				Index:     idx,
				Start:     start,
				Len:       end - start,
				M:         int(m),
				Predictor: pt,
				Bits:      bits,
			})
		}
		channels[ch] = out
	}

	r.AlignToByte()
	stats.TotalBits = r.BitsRead()

	return h, channels, stats, nil
}
