package codec

import (
	"github.com/arloliu/golombo/format"
	"github.com/arloliu/golombo/predict"
	"github.com/arloliu/golombo/section"
)

// scanner resolves the prediction of each element of one channel.
//
// Both sides drive a scanner with the same prefix: the encoder with its input and the
// decoder with the samples reconstructed so far.
type scanner interface {
	// begin is called at the start of every block and returns the predictor in effect.
	begin(past []int32) format.PredictorType
	// predict returns the prediction for position len(past).
	predict(past []int32) int64
}

// newScanner creates a fresh scanner for one channel of a stream described by h.
func newScanner(h *section.StreamHeader) (scanner, error) {
	if h.Domain == format.DomainImage {
		s := &planeScanner{
			width:    int(h.Width),
			sentinel: predict.Sentinel(int(h.BitDepth)),
			adaptive: h.Predictor == format.PredictorAdaptive,
		}
		if !s.adaptive {
			p, err := predict.For2D(h.Predictor)
			if err != nil {
				return nil, err
			}
			s.cur = p
		}

		return s, nil
	}

	s := &sampleScanner{
		window:   int(h.BlockSize),
		adaptive: h.Predictor == format.PredictorAdaptive,
	}
	if !s.adaptive {
		p, err := predict.For1D(h.Predictor)
		if err != nil {
			return nil, err
		}
		s.cur = p
	}

	return s, nil
}

// sampleScanner predicts one-dimensional signals. In adaptive mode the linear order
// is chosen per block from the trailing window of reconstructed samples.
type sampleScanner struct {
	cur      predict.Predictor1D
	window   int
	adaptive bool
}

func (s *sampleScanner) begin(past []int32) format.PredictorType {
	if s.adaptive {
		s.cur = predict.SelectLinear(past, s.window)
	}

	return s.cur.Type()
}

func (s *sampleScanner) predict(past []int32) int64 {
	return s.cur.Predict(past)
}

// planeScanner predicts raster-scanned planes. In adaptive mode the spatial predictor
// is chosen per row from the reconstructed row above.
type planeScanner struct {
	cur      predict.Predictor2D
	width    int
	sentinel int32
	adaptive bool
}

func (s *planeScanner) begin(past []int32) format.PredictorType {
	if s.adaptive {
		s.cur = predict.SelectRow(past, s.width, s.sentinel)
	}

	return s.cur.Type()
}

func (s *planeScanner) predict(past []int32) int64 {
	if s.adaptive && len(past)%s.width == 0 {
		s.cur = predict.SelectRow(past, s.width, s.sentinel)
	}

	return s.cur.PredictPixel(past, s.width, s.sentinel)
}
