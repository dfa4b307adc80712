// Package codec implements the golombo block codec for audio and images.
//
// An encoder writes a section.StreamHeader followed by every channel in turn. Each
// channel is cut into blocks of BlockSize elements. For every block the encoder
// computes residuals against a causal predictor, sizes the Golomb parameter m (fixed
// or estimated from the residuals), writes m in 16 bits and Golomb codes the residuals.
// Every channel ends on a byte boundary.
//
// The decoder mirrors this loop. It predicts from the samples it has already
// reconstructed, so the adaptive predictor choices are recomputed rather than read
// from the stream, and it stops after the element count declared by the header.
//
// # Usage
//
//	enc, err := codec.NewAudioEncoder(
//	    codec.WithPredictor(format.PredictorAdaptive),
//	    codec.WithChannelTransform(format.TransformMidSide),
//	)
//	if err != nil {
//	    return err
//	}
//	res, err := enc.Encode(codec.Audio{SampleRate: 44100, BitDepth: 16, Channels: [][]int32{left, right}})
//
//	dec, _ := codec.NewAudioDecoder()
//	audio, stats, err := dec.Decode(res.Bytes)
//
// Encoders and decoders hold only their configuration and are safe for concurrent use.
// Every call returns its own immutable Stats value.
package codec
