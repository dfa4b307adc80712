// Package predict provides the causal predictors used by golombo.
//
// One-dimensional predictors (Predictor1D) see the reconstructed prefix of a sample
// stream and predict the next sample. Two-dimensional predictors (Predictor2D) see the
// reconstructed prefix of a raster-scanned plane and predict the next pixel from its
// left, top and top-left neighbours.
//
// Predictors receive only the prefix that precedes the current position, so they can
// never read the current or any later element. The adaptive selectors SelectLinear and
// SelectRow are pure functions of the same prefix; encoder and decoder call them with
// identical inputs and reach identical choices without transmitting the selection.
package predict
