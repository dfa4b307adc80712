// Package section defines the binary headers of golombo streams and envelopes.
//
// # Stream Header
//
// Every encoded stream starts with a StreamHeader written through the bit writer,
// MSB-first, and padded to a byte boundary:
//
//	Bits | Field
//	-----|--------------------------------------------------
//	32   | magic 0x474C4D42 ("GLMB")
//	8    | version (1)
//	8    | domain (1=audio, 2=image)
//	8    | channel count (audio) or plane count (image)
//	32   | sample rate (audio only)
//	32   | width (image only)
//	32   | height (image only)
//	8    | bits per sample
//	8    | predictor
//	8    | sign mapping
//	8    | channel transform
//	1    | adaptive-m flag
//	16   | fixed m (ignored when the adaptive-m flag is set)
//	32   | block size
//	32   | element count per channel
//
// Block data follows: for each channel, for each block, a 16-bit m and the Golomb coded
// residuals. Each channel ends on a byte boundary.
//
// # Envelope Header
//
// The optional envelope frames a stream for storage with a fixed 20-byte little-endian
// header:
//
//	Bytes  | Field
//	-------|------------------------------------------
//	0-3    | magic "GLME"
//	4      | version (1)
//	5      | compression type
//	6-7    | reserved, zero
//	8-11   | length of the uncompressed stream
//	12-19  | xxHash64 of the uncompressed stream
//
// The possibly compressed stream follows the header.
package section
