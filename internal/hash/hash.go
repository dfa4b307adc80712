// Package hash provides the xxHash64 digests used by golombo.
package hash

import (
	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/golombo/endian"
)

// sampleChunk is the number of samples serialized per digest write.
const sampleChunk = 1024

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Samples computes the xxHash64 of the given channels.
//
// Each channel contributes its length followed by its samples, all as little-endian
// 32-bit words, so that equal digests imply equal channel layouts and contents.
func Samples(channels [][]int32) uint64 {
	engine := endian.GetLittleEndianEngine()
	d := xxhash.New()
	buf := make([]byte, 0, 4*sampleChunk)

	for _, ch := range channels {
		buf = engine.AppendUint32(buf[:0], uint32(len(ch))) //nolint: gosec // channel lengths fit the 32-bit count field
		_, _ = d.Write(buf)

		for len(ch) > 0 {
			n := min(len(ch), sampleChunk)
			buf = buf[:0]
			for _, v := range ch[:n] {
				buf = engine.AppendUint32(buf, uint32(v)) //nolint: gosec // two's complement bit pattern
			}
			_, _ = d.Write(buf)
			ch = ch[n:]
		}
	}

	return d.Sum64()
}
