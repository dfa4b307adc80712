package compress

import (
	"testing"
)

func BenchmarkCompress(b *testing.B) {
	data := payloads()["mixed"]

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				if _, err := codec.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := payloads()["mixed"]

	for _, ct := range allTypes {
		codec, err := GetCodec(ct)
		if err != nil {
			b.Fatal(err)
		}
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				if _, err := codec.Decompress(compressed, len(data)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
