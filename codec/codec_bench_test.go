package codec

import (
	"bytes"
	"testing"

	"github.com/hupe1980/xvec"
)

func benchVector(b *testing.B) *xvec.Vector[float32] {
	b.Helper()
	v, err := xvec.New[float32]()
	if err != nil {
		b.Fatal(err)
	}
	for i := range 1 << 16 {
		_ = v.Append(float32(i % 251))
	}
	return v
}

func BenchmarkEncode(b *testing.B) {
	v := benchVector(b)
	for _, c := range []Compression{None, LZ4, ZSTD} {
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(v.Len() * 4))
			var buf bytes.Buffer
			for b.Loop() {
				buf.Reset()
				if err := Encode(&buf, v, WithCompression(c)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecode(b *testing.B) {
	v := benchVector(b)
	for _, c := range []Compression{None, LZ4, ZSTD} {
		data, err := Marshal(v, WithCompression(c))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(v.Len() * 4))
			for b.Loop() {
				w, err := Unmarshal[float32](data)
				if err != nil {
					b.Fatal(err)
				}
				w.Free()
			}
		})
	}
}
