package xvec

import (
	"testing"

	"github.com/hupe1980/xvec/testutil"
)

func BenchmarkAppend(b *testing.B) {
	b.Run("Vector", func(b *testing.B) {
		for b.Loop() {
			v, _ := New[int]()
			for i := range 1024 {
				_ = v.Append(i)
			}
			v.Free()
		}
	})

	b.Run("Slice", func(b *testing.B) {
		for b.Loop() {
			var s []int
			for i := range 1024 {
				s = append(s, i)
			}
			_ = s
		}
	})

	b.Run("Tracked", func(b *testing.B) {
		tr := testutil.NewTracker()
		x := tr.New(1)
		for b.Loop() {
			v, _ := New[testutil.Tracked]()
			for range 64 {
				_ = v.Append(x)
			}
			v.Free()
		}
	})
}

func BenchmarkNewSized(b *testing.B) {
	for b.Loop() {
		v, _ := NewSized(1<<16, 3.14)
		v.Free()
	}
}

func BenchmarkConcat(b *testing.B) {
	src, _ := NewSized(4096, int64(7))
	for b.Loop() {
		v, _ := New[int64]()
		_ = v.Concat(src)
		_ = v.Concat(v)
		v.Free()
	}
}

func BenchmarkGet(b *testing.B) {
	v, _ := NewSized(1024, 1)
	var sum int
	for b.Loop() {
		for i := range v.Len() {
			sum += v.Get(i)
		}
	}
	_ = sum
}
