package storage

import (
	"container/list"
	"testing"
)

const benchDepth = 1024

// BenchmarkStorage_PushPop measures steady-state push/pop cycles once the
// table has reached its working size.
func BenchmarkStorage_PushPop(b *testing.B) {
	for _, e := range engines {
		b.Run(e.name, func(b *testing.B) {
			s := e.new()
			for i := range benchDepth {
				s.Push(i)
			}
			for range benchDepth {
				s.Pop()
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for j := range benchDepth {
					s.Push(j)
				}
				for range benchDepth {
					s.Pop()
				}
			}
		})
	}

	// Baseline: one heap element per push.
	b.Run("ContainerList", func(b *testing.B) {
		l := list.New()

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			for j := range benchDepth {
				l.PushFront(j)
			}
			for range benchDepth {
				l.Remove(l.Front())
			}
		}
	})
}

// BenchmarkStorage_Fill measures growth cost from an empty table.
func BenchmarkStorage_Fill(b *testing.B) {
	for _, e := range engines {
		b.Run(e.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				s := e.new()
				for j := range benchDepth {
					s.Push(j)
				}
			}
		})
	}
}

// BenchmarkStorage_Clone measures the copy-on-write fork cost.
func BenchmarkStorage_Clone(b *testing.B) {
	for _, e := range engines {
		b.Run(e.name, func(b *testing.B) {
			s := e.new()
			for j := range benchDepth {
				s.Push(j)
			}

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Clone()
			}
		})
	}
}
