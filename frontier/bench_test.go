package frontier_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/shortest/frontier"
)

// BenchmarkPushPop measures a push-heavy workload followed by draining.
func BenchmarkPushPop(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	dists := make([]float64, 4096)
	for i := range dists {
		dists[i] = rng.Float64() * 1000
	}
	f := frontier.New[int](frontier.WithCapacity[int](len(dists)))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v, d := range dists {
			f.Push(d, v)
		}
		for !f.IsEmpty() {
			_, _ = f.PopMin()
		}
		f.Reset()
	}
}
