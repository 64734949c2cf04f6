package flow_test

import (
	"math/rand"
	"testing"

	"github.com/YohanAvishke/Algorithms-coursework-sub001/flow"
	"github.com/YohanAvishke/Algorithms-coursework-sub001/netgen"
)

// BenchmarkEdmondsKarp measures the engine on seeded random networks of
// increasing size and density. Matrices are generated once per case so
// only algorithmic cost is timed.
func BenchmarkEdmondsKarp(b *testing.B) {
	cases := []struct {
		name   string
		nodes  int
		prob   float64
		maxCap int64
		seed   int64
	}{
		{"Small", 32, 0.20, 10, 42},
		{"Medium", 64, 0.10, 20, 4242},
		{"Large", 128, 0.05, 50, 424242},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			m, err := netgen.Random(tc.nodes, tc.prob, tc.maxCap, rand.New(rand.NewSource(tc.seed)))
			if err != nil {
				b.Fatal(err)
			}
			src, dst := 0, tc.nodes-1

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := flow.EdmondsKarp(m, src, dst); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
