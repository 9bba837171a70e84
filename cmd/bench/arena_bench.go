package main

import (
	"fmt"
	"runtime"
	"time"

	"math/rand/v2"

	"github.com/kv-skiplist/skiplist"
)

func main() {
	const N = 200000

	// prepare keys
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	keys := make([]int, N)
	for i := 0; i < N; i++ {
		keys[i] = r.Int()
	}

	configs := []struct {
		name string
		opts []skiplist.Option[int, int]
	}{
		{"default-chunk-128", nil},
		{"chunk-1<<16-factor-2", []skiplist.Option[int, int]{
			skiplist.WithInitialChunkSize[int, int](1 << 16),
			skiplist.WithGrowthFactor[int, int](2.0),
		}},
		{"chunk-1<<10-factor-1.5", []skiplist.Option[int, int]{
			skiplist.WithInitialChunkSize[int, int](1 << 10),
			skiplist.WithGrowthFactor[int, int](1.5),
		}},
		{"chunk-1<<20-presized", []skiplist.Option[int, int]{
			skiplist.WithInitialChunkSize[int, int](1 << 20),
		}},
	}

	fmt.Printf("Running lightweight node-cache insert microbench (N=%d)\n", N)

	for _, cfg := range configs {
		runtime.GC()
		time.Sleep(50 * time.Millisecond)
		fmt.Printf("\nConfig: %s\n", cfg.name)

		sl := skiplist.New[int, int](skiplist.SetMode, cfg.opts...)

		var msBefore, msAfter runtime.MemStats
		runtime.ReadMemStats(&msBefore)
		start := time.Now()

		for i := 0; i < N; i++ {
			if err := sl.Put(keys[i], i); err != nil {
				fmt.Printf("put failed: %v\n", err)
				break
			}
		}

		dur := time.Since(start)
		runtime.ReadMemStats(&msAfter)

		nsPerOp := float64(dur.Nanoseconds()) / float64(N)
		allocDiff := int64(msAfter.TotalAlloc) - int64(msBefore.TotalAlloc)

		fmt.Printf("Duration: %s, ns/op: %.1f, TotalAlloc diff: %d bytes, Len: %d\n", dur, nsPerOp, allocDiff, sl.Len())
	}
}
