package skiplist

import (
	"sync"
	"testing"
)

// Scenario 6: thread-safety smoke test. Stable keys stay stable under
// concurrent writers touching disjoint churn ranges while readers iterate
// and probe get/contains agreement.
func TestThreadSafetySmoke(t *testing.T) {
	sl := New[int, int](SetMode)

	const stableBase = 1_000_000_000
	const stableCount = 128
	for i := 0; i < stableCount; i++ {
		if err := sl.Put(stableBase+i, stableBase+i); err != nil {
			t.Fatal(err)
		}
	}

	const writers = 4
	const churnPerWriter = 500
	var wg sync.WaitGroup

	stopReaders := make(chan struct{})
	var readerWG sync.WaitGroup
	readerWG.Add(2)
	for r := 0; r < 2; r++ {
		go func() {
			defer readerWG.Done()
			for {
				select {
				case <-stopReaders:
					return
				default:
				}
				it := sl.Items()
				var prev int
				hasPrev := false
				for {
					item, ok := it.Next()
					if !ok {
						break
					}
					if hasPrev && item.Key < prev {
						it.Close()
						t.Errorf("iteration not monotonic: %d after %d", item.Key, prev)
						return
					}
					prev = item.Key
					hasPrev = true
				}
				it.Close()

				for i := 0; i < stableCount; i++ {
					k := stableBase + i
					v, got := sl.Get(k)
					has := sl.Contains(k)
					if got != has {
						t.Errorf("Get/Contains disagree for stable key %d: got=%v has=%v", k, got, has)
						return
					}
					if has && v != k {
						t.Errorf("stable key %d has value %d, want %d", k, v, k)
						return
					}
				}
			}
		}()
	}

	wg.Add(writers)
	for w := 0; w < writers; w++ {
		go func(w int) {
			defer wg.Done()
			base := w * churnPerWriter
			for i := 0; i < churnPerWriter; i++ {
				k := base + i
				if err := sl.Put(k, k); err != nil {
					t.Errorf("Put(%d): %v", k, err)
					return
				}
				if i%7 == 0 {
					sl.FetchRemove(k)
				}
			}
		}(w)
	}
	wg.Wait()
	close(stopReaders)
	readerWG.Wait()

	for i := 0; i < stableCount; i++ {
		k := stableBase + i
		v, ok := sl.Get(k)
		if !ok || v != k {
			t.Fatalf("stable key %d = %d, %v after join, want %d, true", k, v, ok, k)
		}
	}

	for w := 0; w < writers; w++ {
		base := w * churnPerWriter
		for i := 0; i < churnPerWriter; i++ {
			if i%7 == 0 {
				continue
			}
			k := base + i
			v, ok := sl.Get(k)
			if !ok || v != k {
				t.Fatalf("churn key %d = %d, %v, want %d, true", k, v, ok, k)
			}
		}
	}
}
