package skiplist

import (
	"errors"
	"testing"
)

func populated0to10(t *testing.T) *SkipList[int, int] {
	t.Helper()
	sl := New[int, int](SetMode)
	for i := 0; i < 10; i++ {
		if err := sl.Put(i, i); err != nil {
			t.Fatal(err)
		}
	}
	return sl
}

// Scenario 4: sliced index read.
func TestScenarioSlicedIndexRead(t *testing.T) {
	sl := populated0to10(t)

	it, err := sl.GetSliceByIndex(8, 10, 2)
	if err != nil {
		t.Fatalf("GetSliceByIndex(8,10,2): %v", err)
	}
	var got []Item[int, int]
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, item)
	}
	it.Close()
	if len(got) != 1 || got[0].Key != 8 {
		t.Fatalf("GetSliceByIndex(8,10,2) = %v, want one item with key 8", got)
	}

	if _, err := sl.GetSliceByIndex(0, 999, 1); !errors.Is(err, ErrInvalidStopIndex) {
		t.Fatalf("GetSliceByIndex(0,999,1) error = %v, want ErrInvalidStopIndex", err)
	}

	if err := sl.SetSliceByIndex(0, 5, 1, 99); err != nil {
		t.Fatalf("SetSliceByIndex(0,5,1,99): %v", err)
	}
	checkInvariants(t, sl)

	want := []int{99, 99, 99, 99, 99, 5, 6, 7, 8, 9}
	forward := sl.Items()
	for i, w := range want {
		item, ok := forward.Next()
		if !ok || item.Value != w {
			forward.Close()
			t.Fatalf("item %d = %v, %v, want value %d", i, item, ok, w)
		}
	}
	forward.Close()
}

func TestGetSliceByIndexRejectsZeroStep(t *testing.T) {
	sl := populated0to10(t)
	if _, err := sl.GetSliceByIndex(0, 5, 0); !errors.Is(err, ErrStepIsZero) {
		t.Fatalf("GetSliceByIndex step=0 error = %v, want ErrStepIsZero", err)
	}
}

func TestGetSliceByKeyRequiresBothKeys(t *testing.T) {
	sl := populated0to10(t)
	if _, err := sl.GetSliceByKey(2, 99, 1); !errors.Is(err, ErrMissingEndKey) {
		t.Fatalf("GetSliceByKey(2,99,1) error = %v, want ErrMissingEndKey", err)
	}
	if _, err := sl.GetSliceByKey(99, 100, 1); !errors.Is(err, ErrMissingStartKey) {
		t.Fatalf("GetSliceByKey(99,100,1) error = %v, want ErrMissingStartKey", err)
	}
}

func TestGetSliceByKeyStep(t *testing.T) {
	sl := populated0to10(t)
	it, err := sl.GetSliceByKey(2, 8, 3)
	if err != nil {
		t.Fatalf("GetSliceByKey(2,8,3): %v", err)
	}
	var keys []int
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		keys = append(keys, item.Key)
	}
	it.Close()
	want := []int{2, 5}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}
}

func TestSetSliceByKey(t *testing.T) {
	sl := populated0to10(t)
	if err := sl.SetSliceByKey(2, 6, 1, -1); err != nil {
		t.Fatalf("SetSliceByKey(2,6,1,-1): %v", err)
	}
	checkInvariants(t, sl)
	for k := 2; k < 6; k++ {
		if v, _ := sl.Get(k); v != -1 {
			t.Fatalf("Get(%d) = %d, want -1", k, v)
		}
	}
	if v, _ := sl.Get(6); v != 6 {
		t.Fatalf("Get(6) = %d, want unchanged 6", v)
	}
}
