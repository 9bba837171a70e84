package skiplist

import "testing"

func TestCountRangeMatchesWalk(t *testing.T) {
	sl := New[int, int](SetMode)
	for i := 0; i < 100; i += 2 { // evens only: 0,2,4,...,98
		if err := sl.Put(i, i); err != nil {
			t.Fatal(err)
		}
	}

	cases := []struct {
		start, stop, want int
	}{
		{0, 98, 50},
		{10, 20, 6}, // 10,12,...,20
		{1, 1, 0},
		{1, 3, 1}, // just 2
		{200, 300, 0},
		{50, 10, 0}, // start > stop
	}
	for _, c := range cases {
		got := sl.CountRange(c.start, c.stop)
		if got != c.want {
			t.Errorf("CountRange(%d,%d) = %d, want %d", c.start, c.stop, got, c.want)
		}
	}
}

func TestPredecessorSuccessor(t *testing.T) {
	sl := New[int, int](SetMode)
	for _, k := range []int{10, 20, 30} {
		if err := sl.Put(k, k); err != nil {
			t.Fatal(err)
		}
	}

	if item, ok := sl.PredecessorItem(20); !ok || item.Key != 10 {
		t.Fatalf("PredecessorItem(20) = %v, %v, want key 10", item, ok)
	}
	if _, ok := sl.PredecessorItem(10); ok {
		t.Fatal("PredecessorItem(10) should miss, nothing smaller")
	}
	if item, ok := sl.SuccessorItem(20); !ok || item.Key != 30 {
		t.Fatalf("SuccessorItem(20) = %v, %v, want key 30", item, ok)
	}
	if _, ok := sl.SuccessorItem(30); ok {
		t.Fatal("SuccessorItem(30) should miss, nothing larger")
	}
}

func TestGetItemIndexByKeyMissing(t *testing.T) {
	sl := New[int, int](SetMode)
	if err := sl.Put(1, 1); err != nil {
		t.Fatal(err)
	}
	if _, ok := sl.GetItemIndexByKey(99); ok {
		t.Fatal("GetItemIndexByKey(99) should miss")
	}
}
