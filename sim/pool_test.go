package sim

import (
	"testing"
)

func TestPool_PeekHead_NonEmpty_ReturnsFront(t *testing.T) {
	// GIVEN a pool with processes [1, 2]
	pl := NewPool(StateReady)
	p1 := &Process{PID: 1}
	p2 := &Process{PID: 2}
	pl.Append(p1)
	pl.Append(p2)

	// WHEN PeekHead() is called
	got := pl.PeekHead()

	// THEN it returns the front element without removing it
	if got != p1 {
		t.Errorf("PeekHead: got pid %d, want %d", got.PID, p1.PID)
	}
	if pl.Len() != 2 {
		t.Errorf("PeekHead modified pool length: got %d, want 2", pl.Len())
	}
}

func TestPool_PeekTail_ReturnsBack(t *testing.T) {
	// GIVEN a pool with processes [1, 2, 3]
	pl := NewPool(StateReady)
	p3 := &Process{PID: 3}
	pl.Append(&Process{PID: 1})
	pl.Append(&Process{PID: 2})
	pl.Append(p3)

	// WHEN PeekTail() is called
	got := pl.PeekTail()

	// THEN it returns the back element without removing it
	if got != p3 {
		t.Errorf("PeekTail: got pid %d, want %d", got.PID, p3.PID)
	}
	if pl.Len() != 3 {
		t.Errorf("PeekTail modified pool length: got %d, want 3", pl.Len())
	}
}

func TestPool_PeekHead_Empty_Panics(t *testing.T) {
	// GIVEN an empty pool
	pl := NewPool(StateNew)

	// WHEN PeekHead() is called THEN it panics
	defer func() {
		if r := recover(); r == nil {
			t.Error("PeekHead on empty pool did not panic")
		}
	}()
	pl.PeekHead()
}

func TestPool_PopHead_Empty_Panics(t *testing.T) {
	// GIVEN an empty pool
	pl := NewPool(StateNew)

	// WHEN PopHead() is called THEN it panics
	defer func() {
		if r := recover(); r == nil {
			t.Error("PopHead on empty pool did not panic")
		}
	}()
	pl.PopHead()
}

func TestPool_PopHead_RemovesInOrder(t *testing.T) {
	// GIVEN a pool with processes [1, 2, 3]
	pl := NewPool(StateReady)
	pl.Append(&Process{PID: 1})
	pl.Append(&Process{PID: 2})
	pl.Append(&Process{PID: 3})

	// WHEN all elements are popped
	var pids []int64
	for !pl.IsEmpty() {
		pids = append(pids, pl.PopHead().PID)
	}

	// THEN they come out in insertion order
	want := []int64{1, 2, 3}
	for i, pid := range pids {
		if pid != want[i] {
			t.Errorf("PopHead order[%d]: got %d, want %d", i, pid, want[i])
		}
	}
}

func TestPool_Reorder_IsStable(t *testing.T) {
	// GIVEN a pool where two processes share the ordering key
	pl := NewPool(StateReady)
	pl.Append(&Process{PID: 1, TotalBurst: 5})
	pl.Append(&Process{PID: 2, TotalBurst: 3})
	pl.Append(&Process{PID: 3, TotalBurst: 3})

	// WHEN Reorder is called with the SJF ordering
	pl.Reorder(SJF.Less)

	// THEN equal keys keep their insertion order and length is preserved
	if pl.Len() != 3 {
		t.Fatalf("Reorder changed length: got %d, want 3", pl.Len())
	}
	want := []int64{2, 3, 1}
	for i, p := range pl.Items() {
		if p.PID != want[i] {
			t.Errorf("Reorder result[%d]: got pid %d, want %d", i, p.PID, want[i])
		}
	}
}

func TestPool_Reorder_NilLess_Panics(t *testing.T) {
	pl := NewPool(StateReady)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Reorder with nil less did not panic")
		}
	}()
	pl.Reorder(nil)
}

func TestPool_Append_Nil_Panics(t *testing.T) {
	pl := NewPool(StateReady)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Append of nil process did not panic")
		}
	}()
	pl.Append(nil)
}
