package cache

import (
	"errors"
	"testing"
)

func TestGetOrCreateMemoises(t *testing.T) {
	c := New[string, int](0, nil)
	calls := 0
	create := func() (int, error) {
		calls++
		return 42, nil
	}
	for i := 0; i < 3; i++ {
		v, err := c.GetOrCreate("k", create)
		if err != nil || v != 42 {
			t.Fatalf("GetOrCreate() = %v, %v; want 42, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestGetOrCreateErrorNotCached(t *testing.T) {
	c := New[string, int](0, nil)
	wantErr := errors.New("boom")
	if _, err := c.GetOrCreate("k", func() (int, error) { return 0, wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("GetOrCreate() error = %v, want %v", err, wantErr)
	}
	if _, ok := c.Get("k"); ok {
		t.Error("failed create was cached")
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	var released []int
	c := New[int, string](2, func(k int, _ string) { released = append(released, k) })
	mk := func(s string) func() (string, error) { return func() (string, error) { return s, nil } }

	_, _ = c.GetOrCreate(1, mk("a"))
	_, _ = c.GetOrCreate(2, mk("b"))
	_, _ = c.Get(1) // 2 is now oldest
	_, _ = c.GetOrCreate(3, mk("c"))

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Get(2); ok {
		t.Error("entry 2 should have been evicted")
	}
	if len(released) != 1 || released[0] != 2 {
		t.Errorf("released = %v, want [2]", released)
	}
}

func TestDeleteAndClear(t *testing.T) {
	n := 0
	c := New[int, int](0, func(int, int) { n++ })
	for i := 0; i < 4; i++ {
		_, _ = c.GetOrCreate(i, func() (int, error) { return i, nil })
	}
	if !c.Delete(0) || c.Delete(0) {
		t.Error("Delete() should report presence exactly once")
	}
	c.Clear()
	if c.Len() != 0 || n != 4 {
		t.Errorf("after Clear: Len() = %d, releases = %d; want 0, 4", c.Len(), n)
	}
}
