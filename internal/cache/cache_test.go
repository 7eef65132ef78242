// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package cache

import "testing"

func TestGetOrCreateBuildsOnce(t *testing.T) {
	c := New[int, string](0)
	calls := 0
	create := func() string {
		calls++
		return "v"
	}
	for range 3 {
		if got := c.GetOrCreate(1, create); got != "v" {
			t.Fatalf("GetOrCreate = %q", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestEvictionKeepsRecent(t *testing.T) {
	c := New[int, int](8)
	for i := range 8 {
		c.Set(i, i)
	}
	// Touch the oldest so it survives.
	if _, ok := c.Get(0); !ok {
		t.Fatal("entry 0 missing before eviction")
	}
	c.Set(100, 100)

	if n := c.Len(); n != 6 {
		t.Errorf("Len after eviction = %d, want 6", n)
	}
	for _, k := range []int{0, 100} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("recent entry %d was evicted", k)
		}
	}
	if _, ok := c.Get(1); ok {
		t.Error("least recently used entry 1 survived")
	}
}

func TestClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("Get after Clear found entry")
	}
}
