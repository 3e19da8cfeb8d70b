package cache

import (
	"errors"
	"sync"
	"testing"
)

// put stores value under key through GetOrCreate.
func put[K comparable, V any](t *testing.T, c *Cache[K, V], key K, value V) {
	t.Helper()
	if _, err := c.GetOrCreate(key, func() (V, error) { return value, nil }); err != nil {
		t.Fatalf("GetOrCreate(%v) error = %v", key, err)
	}
}

func TestCacheGet(t *testing.T) {
	c := New[string, int](0)

	if _, ok := c.Get("a"); ok {
		t.Fatal("Get on empty cache returned ok")
	}
	put(t, c, "a", 1)
	put(t, c, "b", 2)

	if v, ok := c.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %d, %v, want 1, true", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	// Get miss, two creating misses, one Get hit.
	hits, misses := c.Stats()
	if hits != 1 || misses != 3 {
		t.Errorf("Stats() = %d, %d, want 1, 3", hits, misses)
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	put(t, c, "a", 1)
	put(t, c, "b", 2)
	c.Get("a") // b is now the oldest
	put(t, c, "c", 3)

	if _, ok := c.Get("b"); ok {
		t.Error("b should have been evicted")
	}
	for _, k := range []string{"a", "c"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("%s should still be cached", k)
		}
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestCacheEvictionAfterDelete(t *testing.T) {
	c := New[int, int](2)
	put(t, c, 1, 1)
	put(t, c, 2, 2)
	c.Delete(1)
	put(t, c, 3, 3)
	put(t, c, 4, 4) // evicts 2, the only entry older than 3

	if _, ok := c.Get(2); ok {
		t.Error("2 should have been evicted")
	}
	if _, ok := c.Get(3); !ok {
		t.Error("3 should still be cached")
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](0)
	calls := 0
	create := func() (int, error) {
		calls++
		return 42, nil
	}

	for range 3 {
		v, err := c.GetOrCreate("k", create)
		if err != nil || v != 42 {
			t.Fatalf("GetOrCreate() = %d, %v, want 42, nil", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheGetOrCreateError(t *testing.T) {
	c := New[string, int](0)
	wantErr := errors.New("boom")

	if _, err := c.GetOrCreate("k", func() (int, error) { return 0, wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("GetOrCreate() error = %v, want %v", err, wantErr)
	}
	if c.Len() != 0 {
		t.Errorf("failed create must not store a value, Len() = %d", c.Len())
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	c := New[int, string](0)
	put(t, c, 1, "one")
	put(t, c, 2, "two")

	if !c.Delete(1) {
		t.Error("Delete(1) = false, want true")
	}
	if c.Delete(1) {
		t.Error("second Delete(1) = true, want false")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if hits, misses := c.Stats(); hits != 0 || misses != 0 {
		t.Errorf("Stats() after Clear = %d, %d, want 0, 0", hits, misses)
	}
}

func TestCacheConcurrentGetOrCreate(t *testing.T) {
	c := New[int, int](8)
	var wg sync.WaitGroup
	for i := range 64 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.GetOrCreate(i%16, func() (int, error) { return i, nil })
		}()
	}
	wg.Wait()

	if c.Len() > 8 {
		t.Errorf("Len() = %d, want at most 8", c.Len())
	}
}
