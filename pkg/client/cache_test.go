package client

import (
	"testing"
	"time"
)

func TestHandleCacheStoreGet(t *testing.T) {
	cache := NewHandleCache(10, time.Minute)

	handle := []byte{0, 0, 0, 3, 0, 0, 0, 1}
	cache.Store("/self", handle)

	got, ok := cache.Get("/self")
	if !ok {
		t.Fatal("Cached handle not found")
	}
	if string(got) != string(handle) {
		t.Errorf("Handle mismatch: got %v, want %v", got, handle)
	}

	// The cache returns copies, not aliases
	got[0] = 0xff
	again, _ := cache.Get("/self")
	if again[0] == 0xff {
		t.Error("Cache entry aliased by caller mutation")
	}

	if _, ok := cache.Get("/missing"); ok {
		t.Error("Got a handle for a path never stored")
	}
}

func TestHandleCacheExpiry(t *testing.T) {
	cache := NewHandleCache(10, -time.Second) // already expired

	cache.Store("/self", []byte{1})
	if _, ok := cache.Get("/self"); ok {
		t.Error("Expired entry served")
	}
}

func TestHandleCacheInvalidate(t *testing.T) {
	cache := NewHandleCache(10, time.Minute)

	cache.Store("/self", []byte{1})
	cache.Invalidate("/self")
	if _, ok := cache.Get("/self"); ok {
		t.Error("Invalidated entry served")
	}
}

func TestHandleCacheBounded(t *testing.T) {
	cache := NewHandleCache(2, time.Minute)

	cache.Store("/a", []byte{1})
	cache.Store("/b", []byte{2})
	cache.Store("/c", []byte{3})

	// The newest entry is always present
	if _, ok := cache.Get("/c"); !ok {
		t.Error("Newest entry evicted")
	}
}
