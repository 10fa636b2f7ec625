package cache

import (
	"testing"
	"time"
)

func TestDiskCache_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	key := ChunkKey("spacy", "", "Chapter one text.")
	if err := c.Set(key, []byte(`{"tokens":1}`), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, found := c.Get(key)
	if !found {
		t.Fatal("Expected cache hit after Set")
	}
	if string(val) != `{"tokens":1}` {
		t.Errorf("Unexpected cached value: %s", val)
	}
}

func TestDiskCache_Expiration(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	key := ChunkKey("spacy", "", "expired chunk")
	if err := c.Set(key, []byte("x"), -time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, found := c.Get(key); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestChunkKey_DistinguishesProviderAndModel(t *testing.T) {
	a := ChunkKey("spacy", "", "same text")
	b := ChunkKey("openai", "gpt-4o-mini", "same text")
	c := ChunkKey("openai", "gpt-4o", "same text")

	if a == b || b == c || a == c {
		t.Error("Expected distinct keys for distinct provider/model combinations")
	}
}

func TestLayeredCache_PromotesFromDisk(t *testing.T) {
	dir := t.TempDir()

	// Seed the disk layer directly, then read through a fresh layered cache
	disk := NewDiskCache(dir, time.Hour)
	key := ChunkKey("spacy", "", "promote me")
	if err := disk.Set(key, []byte("v"), 0); err != nil {
		t.Fatalf("seed disk: %v", err)
	}

	layered := NewLayeredCache(time.Hour, dir, time.Hour)
	if _, found := layered.Get(key); !found {
		t.Fatal("Expected layered cache to find disk entry")
	}

	// Entry should now also be served from memory
	if _, found := layered.memory.Get(key); !found {
		t.Error("Expected disk hit to be promoted to memory")
	}
}
