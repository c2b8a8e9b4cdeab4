package engine

import (
	"time"

	"github.com/daystram/gambit/board"
)

// hintCacheCapacity bounds the cache's entry count; once exceeded, the
// oldest entries (by Timestamp) are purged to make room.
const hintCacheCapacity = 5000

// HintRecord is a remembered best move for a position, keyed by its
// Zobrist hash, used to seed move ordering across unrelated searches of
// the same position (e.g. transposing into a known line).
type HintRecord struct {
	Best      board.Move
	ScoreCP   int32
	Depth     uint8
	Timestamp time.Time
}

// HintCache is a bounded, LRU-by-timestamp map from a position's 64-bit
// Zobrist key directly to its best-known move, sidestepping the hex-string
// key a FEN-keyed cache would otherwise require.
type HintCache struct {
	entries map[uint64]HintRecord
}

// NewHintCache builds an empty cache.
func NewHintCache() *HintCache {
	return &HintCache{entries: make(map[uint64]HintRecord)}
}

// Get looks up a position by its Zobrist key.
func (c *HintCache) Get(key uint64) (HintRecord, bool) {
	rec, ok := c.entries[key]
	return rec, ok
}

// Put records or replaces the hint for key, evicting the oldest entries
// first if the cache is at capacity.
func (c *HintCache) Put(key uint64, rec HintRecord) {
	if _, exists := c.entries[key]; !exists && len(c.entries) >= hintCacheCapacity {
		c.evictOldest()
	}
	c.entries[key] = rec
}

// Len reports the current entry count.
func (c *HintCache) Len() int {
	return len(c.entries)
}

func (c *HintCache) evictOldest() {
	var oldestKey uint64
	var oldestTime time.Time
	first := true
	for k, v := range c.entries {
		if first || v.Timestamp.Before(oldestTime) {
			oldestKey, oldestTime = k, v.Timestamp
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
