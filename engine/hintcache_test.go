package engine

import (
	"testing"
	"time"

	"github.com/daystram/gambit/board"
)

func TestHintCacheGetPutRoundTrip(t *testing.T) {
	t.Parallel()
	c := NewHintCache()
	mv := board.Move{From: 12, To: 28}
	c.Put(1, HintRecord{Best: mv, ScoreCP: 50, Depth: 3, Timestamp: time.Unix(0, 0)})

	rec, ok := c.Get(1)
	if !ok {
		t.Fatalf("expected a hit")
	}
	if !rec.Best.Equals(mv) || rec.ScoreCP != 50 || rec.Depth != 3 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if c.Len() != 1 {
		t.Errorf("expected len=1, got %d", c.Len())
	}
}

func TestHintCacheEvictsOldestWhenFull(t *testing.T) {
	t.Parallel()
	c := NewHintCache()
	base := time.Unix(1000, 0)
	for i := 0; i < hintCacheCapacity; i++ {
		c.Put(uint64(i), HintRecord{Timestamp: base.Add(time.Duration(i) * time.Second)})
	}
	if c.Len() != hintCacheCapacity {
		t.Fatalf("expected cache full at capacity, got %d", c.Len())
	}

	// key 0 has the oldest timestamp; inserting one more entry must evict it.
	c.Put(uint64(hintCacheCapacity), HintRecord{Timestamp: base.Add(time.Hour)})

	if c.Len() != hintCacheCapacity {
		t.Errorf("expected cache to stay at capacity, got %d", c.Len())
	}
	if _, ok := c.Get(0); ok {
		t.Errorf("expected the oldest entry to have been evicted")
	}
	if _, ok := c.Get(uint64(hintCacheCapacity)); !ok {
		t.Errorf("expected the newly inserted entry to be present")
	}
}
