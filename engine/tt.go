package engine

import "github.com/daystram/gambit/board"

type EntryType uint8

const (
	EntryTypeUnknown EntryType = iota
	EntryTypeExact
	EntryTypeLowerBound
	EntryTypeUpperBound
)

const (
	// DefaultHashTableSize is the entry count NewEngine defaults to when
	// EngineConfig.HashTableSize is zero: 2^20 entries, within the
	// [2^12, 2^22] range the table is required to support.
	DefaultHashTableSize = 1 << 20

	// MinHashTableSize and MaxHashTableSize bound NewTranspositionTable's
	// requested capacity, per spec's [2^12, 2^22] entry-count range.
	MinHashTableSize = 1 << 12
	MaxHashTableSize = 1 << 22
)

type entry struct {
	hash  uint64
	mv    board.Move
	score int16
	depth uint8
	typ   EntryType
}

// TranspositionTable is a fixed-capacity, direct-mapped position cache.
// Capacity is rounded up to a power of two in [2^12, 2^22]. It is owned by
// a single *Engine instance — never process-global mutable state.
type TranspositionTable struct {
	table    []entry
	maskHash uint64

	hits   uint64
	misses uint64
	writes uint64
}

// NewTranspositionTable builds a table with capacity rounded up to the
// nearest power of two within the supported range.
func NewTranspositionTable(size uint32) *TranspositionTable {
	if size < MinHashTableSize {
		size = MinHashTableSize
	}
	if size > MaxHashTableSize {
		size = MaxHashTableSize
	}
	capacity := uint32(1)
	for capacity < size {
		capacity <<= 1
	}
	return &TranspositionTable{
		table:    make([]entry, capacity),
		maskHash: uint64(capacity - 1),
	}
}

func (t *TranspositionTable) index(hash uint64) uint64 {
	return (hash ^ (hash >> 32)) & t.maskHash
}

// Set stores mv/score/depth for b's position, following the replacement
// policy: empty slot always stores; a matching key always overwrites; a
// colliding different key is replaced only if the new depth is at least as
// deep as what is already stored.
func (t *TranspositionTable) Set(b *board.Board, typ EntryType, mv board.Move, score int16, depth uint8) {
	hash := b.Hash()
	idx := t.index(hash)
	e := &t.table[idx]
	if e.hash == 0 && e.depth == 0 || e.hash == hash || depth >= e.depth {
		t.writes++
		*e = entry{hash: hash, mv: mv, score: score, depth: depth, typ: typ}
	}
}

// Get probes the table for b's position at the requested depth. It returns
// ok=true with full bounds information only when the stored key matches
// and the stored depth is at least as deep as requested; when the key
// matches but the stored depth is insufficient, it still returns the
// best-move hint with hasHint=true (and ok=false, no bounds to trust).
func (t *TranspositionTable) Get(b *board.Board, depth uint8) (typ EntryType, mv board.Move, score int16, ok, hasHint bool) {
	hash := b.Hash()
	e := &t.table[t.index(hash)]
	if e.hash != hash {
		t.misses++
		return EntryTypeUnknown, board.Move{}, 0, false, false
	}
	if e.depth >= depth {
		t.hits++
		return e.typ, e.mv, e.score, true, true
	}
	t.hits++
	return EntryTypeUnknown, e.mv, 0, false, true
}

// Clear discards every stored entry without reallocating the backing
// array.
func (t *TranspositionTable) Clear() {
	for i := range t.table {
		t.table[i] = entry{}
	}
	t.hits, t.misses, t.writes = 0, 0, 0
}

// Stats reports cumulative probe/write counters since construction or the
// last Clear.
func (t *TranspositionTable) Stats() (hits, misses, writes uint64) {
	return t.hits, t.misses, t.writes
}
