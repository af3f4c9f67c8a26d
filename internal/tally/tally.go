package tally

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// DefaultShards is the shard count used when the caller passes a
// non-positive value to New. Sixteen shards keep lock contention low for
// typical worker pools without wasting memory on near-empty maps.
const DefaultShards = 16

// LocalCounts is a worker-private frequency map. It is built without any
// locking while a worker scans its files and folded into the shared Table
// exactly once, when the worker finishes.
type LocalCounts map[string]uint64

// shard is one independently locked slice of the word space.
type shard struct {
	mu     sync.Mutex
	counts map[string]uint64
}

// Table is the shared word-frequency table. Words are distributed across a
// fixed set of shards by hash, so merges from different workers contend
// only when they touch the same shard at the same moment.
//
// All methods are safe for concurrent use. The zero value is not usable;
// construct with New.
type Table struct {
	shards []shard
	merges uint64
}

// New creates an empty table with the given shard count. Passing a value
// less than 1 selects DefaultShards. The shard count is fixed for the
// lifetime of the table.
func New(shards int) *Table {
	if shards < 1 {
		shards = DefaultShards
	}
	t := &Table{shards: make([]shard, shards)}
	for i := range t.shards {
		t.shards[i].counts = make(map[string]uint64)
	}
	return t
}

// shardIndex maps a word to its owning shard using FNV-1a. The modulo is
// taken in uint32 space so the result is always a valid index.
func (t *Table) shardIndex(word string) int {
	h := fnv.New32a()
	h.Write([]byte(word))
	return int(h.Sum32() % uint32(len(t.shards)))
}

// Merge folds a worker's private counts into the table. The words are
// grouped by owning shard first, so each shard lock is taken at most once
// per call no matter how many words the worker saw.
//
// Merge is additive: merging {a:2} and then {a:3} leaves a at 5, and the
// final table contents do not depend on the order in which workers merge.
func (t *Table) Merge(local LocalCounts) {
	atomic.AddUint64(&t.merges, 1)
	if len(local) == 0 {
		return
	}

	buckets := make([]LocalCounts, len(t.shards))
	for word, n := range local {
		i := t.shardIndex(word)
		if buckets[i] == nil {
			buckets[i] = make(LocalCounts)
		}
		buckets[i][word] = n
	}

	for i, bucket := range buckets {
		if bucket == nil {
			continue
		}
		s := &t.shards[i]
		s.mu.Lock()
		for word, n := range bucket {
			s.counts[word] += n
		}
		s.mu.Unlock()
	}
}

// Add records n additional occurrences of a single word. It exists for
// callers that produce counts one word at a time; bulk ingestion should
// accumulate a LocalCounts and Merge it instead.
func (t *Table) Add(word string, n uint64) {
	s := &t.shards[t.shardIndex(word)]
	s.mu.Lock()
	s.counts[word] += n
	s.mu.Unlock()
}

// Count returns the recorded frequency of word, zero when absent.
func (t *Table) Count(word string) uint64 {
	s := &t.shards[t.shardIndex(word)]
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[word]
}

// Distinct reports how many distinct words the table holds.
func (t *Table) Distinct() int {
	total := 0
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.Lock()
		total += len(s.counts)
		s.mu.Unlock()
	}
	return total
}

// Snapshot copies the full table into a single map. Shards are locked one
// at a time, so a snapshot taken while merges are in flight reflects each
// shard at a slightly different instant; after all workers have merged it
// is exact.
func (t *Table) Snapshot() map[string]uint64 {
	out := make(map[string]uint64, t.Distinct())
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.Lock()
		for word, n := range s.counts {
			out[word] = n
		}
		s.mu.Unlock()
	}
	return out
}

// NumShards returns the table's fixed shard count.
func (t *Table) NumShards() int {
	return len(t.shards)
}

// Merges reports how many Merge calls the table has absorbed. Each worker
// merges exactly once, so after a run this equals the worker count.
func (t *Table) Merges() uint64 {
	return atomic.LoadUint64(&t.merges)
}
