// Package tally implements the shared word-frequency table and the final
// top-M selection over it.
//
// # Architecture
//
// The table is the single point where per-worker results meet, so its whole
// design is about keeping that meeting cheap. Each worker counts words in a
// private LocalCounts map with no synchronization at all, then merges that
// map into the shared Table exactly once, when the worker runs out of
// files:
//
//	worker 1 ── LocalCounts ──┐
//	worker 2 ── LocalCounts ──┤           ┌─ shard 0 (mutex + map)
//	worker 3 ── LocalCounts ──┼─ Merge ──▶├─ shard 1 (mutex + map)
//	   ...                    │           ├─ ...
//	worker N ── LocalCounts ──┘           └─ shard k-1 (mutex + map)
//
// The Table is split into a fixed number of shards, each a map guarded by
// its own mutex. A word always lives in the shard selected by hashing the
// word, so two merges contend only when they touch the same shard at the
// same moment. Merge groups a worker's words by target shard before taking
// any lock, which bounds lock acquisitions at one per shard per merge.
//
// # Why merge-once works
//
// Addition commutes. Each worker's map holds exact counts for the files
// that worker processed, and every file is processed by exactly one worker,
// so folding the maps together in any order produces the same totals as a
// single-threaded count. Nothing reads the table for ranking until all
// workers have merged, which the caller enforces with a join barrier.
//
// Merges are counted (see Merges) so that callers and tests can verify the
// exactly-once discipline instead of assuming it.
//
// # Selection
//
// Top returns the m most frequent words using a bounded min-heap: the heap
// holds the best m entries seen so far with the weakest of them at the
// root, and each remaining entry either evicts that root or is discarded.
// One pass over all shards therefore costs O(W log m) time and O(m) space
// for W distinct words, instead of sorting the whole vocabulary.
//
// Ordering is deterministic: entries sort by descending count, and entries
// with equal counts sort by ascending word. Repeated runs over the same
// input produce byte-identical rankings regardless of worker count, merge
// order, or shard count.
//
// # Choosing a shard count
//
// DefaultShards (16) is a comfortable default for pools of up to a few
// dozen workers. A single shard degrades gracefully into one big locked
// map, which is handy in tests; raising the count past the worker count
// buys little, since a merge already holds each shard lock only briefly.
package tally
