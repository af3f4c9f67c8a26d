package tally

import (
	"container/heap"
	"strings"

	"golang.org/x/exp/slices"
)

// Entry pairs a word with its total frequency.
type Entry struct {
	Word  string
	Count uint64
}

// compareEntries orders entries by descending count, ties broken by
// ascending word. Two entries for distinct words never compare equal, so
// the induced order is total and every ranking is deterministic.
func compareEntries(a, b Entry) int {
	switch {
	case a.Count > b.Count:
		return -1
	case a.Count < b.Count:
		return 1
	}
	return strings.Compare(a.Word, b.Word)
}

// bottomHeap keeps the current worst of the retained entries at the root,
// so a better candidate can evict it in O(log m).
type bottomHeap []Entry

func (h bottomHeap) Len() int            { return len(h) }
func (h bottomHeap) Less(i, j int) bool  { return compareEntries(h[i], h[j]) > 0 }
func (h bottomHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *bottomHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }

func (h *bottomHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// Top returns the m highest-frequency entries, ordered by descending count
// with ties broken by ascending word. Fewer than m entries come back when
// the table holds fewer distinct words; m < 1 yields an empty result.
//
// The selection walks every shard once, keeping only the m best candidates
// in a bounded heap, so memory stays O(m) even for huge vocabularies. Top
// must not run concurrently with worker merges if an exact answer is
// required; the pipeline guarantees that by joining all workers first.
func (t *Table) Top(m int) []Entry {
	if m < 1 {
		return nil
	}

	h := make(bottomHeap, 0, m)
	for i := range t.shards {
		s := &t.shards[i]
		s.mu.Lock()
		for word, n := range s.counts {
			e := Entry{Word: word, Count: n}
			if len(h) < m {
				heap.Push(&h, e)
				continue
			}
			if compareEntries(e, h[0]) < 0 {
				h[0] = e
				heap.Fix(&h, 0)
			}
		}
		s.mu.Unlock()
	}

	out := []Entry(h)
	slices.SortFunc(out, compareEntries)
	return out
}
