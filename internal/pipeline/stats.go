package pipeline

import "sync/atomic"

// Stats holds the live counters for a run. Workers and the producer update
// them atomically, so a Snapshot can be taken at any time, for example to
// drive a progress display while the run is still going.
type Stats struct {
	// FilesQueued is the number of regular files discovered by traversal
	// and handed to the queue so far.
	FilesQueued uint64

	// FilesProcessed is the number of files fully scanned by workers.
	FilesProcessed uint64

	// FilesFailed is the number of files skipped because they could not be
	// opened or read. A failed file may still contribute the lines that
	// were scanned before the error.
	FilesFailed uint64

	// LinesScanned and WordsCounted accumulate per-file totals as each
	// file completes.
	LinesScanned uint64
	WordsCounted uint64

	// WalkAborted is 1 when a traversal error stopped enumeration early.
	// Files queued before the error are still processed, so the result is
	// partial but internally consistent.
	WalkAborted uint64
}

// Snapshot returns a consistent-enough copy of the counters. Each field is
// loaded atomically; fields may be skewed by in-flight updates while the
// run is live, and are exact once Run has returned.
func (s *Stats) Snapshot() Stats {
	return Stats{
		FilesQueued:    atomic.LoadUint64(&s.FilesQueued),
		FilesProcessed: atomic.LoadUint64(&s.FilesProcessed),
		FilesFailed:    atomic.LoadUint64(&s.FilesFailed),
		LinesScanned:   atomic.LoadUint64(&s.LinesScanned),
		WordsCounted:   atomic.LoadUint64(&s.WordsCounted),
		WalkAborted:    atomic.LoadUint64(&s.WalkAborted),
	}
}
