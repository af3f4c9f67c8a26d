// Package pipeline assembles the counting run: one directory producer, a
// pool of tokenizing workers, and the shared frequency table they merge
// into, joined end to end with a hard barrier before ranking.
//
// # Data Flow
//
// A run moves file paths one way and counts the other:
//
//	                   ┌────────────────────────────────────────────┐
//	                   │                 Pipeline                   │
//	                   │                                            │
//	 dir ── WalkDir ──▶│ workqueue ──▶ worker 1 ── local counts ──┐ │
//	                   │           ──▶ worker 2 ── local counts ──┼─┼──▶ tally.Table ──▶ Top(M)
//	                   │           ──▶ worker N ── local counts ──┘ │
//	                   │                                            │
//	                   └────────────────────────────────────────────┘
//
// The producer runs on the goroutine that called Run and pushes regular
// file paths as traversal discovers them; workers start before traversal
// does, so counting overlaps discovery from the first file found.
//
// # Lifecycle
//
//	New(cfg)   validate knobs, build the queue and the table
//	Run(ctx)   start workers, walk the tree, SetDone, join, rank
//
// Run returns only after every worker has exited and merged its private
// counts into the table. That join is what makes the final Top call safe:
// no merge can race with ranking because no worker exists by the time
// ranking starts. The queue's done flag is set in a defer, so workers are
// released even when traversal fails halfway.
//
// # Failure Behavior
//
// A file that cannot be opened or read is logged, counted in
// Stats.FilesFailed, and skipped; the run carries on. A missing or
// non-directory root is a configuration error, rejected by New before any
// goroutine starts. A traversal error once the run is underway stops
// enumeration early: it is logged, Stats.WalkAborted is set, and the files
// already queued are still fully counted, so the ranking comes back partial
// but internally consistent. Cancellation of the Run context stops
// traversal at the next directory entry and each worker at its next line;
// workers still merge what they have before Run returns ctx.Err(), leaving
// the table consistent though incomplete.
//
// # Counters
//
// Stats fields are plain uint64s updated with atomic adds. Snapshot reads
// them the same way, so a progress display can poll a live run without
// locks and without disturbing the workers.
package pipeline
