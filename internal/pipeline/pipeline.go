package pipeline

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/dreamware/wordfreq/internal/tally"
	"github.com/dreamware/wordfreq/internal/workqueue"
)

// Pipeline runs one word-frequency count: a directory producer, a pool of
// tokenizing workers, and a shared table they all merge into. A Pipeline is
// single-use; construct, Run once, then read the results.
type Pipeline struct {
	cfg   Config
	queue *workqueue.Queue
	table *tally.Table
	stats Stats
	ran   uint32
}

// New validates cfg and assembles a pipeline around it.
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Pipeline{
		cfg:   cfg,
		queue: workqueue.New(),
		table: tally.New(cfg.Shards),
	}, nil
}

// Run scans every regular file under the configured directory and returns
// the TopM most frequent words, ordered by descending count with ties
// broken by ascending word.
//
// Run starts the worker pool, then walks the directory tree on the calling
// goroutine, feeding paths to the queue as they are found. When traversal
// ends the queue is marked done, and Run blocks until every worker has
// drained out and merged its private counts. Only after that join does it
// rank the table, so the ranking always reflects a fully merged table.
//
// A traversal error mid-enumeration is reported and stops discovery, but
// the files already queued are still fully counted and Run returns that
// partial, internally consistent ranking; Stats.WalkAborted records the
// cut. On context cancellation Run still waits for the workers, then
// returns ctx.Err().
func (p *Pipeline) Run(ctx context.Context) ([]tally.Entry, error) {
	if !atomic.CompareAndSwapUint32(&p.ran, 0, 1) {
		return nil, errors.New("pipeline already run")
	}

	var workers sync.WaitGroup
	for i := 0; i < p.cfg.Threads; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			p.worker(ctx)
		}()
	}

	p.produce(ctx)

	// Join barrier: beyond this point every worker has merged its local
	// counts and the table is final.
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.table.Top(p.cfg.TopM), nil
}

// produce walks the directory tree and queues every regular file. The
// queue is marked done on every exit path so workers never wait forever.
func (p *Pipeline) produce(ctx context.Context) {
	defer p.queue.SetDone()

	filepath.WalkDir(p.cfg.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Stop enumerating but let the queued work finish.
			atomic.StoreUint64(&p.stats.WalkAborted, 1)
			log.Printf("pipeline: traversal aborted at %s: %v", path, err)
			return fs.SkipAll
		}
		if ctx.Err() != nil {
			return fs.SkipAll
		}

		t := d.Type()
		if t&fs.ModeSymlink != 0 {
			// Follow file symlinks; a dangling one is just skipped.
			fi, serr := os.Stat(path)
			if serr != nil || !fi.Mode().IsRegular() {
				return nil
			}
		} else if !t.IsRegular() {
			return nil
		}

		p.queue.Push(path)
		atomic.AddUint64(&p.stats.FilesQueued, 1)
		return nil
	})
}

// Stats returns a snapshot of the run counters. Safe to call while Run is
// in flight.
func (p *Pipeline) Stats() Stats {
	return p.stats.Snapshot()
}

// Table exposes the shared frequency table, for callers that want more than
// the ranking, such as the distinct-word total. The table is only final
// once Run has returned.
func (p *Pipeline) Table() *tally.Table {
	return p.table
}
