package pipeline

import (
	"bufio"
	"context"
	"log"
	"os"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/dreamware/wordfreq/internal/tally"
	"github.com/dreamware/wordfreq/internal/tokenizer"
)

// maxLineBytes caps a single input line. Lines longer than this make the
// scanner fail, which skips the rest of that file.
const maxLineBytes = 1 << 20

// worker pops paths until the queue is drained or the context ends,
// counting words into a private map. The single deferred Merge is the only
// moment this worker touches shared state.
func (p *Pipeline) worker(ctx context.Context) {
	local := make(tally.LocalCounts)
	defer p.table.Merge(local)

	for {
		if ctx.Err() != nil {
			return
		}
		path, ok := p.queue.Pop(ctx)
		if !ok {
			return
		}

		err := p.scanFile(ctx, path, local)
		switch {
		case err == nil:
			atomic.AddUint64(&p.stats.FilesProcessed, 1)
		case ctx.Err() != nil:
			return
		default:
			atomic.AddUint64(&p.stats.FilesFailed, 1)
			log.Printf("worker: skipping %s: %v", path, err)
		}
	}
}

// scanFile tokenizes one file line by line into local.
func (p *Pipeline) scanFile(ctx context.Context, path string, local tally.LocalCounts) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var lines, words uint64
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		lines++
		tokenizer.EachToken(scanner.Bytes(), p.cfg.MinLen, func(tok []byte) {
			local[string(tok)]++
			words++
		})
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read")
	}

	atomic.AddUint64(&p.stats.LinesScanned, lines)
	atomic.AddUint64(&p.stats.WordsCounted, words)
	return nil
}
