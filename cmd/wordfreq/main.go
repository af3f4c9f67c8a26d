package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"

	"github.com/dreamware/wordfreq/internal/pipeline"
	"github.com/dreamware/wordfreq/internal/tally"
)

func usage() {
	fmt.Fprintf(os.Stderr,
		"Usage: %s [flags] <dir>\n\n"+
			"Counts word frequencies across every file under <dir> and prints\n"+
			"the most frequent words, one \"word count\" pair per line.\n\n"+
			"Flags:\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var (
		threads  = flag.Int("threads", 1, "number of worker goroutines")
		top      = flag.Int("top", 10, "how many of the most frequent words to print")
		minLen   = flag.Int("minlen", 1, "minimum token length in bytes")
		shards   = flag.Int("shards", tally.DefaultShards, "shard count for the shared table")
		progress = flag.Bool("progress", false, "show a live progress bar while counting")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	p, err := pipeline.New(pipeline.Config{
		Dir:     flag.Arg(0),
		Threads: *threads,
		TopM:    *top,
		MinLen:  *minLen,
		Shards:  *shards,
	})
	if err != nil {
		log.Fatalf("wordfreq: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-sigc
		log.Printf("received %s, shutting down", s)
		cancel()
	}()

	var stopProgress func()
	if *progress {
		stopProgress = startProgress(p)
	}

	start := time.Now()
	entries, err := p.Run(ctx)
	if stopProgress != nil {
		stopProgress()
	}
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	if err := writeReport(os.Stdout, entries); err != nil {
		log.Fatalf("writing report: %v", err)
	}

	st := p.Stats()
	log.Printf("done in %s: files=%d failed=%d lines=%d words=%d distinct=%d",
		time.Since(start).Round(time.Millisecond),
		st.FilesProcessed, st.FilesFailed, st.LinesScanned, st.WordsCounted,
		p.Table().Distinct())
	if st.WalkAborted != 0 {
		log.Printf("warning: traversal aborted early, result covers %d files", st.FilesProcessed)
	}
}

// startProgress polls the live run counters and drives a progress bar until
// the returned stop function is called.
func startProgress(p *pipeline.Pipeline) (stop func()) {
	bar := pb.New64(1)
	bar.Start()

	update := func() {
		st := p.Stats()
		total := int64(st.FilesQueued)
		if total < 1 {
			total = 1
		}
		bar.SetTotal(total)
		bar.SetCurrent(int64(st.FilesProcessed))
	}

	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				update()
				bar.Finish()
				return
			case <-ticker.C:
				update()
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

// writeReport renders the ranked entries as "word count" lines.
func writeReport(w io.Writer, entries []tally.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s %d\n", e.Word, e.Count)
	}
	return bw.Flush()
}
