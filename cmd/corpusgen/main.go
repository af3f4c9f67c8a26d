package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dreamware/wordfreq/internal/corpus"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	var (
		out    = flag.String("out", getenv("CORPUSGEN_OUT", "test_logs"), "output directory")
		files  = flag.Int("files", 20, "number of files to generate")
		mib    = flag.Int("mib", 5, "size of each file in MiB")
		vocab  = flag.Int("vocab", 2000, "vocabulary size")
		skew   = flag.Float64("skew", 1.2, "frequency skew exponent, 0 = uniform")
		seed   = flag.Uint64("seed", 0, "random seed, 0 selects a time-based one")
		minlen = flag.Int("minlen", 3, "minimum generated word length")
		maxlen = flag.Int("maxlen", 12, "maximum generated word length")
	)
	flag.Parse()

	params := corpus.Params{
		OutDir:     *out,
		Files:      *files,
		MiBPerFile: *mib,
		Vocab:      *vocab,
		Skew:       *skew,
		Seed:       *seed,
		MinWordLen: *minlen,
		MaxWordLen: *maxlen,
		OnFile: func(path string, bytes int64) {
			log.Printf("wrote %s (%d KiB)", filepath.Base(path), bytes/1024)
		},
	}

	g, err := corpus.New(params)
	if err != nil {
		log.Fatalf("invalid parameters: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	go func() {
		s := <-sigc
		log.Printf("received %s, stopping", s)
		cancel()
	}()

	log.Printf("generating into %s: files=%d size=%dMiB vocab=%d skew=%g seed=%d",
		*out, *files, *mib, *vocab, *skew, g.Seed())

	if err := g.Generate(ctx); err != nil {
		log.Fatalf("generation failed: %v", err)
	}
	log.Printf("done")
}
