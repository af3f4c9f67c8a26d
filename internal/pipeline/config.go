package pipeline

import (
	"os"

	"github.com/pkg/errors"
)

// Config carries the knobs for one counting run.
type Config struct {
	// Dir is the root directory to scan. Every regular file under it,
	// recursively, is counted. It must exist and be a directory.
	Dir string

	// Threads is the number of concurrent workers tokenizing files.
	Threads int

	// TopM is how many of the highest-frequency words Run returns.
	TopM int

	// MinLen drops tokens shorter than this many bytes. The lowest useful
	// value is 1, which keeps everything.
	MinLen int

	// Shards is the shard count for the shared table. Values below 1
	// select the table's default.
	Shards int
}

// DefaultConfig returns a Config with the stock defaults for dir: a single
// worker, the ten most frequent words, and single-byte tokens kept.
func DefaultConfig(dir string) Config {
	return Config{
		Dir:     dir,
		Threads: 1,
		TopM:    10,
		MinLen:  1,
	}
}

// Validate reports the first problem with the configuration, or nil when it
// is usable. An invalid configuration is fatal before any processing
// begins, so Validate also confirms Dir exists and is a directory.
func (c Config) Validate() error {
	if c.Dir == "" {
		return errors.New("dir must not be empty")
	}
	if c.Threads < 1 {
		return errors.Errorf("threads must be at least 1, got %d", c.Threads)
	}
	if c.TopM < 1 {
		return errors.Errorf("top must be at least 1, got %d", c.TopM)
	}
	if c.MinLen < 1 {
		return errors.Errorf("min length must be at least 1, got %d", c.MinLen)
	}

	fi, err := os.Stat(c.Dir)
	if err != nil {
		return errors.Wrap(err, "dir")
	}
	if !fi.IsDir() {
		return errors.Errorf("%s is not a directory", c.Dir)
	}
	return nil
}
