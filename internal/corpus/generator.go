package corpus

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Params configures a corpus generator.
type Params struct {
	// OutDir receives the generated log files. Created if missing.
	OutDir string

	// Files is how many files to produce, named log_0000.txt and up.
	Files int

	// MiBPerFile is the exact size of each file in MiB.
	MiBPerFile int

	// Vocab is the number of distinct base words to draw from.
	Vocab int

	// Skew shapes the word frequency distribution: weight 1/rank^Skew.
	// Zero gives a uniform distribution; values around 1-2 are strongly
	// skewed. Negative values are treated as zero.
	Skew float64

	// Seed makes output reproducible. Zero selects a time-based seed.
	Seed uint64

	// MinWordLen and MaxWordLen bound generated base word lengths.
	MinWordLen int
	MaxWordLen int

	// OnFile, when set, is invoked after each file is written.
	OnFile func(path string, bytes int64)
}

// DefaultParams returns the generator defaults: twenty files of five MiB
// each over a two-thousand-word vocabulary with a 1.2 skew.
func DefaultParams(outDir string) Params {
	return Params{
		OutDir:     outDir,
		Files:      20,
		MiBPerFile: 5,
		Vocab:      2000,
		Skew:       1.2,
		MinWordLen: 3,
		MaxWordLen: 12,
	}
}

// Validate reports the first problem with the parameters.
func (p Params) Validate() error {
	if p.OutDir == "" {
		return errors.New("out dir must not be empty")
	}
	if p.Files < 1 {
		return errors.Errorf("files must be > 0, got %d", p.Files)
	}
	if p.MiBPerFile < 1 {
		return errors.Errorf("mib per file must be > 0, got %d", p.MiBPerFile)
	}
	if p.Vocab < 1 {
		return errors.Errorf("vocab must be > 0, got %d", p.Vocab)
	}
	if p.MinWordLen < 1 {
		return errors.Errorf("min word length must be >= 1, got %d", p.MinWordLen)
	}
	if p.MaxWordLen < p.MinWordLen {
		return errors.Errorf("max word length %d below min %d", p.MaxWordLen, p.MinWordLen)
	}
	return nil
}

// Generator writes synthetic log files with a controlled vocabulary and
// frequency skew, for exercising the counting pipeline at scale. Output is
// fully determined by Params including the seed.
type Generator struct {
	params Params
	seed   uint64
	rng    *rand.Rand
	vocab  []string
	cum    []float64
}

// New builds a generator: it resolves the seed, draws the vocabulary, and
// precomputes the cumulative rank weights used for word picks.
func New(p Params) (*Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid params")
	}

	seed := p.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Generator{
		params: p,
		seed:   seed,
		rng:    rand.New(rand.NewSource(int64(seed))),
	}

	g.vocab = make([]string, p.Vocab)
	for i := range g.vocab {
		g.vocab[i] = g.randWord()
	}

	skew := math.Max(0, p.Skew)
	g.cum = make([]float64, p.Vocab)
	sum := 0.0
	for i := range g.cum {
		sum += 1.0 / math.Pow(float64(i+1), skew)
		g.cum[i] = sum
	}
	return g, nil
}

// Seed returns the seed actually used, which differs from Params.Seed only
// when that was zero.
func (g *Generator) Seed() uint64 {
	return g.seed
}

// Generate writes all configured files. Each comes out at exactly
// MiBPerFile MiB; the last line is usually cut mid-way by the final
// truncation, which the tokenizer downstream does not mind.
func (g *Generator) Generate(ctx context.Context) error {
	if err := os.MkdirAll(g.params.OutDir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", g.params.OutDir)
	}

	target := int64(g.params.MiBPerFile) << 20
	for fi := 0; fi < g.params.Files; fi++ {
		path := filepath.Join(g.params.OutDir, fmt.Sprintf("log_%04d.txt", fi))
		if err := g.writeFile(ctx, path, fi, target); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
		if g.params.OnFile != nil {
			g.params.OnFile(path, target)
		}
	}
	return nil
}

func (g *Generator) writeFile(ctx context.Context, path string, fi int, target int64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriterSize(f, 1<<20)
	baseTS := uint64(1700000000) + uint64(fi)*12345

	var written int64
	line := make([]byte, 0, 512)
	for written < target {
		if err := ctx.Err(); err != nil {
			f.Close()
			return err
		}
		line = g.appendLine(line[:0], baseTS+uint64(written/200))
		if _, err := w.Write(line); err != nil {
			f.Close()
			return err
		}
		written += int64(len(line))
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Trim the overshoot so every file lands on the exact target size.
	return os.Truncate(path, target)
}

// appendLine builds one log line: timestamp, level, ip, status code, a
// run of vocabulary words with occasional path tokens, then a user id and
// a bracketed tag.
func (g *Generator) appendLine(line []byte, ts uint64) []byte {
	line = strconv.AppendUint(line, ts, 10)
	line = append(line, g.punct()...)
	line = append(line, g.level()...)
	line = append(line, g.punct()...)
	line = append(line, "ip="...)
	line = g.appendIP(line)
	line = append(line, g.punct()...)
	line = append(line, "code="...)
	line = strconv.AppendInt(line, int64(100+g.rng.Intn(500)), 10)
	line = append(line, g.punct()...)

	words := 6 + g.rng.Intn(13)
	for i := 0; i < words; i++ {
		line = append(line, g.mutate(g.pickWord())...)

		if g.rng.Intn(100) < 6 {
			line = append(line, g.punct()...)
			line = g.appendPathToken(line)
		}
		if i+1 < words {
			if g.rng.Intn(100) < 12 {
				line = append(line, ", "...)
			} else {
				line = append(line, ' ')
			}
		}
	}

	line = append(line, g.punct()...)
	line = append(line, "user_"...)
	line = strconv.AppendInt(line, int64(g.userID()), 10)
	line = append(line, g.punct()...)
	line = append(line, "[tag_"...)
	line = strconv.AppendInt(line, int64(g.userID()%1000), 10)
	line = append(line, "]\n"...)
	return line
}

// pickWord draws a vocabulary index from the rank-weighted distribution.
func (g *Generator) pickWord() string {
	x := g.rng.Float64() * g.cum[len(g.cum)-1]
	i := sort.SearchFloat64s(g.cum, x)
	if i >= len(g.vocab) {
		i = len(g.vocab) - 1
	}
	return g.vocab[i]
}

// mutate adds log-flavored noise to a base word: usually none, otherwise a
// numeric suffix, an inserted digit, or a capitalized first letter.
func (g *Generator) mutate(base string) string {
	x := g.rng.Intn(100)
	switch {
	case x < 70:
		return base
	case x < 80:
		return base + "_" + strconv.Itoa(g.rng.Intn(10000))
	case x < 90:
		pos := g.rng.Intn(len(base))
		return base[:pos] + string(byte('0'+g.rng.Intn(10))) + base[pos:]
	default:
		return strings.ToUpper(base[:1]) + base[1:]
	}
}

func (g *Generator) randWord() string {
	n := g.params.MinWordLen + g.rng.Intn(g.params.MaxWordLen-g.params.MinWordLen+1)
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('a' + g.rng.Intn(26))
	}
	return string(b)
}

// level picks a log level, INFO-heavy: 50/15/12/18/5.
func (g *Generator) level() string {
	x := g.rng.Intn(100)
	switch {
	case x < 50:
		return "INFO"
	case x < 65:
		return "WARN"
	case x < 77:
		return "ERROR"
	case x < 95:
		return "DEBUG"
	default:
		return "TRACE"
	}
}

var punctuation = []string{" ", " ", " ", " ", " ", " - ", " | ", " : ", " :: ", ", ", "; ", "  "}

func (g *Generator) punct() string {
	return punctuation[g.rng.Intn(len(punctuation))]
}

func (g *Generator) appendIP(line []byte) []byte {
	for i := 0; i < 4; i++ {
		if i > 0 {
			line = append(line, '.')
		}
		line = strconv.AppendInt(line, int64(1+g.rng.Intn(254)), 10)
	}
	return line
}

func (g *Generator) appendPathToken(line []byte) []byte {
	line = append(line, "/api/v1/"...)
	line = append(line, g.pickWord()...)
	line = append(line, '/')
	line = append(line, g.pickWord()...)
	line = append(line, "?id="...)
	return strconv.AppendInt(line, int64(g.userID()), 10)
}

func (g *Generator) userID() int {
	return 1 + g.rng.Intn(2000000)
}
