package corpus

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallParams keeps generation fast: two files of one MiB.
func smallParams(dir string) Params {
	p := DefaultParams(dir)
	p.Files = 2
	p.MiBPerFile = 1
	p.Vocab = 200
	p.Seed = 42
	return p
}

func TestValidate(t *testing.T) {
	for name, mutate := range map[string]func(*Params){
		"empty out dir":      func(p *Params) { p.OutDir = "" },
		"zero files":         func(p *Params) { p.Files = 0 },
		"zero mib":           func(p *Params) { p.MiBPerFile = 0 },
		"zero vocab":         func(p *Params) { p.Vocab = 0 },
		"zero min length":    func(p *Params) { p.MinWordLen = 0 },
		"max below min":      func(p *Params) { p.MinWordLen = 8; p.MaxWordLen = 3 },
	} {
		t.Run(name, func(t *testing.T) {
			p := DefaultParams("out")
			mutate(&p)
			_, err := New(p)
			assert.Error(t, err)
		})
	}
}

func TestGenerateFileCountAndExactSize(t *testing.T) {
	dir := t.TempDir()
	g, err := New(smallParams(dir))
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background()))

	for _, name := range []string{"log_0000.txt", "log_0001.txt"} {
		fi, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, int64(1<<20), fi.Size(), name)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGenerateDeterministicForSeed(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()

	for _, dir := range []string{dirA, dirB} {
		g, err := New(smallParams(dir))
		require.NoError(t, err)
		require.NoError(t, g.Generate(context.Background()))
	}

	a, err := os.ReadFile(filepath.Join(dirA, "log_0000.txt"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, "log_0000.txt"))
	require.NoError(t, err)
	assert.True(t, bytes.Equal(a, b), "same seed must produce identical bytes")
}

func TestGenerateSeedsDiffer(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()

	pa := smallParams(dirA)
	pb := smallParams(dirB)
	pb.Seed = 43

	for _, p := range []Params{pa, pb} {
		g, err := New(p)
		require.NoError(t, err)
		require.NoError(t, g.Generate(context.Background()))
	}

	a, err := os.ReadFile(filepath.Join(dirA, "log_0000.txt"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dirB, "log_0000.txt"))
	require.NoError(t, err)
	assert.False(t, bytes.Equal(a, b), "different seeds should diverge")
}

func TestGenerateLineShape(t *testing.T) {
	dir := t.TempDir()
	g, err := New(smallParams(dir))
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background()))

	f, err := os.Open(filepath.Join(dir, "log_0000.txt"))
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	checked := 0
	for scanner.Scan() && checked < 50 {
		line := scanner.Text()
		assert.Contains(t, line, "ip=")
		assert.Contains(t, line, "code=")
		assert.Contains(t, line, "user_")
		assert.Contains(t, line, "[tag_")
		checked++
	}
	require.NoError(t, scanner.Err())
	require.Greater(t, checked, 0)
}

func TestGenerateResolvesZeroSeed(t *testing.T) {
	p := smallParams(t.TempDir())
	p.Seed = 0
	g, err := New(p)
	require.NoError(t, err)
	assert.NotZero(t, g.Seed())
}

func TestGenerateCanceled(t *testing.T) {
	dir := t.TempDir()
	g, err := New(smallParams(dir))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = g.Generate(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateOnFileHook(t *testing.T) {
	dir := t.TempDir()
	p := smallParams(dir)

	var paths []string
	var sizes []int64
	p.OnFile = func(path string, bytes int64) {
		paths = append(paths, path)
		sizes = append(sizes, bytes)
	}

	g, err := New(p)
	require.NoError(t, err)
	require.NoError(t, g.Generate(context.Background()))

	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(dir, "log_0000.txt"), paths[0])
	assert.Equal(t, filepath.Join(dir, "log_0001.txt"), paths[1])
	assert.Equal(t, []int64{1 << 20, 1 << 20}, sizes)
}
