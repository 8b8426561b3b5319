package corpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numscore/internal/corpus"
	"numscore/internal/heuristic"
	"numscore/pkg/options"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inputs.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func collect(c *corpus.Corpus) []heuristic.Input {
	var out []heuristic.Input
	c.Each(func(_ int, in heuristic.Input) { out = append(out, in) })
	return out
}

// TestOpen_Lines splits on \n, strips \r and ignores the final newline.
func TestOpen_Lines(t *testing.T) {
	c, err := corpus.Open(writeFile(t, "12\r\n-3.5\n\n<null>\nabc\n"))
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, []heuristic.Input{
		heuristic.Some("12"),
		heuristic.Some("-3.5"),
		heuristic.Some(""),
		heuristic.None(),
		heuristic.Some("abc"),
	}, collect(c))
}

func TestOpen_NoTrailingNewline(t *testing.T) {
	c, err := corpus.Open(writeFile(t, "1\n2"))
	require.NoError(t, err)
	defer c.Close()

	require.Equal(t, 2, c.Len())
	assert.Equal(t, heuristic.Some("2"), c.Input(1))
}

// TestOpen_EmptyFile is valid and holds no entries.
func TestOpen_EmptyFile(t *testing.T) {
	c, err := corpus.Open(writeFile(t, ""))
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.NoError(t, c.Close())
}

func TestOpen_Missing(t *testing.T) {
	_, err := corpus.Open(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_Options(t *testing.T) {
	path := writeFile(t, " 7 \n\n  \nNULL\n<null>\n")
	c, err := corpus.Open(path,
		options.WithNullMarker("NULL"),
		options.WithTrimSpace(),
		options.WithSkipEmpty(),
	)
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, []heuristic.Input{
		heuristic.Some("7"),
		heuristic.None(),
		heuristic.Some("<null>"),
	}, collect(c))
}

// TestOpen_NoNullMarker treats every line as present.
func TestOpen_NoNullMarker(t *testing.T) {
	c, err := corpus.Open(writeFile(t, "<null>\n"), options.WithNullMarker(""))
	require.NoError(t, err)
	defer c.Close()
	assert.Equal(t, heuristic.Some("<null>"), c.Input(0))
}

func TestClose_Idempotent(t *testing.T) {
	c, err := corpus.Open(writeFile(t, "1\n"))
	require.NoError(t, err)
	assert.NoError(t, c.Close())
	assert.NoError(t, c.Close())
	assert.Zero(t, c.Len())
}
