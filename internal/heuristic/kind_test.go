package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numscore/internal/heuristic"
)

func TestParseKind(t *testing.T) {
	cases := map[string]heuristic.Kind{
		"float":   heuristic.Float,
		"Double":  heuristic.Float,
		"byte":    heuristic.Byte,
		"SHORT":   heuristic.Short,
		"int":     heuristic.Int,
		"integer": heuristic.Int,
		" long ":  heuristic.Long,
	}
	for s, want := range cases {
		got, err := heuristic.ParseKind(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, got, s)
	}

	_, err := heuristic.ParseKind("decimal")
	assert.ErrorIs(t, err, heuristic.ErrUnknownKind)
}

func TestKind_StringRoundTrip(t *testing.T) {
	for _, k := range heuristic.Kinds() {
		got, err := heuristic.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "kind(42)", heuristic.Kind(42).String())
}

// TestScore_Dispatch compares the dispatcher with the direct entry points.
func TestScore_Dispatch(t *testing.T) {
	in := heuristic.Some("-12.5x")
	direct := map[heuristic.Kind]float64{
		heuristic.Float: heuristic.FloatScore(in),
		heuristic.Byte:  heuristic.ByteScore(in),
		heuristic.Short: heuristic.ShortScore(in),
		heuristic.Int:   heuristic.IntScore(in),
		heuristic.Long:  heuristic.LongScore(in),
	}
	for k, want := range direct {
		got, err := heuristic.Score(k, in)
		require.NoError(t, err, k.String())
		assert.Equal(t, want, got, k.String())

		d, err := heuristic.Distance(k, in)
		require.NoError(t, err, k.String())
		assert.Equal(t, heuristic.Normalize(d), got, k.String())
	}

	_, err := heuristic.Score(heuristic.Kind(99), in)
	assert.ErrorIs(t, err, heuristic.ErrUnknownKind)
	_, err = heuristic.Distance(heuristic.Kind(-1), in)
	assert.ErrorIs(t, err, heuristic.ErrUnknownKind)

	_, ok := heuristic.Float.MaxDigits()
	assert.False(t, ok)
}
