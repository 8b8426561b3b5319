package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"numscore/internal/heuristic"
)

// TestFloatScore_Sentinels checks the absent and empty inputs.
func TestFloatScore_Sentinels(t *testing.T) {
	assert.Equal(t, heuristic.UnreachableNullScore, heuristic.FloatScore(heuristic.None()))
	assert.Equal(t, heuristic.BaseScore, heuristic.FloatScore(heuristic.Some("")))
}

// TestFloatScore_ValidLiterals expects every grammar-conforming string to score 1.
func TestFloatScore_ValidLiterals(t *testing.T) {
	for _, s := range []string{"0", "7", "-1.23", "1.", ".5", "-.5", "-1.", "123", "-0", "3.14159", "00.00"} {
		assert.Equal(t, 1.0, heuristic.FloatScore(heuristic.Some(s)), "input %q", s)
		assert.Zero(t, heuristic.FloatDistance(heuristic.Some(s)), "input %q", s)
	}
}

// TestFloatDistance_Values pins down the per-position costs.
func TestFloatDistance_Values(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"a", 40},    // single rune must be a digit
		{"-", 3},     // lone sign is not accepted
		{".", 2},     // lone dot is not accepted
		{"12a", 40},  // no dot: min(digit 40, dot 51)
		{"1/", 1},    // '/' is one away from both '0' and '.'
		{"1.2.3", 2}, // second dot must be a digit
		{"--", 1},    // no dot: the second '-' is one away from '.'
		{"1-", 1},    // no dot: '-' is one away from '.'
		{"a.", 40},   // position 0 takes the cheapest of digit, sign and dot
	}
	for _, c := range cases {
		assert.Equal(t, c.want, heuristic.FloatDistance(heuristic.Some(c.in)), "input %q", c.in)
	}
}

// TestFloatScore_MinusDot covers the excluded "-." placement.
func TestFloatScore_MinusDot(t *testing.T) {
	d := heuristic.FloatDistance(heuristic.Some("-."))
	assert.Equal(t, int64(2), d, "the dot at position 1 after '-' must count as a digit")
	assert.Less(t, heuristic.FloatScore(heuristic.Some("-.")), 1.0)

	assert.Zero(t, heuristic.FloatDistance(heuristic.Some("-1.")))
	assert.Greater(t, heuristic.FloatScore(heuristic.Some("-1.")), heuristic.FloatScore(heuristic.Some("-.")))
	assert.Greater(t, heuristic.FloatScore(heuristic.Some("-1.")), heuristic.FloatScore(heuristic.Some("-1a")))

	// longer strings with a dot at position 1 keep the zero-cost dot
	assert.Zero(t, heuristic.FloatDistance(heuristic.Some("-.5")))
	assert.Zero(t, heuristic.FloatDistance(heuristic.Some("1.")))
}

// TestFloatScore_Monotonic verifies a larger distance never scores higher.
func TestFloatScore_Monotonic(t *testing.T) {
	inputs := []string{"1.0", "1.:", "1a", "x.y", "hello", "ÿÿ", "\U0010FFFF\U0010FFFF"}
	for i := range inputs {
		for j := range inputs {
			a, b := heuristic.Some(inputs[i]), heuristic.Some(inputs[j])
			if heuristic.FloatDistance(a) < heuristic.FloatDistance(b) {
				assert.Greater(t, heuristic.FloatScore(a), heuristic.FloatScore(b), "%q vs %q", inputs[i], inputs[j])
			}
		}
	}
}

// TestFloatScore_Range keeps non-empty scores inside (BaseScore, 1].
func TestFloatScore_Range(t *testing.T) {
	for _, s := range []string{"x", "\x00\x00\x00", "\U0010FFFF", "---...---", "\xff\xfe"} {
		got := heuristic.FloatScore(heuristic.Some(s))
		assert.Greater(t, got, heuristic.BaseScore, "input %q", s)
		assert.LessOrEqual(t, got, 1.0, "input %q", s)
		assert.Less(t, got, 1.0, "input %q is not a literal", s)
	}
}
