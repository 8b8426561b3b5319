package heuristic

const (
	// UnreachableNullScore is returned when the parse call was reached with no input.
	UnreachableNullScore = 0.05
	// BaseScore is returned for an empty input and is the floor for any non-empty one.
	BaseScore = 0.1
	// MaxCharDistance caps the cost of a single mismatched character.
	MaxCharDistance = 65536
)

// DistanceToRange returns how far c is from the inclusive range [lo, hi].
func DistanceToRange(c, lo, hi rune) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	var d int64
	switch {
	case c < lo:
		d = int64(lo) - int64(c)
	case c > hi:
		d = int64(c) - int64(hi)
	}
	if d > MaxCharDistance {
		return MaxCharDistance
	}
	return int(d)
}

// DistanceToDigit returns the distance from c to the nearest of '0'..'9'.
func DistanceToDigit(c rune) int { return DistanceToRange(c, '0', '9') }

// DistanceToChar returns |c - target|, saturated at MaxCharDistance.
func DistanceToChar(c, target rune) int { return DistanceToRange(c, target, target) }

// Normalize maps an accumulated distance onto (BaseScore, 1].
func Normalize(distance int64) float64 {
	if distance < 0 {
		distance = 0
	}
	return BaseScore + (1-BaseScore)/(float64(distance)+1)
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func min3(a, b, c int) int { return min2(a, min2(b, c)) }
