package heuristic

import (
	"errors"
	"math"
	"strconv"
)

// ErrNegativeDigits is returned when a negative maximum digit count is supplied.
var ErrNegativeDigits = errors.New("heuristic: number of digits cannot be negative")

// Maximum digit counts per width: the length of the width's minimum value, sign included.
var (
	ByteDigits  = len(strconv.FormatInt(math.MinInt8, 10))
	ShortDigits = len(strconv.FormatInt(math.MinInt16, 10))
	IntDigits   = len(strconv.FormatInt(math.MinInt32, 10))
	LongDigits  = len(strconv.FormatInt(math.MinInt64, 10))
)

// IntegerDistance accumulates the cost of in against ['-']? digit{1,maxDigits}.
func IntegerDistance(in Input, maxDigits int) (int64, error) {
	if maxDigits < 0 {
		return 0, ErrNegativeDigits
	}
	r := []rune(in.value)
	if !in.present || len(r) == 0 {
		return 0, nil
	}
	if len(r) == 1 {
		return int64(DistanceToDigit(r[0])), nil
	}

	var distance int64
	for i, c := range r {
		switch {
		case i == 0:
			distance += int64(min2(DistanceToDigit(c), DistanceToChar(c, '-')))
		case i >= maxDigits:
			// слишком длинная строка не влезет в целевую разрядность
			distance += MaxCharDistance
		default:
			distance += int64(DistanceToDigit(c))
		}
	}
	return distance, nil
}

// IntegerScore scores how close in is to an integer literal of at most
// maxDigits characters.
func IntegerScore(in Input, maxDigits int) (float64, error) {
	distance, err := IntegerDistance(in, maxDigits)
	if err != nil {
		return 0, err
	}
	if !in.present {
		return UnreachableNullScore, nil
	}
	if in.value == "" {
		return BaseScore, nil
	}
	return Normalize(distance), nil
}

// The width constants are never negative, so the error is dropped.
func widthScore(in Input, maxDigits int) float64 {
	s, _ := IntegerScore(in, maxDigits)
	return s
}

// ByteScore scores in against an 8-bit integer literal.
func ByteScore(in Input) float64 { return widthScore(in, ByteDigits) }

// ShortScore scores in against a 16-bit integer literal.
func ShortScore(in Input) float64 { return widthScore(in, ShortDigits) }

// IntScore scores in against a 32-bit integer literal.
func IntScore(in Input) float64 { return widthScore(in, IntDigits) }

// LongScore scores in against a 64-bit integer literal.
func LongScore(in Input) float64 { return widthScore(in, LongDigits) }
