package heuristic

// FloatDistance accumulates the per-character cost of in against the
// grammar ['-']? digit* ['.']? digit*. Absent and empty inputs have distance 0.
func FloatDistance(in Input) int64 {
	r := []rune(in.value)
	if !in.present || len(r) == 0 {
		return 0
	}
	if len(r) == 1 {
		// одиночный символ не может быть ни '-', ни '.'
		return int64(DistanceToDigit(r[0]))
	}

	firstDot := -1
	for i, c := range r {
		if c == '.' {
			firstDot = i
			break
		}
	}
	// "-." не считается оптимальной расстановкой точки
	dotExcluded := firstDot == 1 && r[0] == '-' && len(r) == 2

	var distance int64
	for i, c := range r {
		digit := DistanceToDigit(c)
		switch {
		case i == 0:
			// '.' допустима в любой позиции, включая первую
			distance += int64(min3(digit, DistanceToChar(c, '-'), DistanceToChar(c, '.')))
		case firstDot < 0:
			distance += int64(min2(digit, DistanceToChar(c, '.')))
		case i == firstDot && !dotExcluded:
			// точка уже на своём месте
		default:
			distance += int64(digit)
		}
	}
	return distance
}

// FloatScore scores how close in is to a floating-point literal.
func FloatScore(in Input) float64 {
	if !in.present {
		return UnreachableNullScore
	}
	if in.value == "" {
		return BaseScore
	}
	return Normalize(FloatDistance(in))
}
