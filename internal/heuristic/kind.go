package heuristic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned for a target type the scorer does not know.
var ErrUnknownKind = errors.New("heuristic: unknown numeric kind")

// Kind is the numeric type an intercepted parse call targets.
type Kind int

const (
	Float Kind = iota
	Byte
	Short
	Int
	Long
)

var kindNames = map[Kind]string{
	Float: "float",
	Byte:  "byte",
	Short: "short",
	Int:   "int",
	Long:  "long",
}

var kindAliases = map[string]Kind{
	"float":   Float,
	"double":  Float,
	"byte":    Byte,
	"short":   Short,
	"int":     Int,
	"integer": Int,
	"long":    Long,
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind { return []Kind{Float, Byte, Short, Int, Long} }

// ParseKind maps a type name such as "int" or "double" to its Kind.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MaxDigits returns the digit limit of an integer kind; ok is false for Float.
func (k Kind) MaxDigits() (digits int, ok bool) {
	switch k {
	case Byte:
		return ByteDigits, true
	case Short:
		return ShortDigits, true
	case Int:
		return IntDigits, true
	case Long:
		return LongDigits, true
	}
	return 0, false
}

// Score dispatches in to the heuristic of kind k.
func Score(k Kind, in Input) (float64, error) {
	if k == Float {
		return FloatScore(in), nil
	}
	digits, ok := k.MaxDigits()
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return IntegerScore(in, digits)
}

// Distance is the raw distance counterpart of Score.
func Distance(k Kind, in Input) (int64, error) {
	if k == Float {
		return FloatDistance(in), nil
	}
	digits, ok := k.MaxDigits()
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return IntegerDistance(in, digits)
}
