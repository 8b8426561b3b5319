package heuristic

// Input is the argument of an intercepted parse call. The zero value is absent.
type Input struct {
	value   string
	present bool
}

// Some wraps a present (possibly empty) string.
func Some(s string) Input { return Input{value: s, present: true} }

// None is an absent input, i.e. the parse call received a null argument.
func None() Input { return Input{} }

// FromPtr maps nil to None and anything else to Some.
func FromPtr(s *string) Input {
	if s == nil {
		return None()
	}
	return Some(*s)
}

func (in Input) Present() bool { return in.present }

// Value returns the wrapped string, "" when absent.
func (in Input) Value() string { return in.value }

// Ptr is the inverse of FromPtr.
func (in Input) Ptr() *string {
	if !in.present {
		return nil
	}
	v := in.value
	return &v
}

func (in Input) String() string {
	if !in.present {
		return "<null>"
	}
	return in.value
}
