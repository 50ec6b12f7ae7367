package dice

// Scripted is a Roller for tests: it replays a fixed sequence of values,
// clamping each into the requested range, and repeats the final value once
// the sequence is exhausted.
type Scripted struct {
	values []int
	next   int
}

// NewScripted returns a Roller that yields the given values in order.
func NewScripted(values ...int) *Scripted {
	return &Scripted{values: values}
}

// NumberBetween returns the next scripted value clamped to [min, max].
func (s *Scripted) NumberBetween(min, max int) int {
	if len(s.values) == 0 {
		return min
	}
	v := s.values[s.next]
	if s.next < len(s.values)-1 {
		s.next++
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
