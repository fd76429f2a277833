// Package dice provides deterministic utils.Roller implementations for tests.
package dice

// Max always rolls the top of the range
type Max struct{}

func (Max) IntRange(_, max int) int { return max }

func (Max) Index(n int) int { return n - 1 }

// Min always rolls the bottom of the range
type Min struct{}

func (Min) IntRange(min, _ int) int { return min }

func (Min) Index(int) int { return 0 }

// Script replays a fixed list of rolls, clamped into the requested range.
// It wraps around when exhausted.
type Script struct {
	Rolls []int
	next  int
}

func (s *Script) IntRange(min, max int) int {
	v := s.pop()
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (s *Script) Index(n int) int {
	if n <= 0 {
		return -1
	}
	return s.pop() % n
}

func (s *Script) pop() int {
	if len(s.Rolls) == 0 {
		return 0
	}
	v := s.Rolls[s.next%len(s.Rolls)]
	s.next++
	return v
}
