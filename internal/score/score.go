// Package score tracks the running score, the persisted high score and the
// player's remaining lives.
package score

// Score is the current run's points plus the best value ever reached.
type Score struct {
	value int
	high  int
}

// Add changes the score by points, which may be negative. The high score
// follows the value upward and never goes down.
func (s *Score) Add(points int) {
	s.value += points
	if s.value > s.high {
		s.high = s.value
	}
}

// Reset zeroes the current value. The high score is kept.
func (s *Score) Reset() {
	s.value = 0
}

// Value returns the current score.
func (s *Score) Value() int {
	return s.value
}

// High returns the high score.
func (s *Score) High() int {
	return s.high
}

// RaiseTo lifts the current value to floor if it is below it.
func (s *Score) RaiseTo(floor int) {
	if floor > s.value {
		s.Add(floor - s.value)
	}
}
