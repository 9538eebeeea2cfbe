package score

// Lives is a bounded life counter.
type Lives struct {
	count    int
	starting int
	max      int
}

// NewLives creates a counter with starting lives and room for two extra.
func NewLives(starting int) *Lives {
	if starting < 0 {
		starting = 0
	}
	return &Lives{
		count:    starting,
		starting: starting,
		max:      starting + 2,
	}
}

// LoseLife removes one life. The count never goes below zero.
func (l *Lives) LoseLife() {
	if l.count > 0 {
		l.count--
	}
}

// AddLife grants one life, up to the maximum.
func (l *Lives) AddLife() {
	if l.count < l.max {
		l.count++
	}
}

// IsGameOver reports whether no lives are left.
func (l *Lives) IsGameOver() bool {
	return l.count == 0
}

// Reset restores the starting count.
func (l *Lives) Reset() {
	l.count = l.starting
}

// SetMax changes the ceiling. A count above the new ceiling is lowered to it.
func (l *Lives) SetMax(max int) {
	if max < 0 {
		max = 0
	}
	l.max = max
	if l.count > max {
		l.count = max
	}
}

func (l *Lives) Count() int    { return l.count }
func (l *Lives) Max() int      { return l.max }
func (l *Lives) Starting() int { return l.starting }
