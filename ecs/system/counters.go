package system

// Score only ever grows.
type Score struct {
	value int
}

func (s *Score) Add(points int) {
	if points > 0 {
		s.value += points
	}
}

func (s *Score) Value() int { return s.value }

func (s *Score) Reset() { s.value = 0 }

// Lives stays within [0, max].
type Lives struct {
	current int
	max     int
}

func NewLives(max int) *Lives {
	if max < 1 {
		max = 1
	}
	return &Lives{current: max, max: max}
}

// Lose takes a life if any remain and reports whether this call reached zero.
func (l *Lives) Lose() bool {
	if l.current <= 0 {
		return false
	}
	l.current--
	return l.current == 0
}

func (l *Lives) Gain() {
	if l.current < l.max {
		l.current++
	}
}

func (l *Lives) Value() int { return l.current }
func (l *Lives) Max() int   { return l.max }

func (l *Lives) Reset() { l.current = l.max }
