package component

// Hint is one tutorial step. Done is a tengo expression over x, y and jumps.
type Hint struct {
	Text   string
	Action string
	Done   string
}

// Hints walks the ball through the tutorial, one unlocked action per step.
type Hints struct {
	Steps  []Hint
	Index  int
	Active bool
}

// Current returns the step being shown.
func (h *Hints) Current() (Hint, bool) {
	if h == nil || !h.Active || h.Index < 0 || h.Index >= len(h.Steps) {
		return Hint{}, false
	}
	return h.Steps[h.Index], true
}

var HintsComponent = NewComponent[Hints]()
