package component

// Input is one frame of player input. Held fields are level-triggered; the
// rest are true only on the frame the key went down.
type Input struct {
	Left  bool
	Right bool

	Jump      bool
	Confirm   bool
	Menu      bool
	Resume    bool
	Up        bool
	Down      bool
	MenuLeft  bool
	MenuRight bool
	Mute      bool
}

// Moving reports any gameplay input, used to start the music.
func (in Input) Moving() bool {
	return in.Left || in.Right || in.Jump
}

var InputComponent = NewComponent[Input]()
