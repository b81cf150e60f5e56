package sfx

// Silent satisfies the sound interface without making noise; used by tests
// and when no audio device is available.
type Silent struct{}

func (Silent) Play(string)                       {}
func (Silent) StartMusic()                       {}
func (Silent) SetVolumes(float64, float64, bool) {}
