package sfx

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/pinkball/prefabs"
)

// Speaker streams effects straight to the sound card through beep. It
// backs the terminal frontend, which has no ebiten audio context.
type Speaker struct {
	mu      sync.Mutex
	effects map[string]prefabs.SoundSpec
	music   prefabs.MusicSpec
	mixer   *beep.Mixer

	musicCtrl *beep.Ctrl
	musicVol  *effects.Volume

	musicVolume   float64
	effectsVolume float64
	muted         bool
}

func NewSpeaker(spec prefabs.SoundsSpec) (*Speaker, error) {
	s := &Speaker{
		effects:       map[string]prefabs.SoundSpec{},
		music:         spec.Music,
		mixer:         &beep.Mixer{},
		musicVolume:   0.5,
		effectsVolume: 0.5,
	}
	for _, fx := range spec.Effects {
		s.effects[fx.Name] = fx
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sfx: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) Play(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fx, ok := s.effects[name]
	if !ok {
		log.Printf("sfx: unknown sound %q", name)
		return
	}
	if s.muted {
		return
	}
	st := withVolume(Effect(fx, SampleRate), s.effectsVolume)
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) StartMusic() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.musicCtrl != nil || len(s.music.Notes) == 0 {
		return
	}
	s.musicVol = &effects.Volume{Streamer: &repeat{build: func() beep.Streamer {
		return MusicCycle(s.music, SampleRate)
	}}, Base: 2}
	s.musicCtrl = &beep.Ctrl{Streamer: s.musicVol}
	s.applyMusicVolume()

	speaker.Lock()
	s.mixer.Add(s.musicCtrl)
	speaker.Unlock()
}

func (s *Speaker) SetVolumes(music, fx float64, muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.musicVolume, s.effectsVolume, s.muted = music, fx, muted
	s.applyMusicVolume()
}

func (s *Speaker) applyMusicVolume() {
	if s.musicVol == nil {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	s.musicVol.Silent = s.muted || s.musicVolume <= 0
	if !s.musicVol.Silent {
		s.musicVol.Volume = math.Log2(s.musicVolume)
	}
}

func (s *Speaker) Close() {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
}

// repeat restarts a freshly built streamer each time the previous one drains.
type repeat struct {
	build func() beep.Streamer
	cur   beep.Streamer
}

func (r *repeat) Stream(samples [][2]float64) (int, bool) {
	filled := 0
	for filled < len(samples) {
		if r.cur == nil {
			r.cur = r.build()
		}
		n, ok := r.cur.Stream(samples[filled:])
		filled += n
		if !ok || n == 0 {
			r.cur = nil
			if n == 0 && filled == 0 && !ok {
				// An empty cycle would spin forever.
				return 0, false
			}
		}
	}
	return filled, true
}

func (r *repeat) Err() error { return nil }
