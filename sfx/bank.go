package sfx

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/pinkball/prefabs"
)

// Bank plays pre-rendered effects and the music loop through an ebiten
// audio context. Unknown names and player errors are logged and ignored.
type Bank struct {
	players map[string]*audio.Player
	music   *audio.Player

	musicVolume   float64
	effectsVolume float64
	muted         bool
}

// NewBank renders every sound in spec. ctx must use SampleRate.
func NewBank(ctx *audio.Context, spec prefabs.SoundsSpec) *Bank {
	b := &Bank{
		players:       map[string]*audio.Player{},
		musicVolume:   0.5,
		effectsVolume: 0.5,
	}
	if ctx == nil {
		return b
	}
	for _, fx := range spec.Effects {
		b.players[fx.Name] = ctx.NewPlayerFromBytes(PCM(Effect(fx, SampleRate)))
	}
	if len(spec.Music.Notes) > 0 {
		pcm := PCM(MusicCycle(spec.Music, SampleRate))
		loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
		p, err := ctx.NewPlayer(loop)
		if err != nil {
			log.Printf("sfx: music player: %v", err)
		} else {
			b.music = p
		}
	}
	return b
}

func (b *Bank) Play(name string) {
	p, ok := b.players[name]
	if !ok {
		log.Printf("sfx: unknown sound %q", name)
		return
	}
	if b.muted {
		return
	}
	p.SetVolume(b.effectsVolume)
	if err := p.Rewind(); err != nil {
		log.Printf("sfx: rewind %s: %v", name, err)
		return
	}
	p.Play()
}

// StartMusic begins the loop once; later calls are no-ops.
func (b *Bank) StartMusic() {
	if b.music == nil || b.music.IsPlaying() {
		return
	}
	b.applyMusicVolume()
	b.music.Play()
}

func (b *Bank) SetVolumes(music, effects float64, muted bool) {
	b.musicVolume, b.effectsVolume, b.muted = music, effects, muted
	b.applyMusicVolume()
}

func (b *Bank) applyMusicVolume() {
	if b.music == nil {
		return
	}
	v := b.musicVolume
	if b.muted {
		v = 0
	}
	b.music.SetVolume(v)
}

// Close stops and releases every player.
func (b *Bank) Close() {
	for name, p := range b.players {
		if err := p.Close(); err != nil {
			log.Printf("sfx: close %s: %v", name, err)
		}
	}
	if b.music != nil {
		_ = b.music.Close()
	}
}
