// Package sfx synthesizes the game's effects and music from prefab specs
// and plays them through ebiten's audio context or beep's speaker.
package sfx

import (
	"encoding/binary"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/milk9111/pinkball/prefabs"
)

// SampleRate is shared by both backends.
const SampleRate = beep.SampleRate(44100)

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
	WaveNoise
)

func ParseWave(s string) Wave {
	switch strings.ToLower(s) {
	case "square":
		return WaveSquare
	case "saw":
		return WaveSaw
	case "triangle":
		return WaveTriangle
	case "noise":
		return WaveNoise
	}
	return WaveSine
}

func sample(w Wave, phase float64, rng *rand.Rand) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 4*math.Abs(phase-0.5) - 1
	case WaveNoise:
		return rng.Float64()*2 - 1
	}
	return math.Sin(2 * math.Pi * phase)
}

// sweep is an oscillator gliding linearly from one frequency to another
// over its duration.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	phase    float64
	pos      int
	total    int
	rng      *rand.Rand
}

func newSweep(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) *sweep {
	if to <= 0 {
		to = from
	}
	return &sweep{
		from:  from,
		to:    to,
		wave:  wave,
		rate:  rate,
		total: rate.N(d),
		rng:   rand.New(rand.NewSource(int64(from*1000) + int64(d))),
	}
}

func (o *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}
		v := sample(o.wave, o.phase, o.rng)
		samples[i][0], samples[i][1] = v, v

		t := float64(o.pos) / float64(max(o.total, 1))
		freq := o.from + (o.to-o.from)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	s                    beep.Streamer
	pos, attack, release int
	total                int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{s: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Max(float64(left)/float64(e.release), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// Effect builds a one-shot streamer for spec.
func Effect(spec prefabs.SoundSpec, rate beep.SampleRate) beep.Streamer {
	d := ms(max(spec.Millis, 1))
	osc := newSweep(spec.Freq, spec.FreqEnd, d, ParseWave(spec.Wave), rate)
	shaped := newEnvelope(osc, d, ms(spec.AttackMs), ms(spec.DecayMs), rate)
	return withVolume(shaped, volumeOr(spec.Volume))
}

// MusicCycle builds one pass through the note loop. Zero notes are rests.
func MusicCycle(spec prefabs.MusicSpec, rate beep.SampleRate) beep.Streamer {
	beat := ms(max(spec.BeatMs, 1))
	wave := ParseWave(spec.Wave)
	parts := make([]beep.Streamer, 0, len(spec.Notes))
	for _, f := range spec.Notes {
		if f <= 0 {
			parts = append(parts, beep.Silence(rate.N(beat)))
			continue
		}
		osc := newSweep(f, f, beat, wave, rate)
		parts = append(parts, newEnvelope(osc, beat, beat/10, beat/4, rate))
	}
	return withVolume(beep.Seq(parts...), volumeOr(spec.Volume))
}

func volumeOr(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

// PCM drains s into 16-bit little-endian stereo, the layout ebiten's audio
// players read.
func PCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, ch := range smp {
				v := int16(math.Max(-1, math.Min(1, ch)) * math.MaxInt16)
				out = binary.LittleEndian.AppendUint16(out, uint16(v))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
