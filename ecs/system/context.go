package system

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/prefabs"
)

// Sound names understood by Sounds implementations.
const (
	SoundJump    = "jump"
	SoundStar    = "star"
	SoundStomp   = "stomp"
	SoundHurt    = "hurt"
	SoundBossHit = "boss_hit"
	SoundWin     = "win"
	SoundLose    = "lose"
)

// Sounds plays effects. Implementations must not block and must swallow
// their own failures.
type Sounds interface {
	Play(name string)
	StartMusic()
}

// Tuning bundles the prefab specs systems read every frame.
type Tuning struct {
	Game  prefabs.GameSpec
	Ball  prefabs.BallSpec
	Enemy prefabs.EnemySpec
	Boss  prefabs.BossSpec
}

func DefaultTuning() Tuning {
	return Tuning{
		Game:  prefabs.DefaultGameSpec(),
		Ball:  prefabs.DefaultBallSpec(),
		Enemy: prefabs.DefaultEnemySpec(),
		Boss:  prefabs.DefaultBossSpec(),
	}
}

// Context is everything a system may touch during one frame. The session
// owns it; nothing here is global.
type Context struct {
	World  *ecs.World
	Input  component.Input
	Score  *Score
	Lives  *Lives
	Rand   *rand.Rand
	Sounds Sounds
	Tuning Tuning
	Log    *log.Logger
	Frame  int
}

// NewContext builds a context with fresh counters and a seeded generator.
func NewContext(w *ecs.World, tuning Tuning, seed int64) *Context {
	return &Context{
		World:  w,
		Score:  &Score{},
		Lives:  NewLives(tuning.Game.MaxLives),
		Rand:   rand.New(rand.NewSource(seed)),
		Tuning: tuning,
	}
}

// Logf logs through the session logger, tagged with the frame number.
func (ctx *Context) Logf(format string, args ...any) {
	if ctx != nil && ctx.Log != nil {
		ctx.Log.Output(2, fmt.Sprintf("frame %d: ", ctx.Frame)+fmt.Sprintf(format, args...))
		return
	}
	log.Printf(format, args...)
}

func (ctx *Context) Play(name string) {
	if ctx == nil || ctx.Sounds == nil {
		return
	}
	ctx.Sounds.Play(name)
}

func (ctx *Context) StartMusic() {
	if ctx == nil || ctx.Sounds == nil {
		return
	}
	ctx.Sounds.StartMusic()
}

func (ctx *Context) AddScore(points int) {
	if ctx == nil || ctx.Score == nil {
		return
	}
	ctx.Score.Add(points)
}

// LoseLife takes one life and raises EventLivesDepleted on the transition to zero.
func (ctx *Context) LoseLife(reason string) {
	if ctx == nil || ctx.Lives == nil {
		return
	}
	before := ctx.Lives.Value()
	depleted := ctx.Lives.Lose()
	if ctx.Lives.Value() == before {
		return
	}
	ctx.Play(SoundHurt)
	ctx.Logf("life lost (%s): %d left", reason, ctx.Lives.Value())
	if depleted {
		ctx.World.Events().Push(ecs.Event{Type: EventLivesDepleted})
	}
}

func (ctx *Context) GainLife() {
	if ctx == nil || ctx.Lives == nil {
		return
	}
	ctx.Lives.Gain()
	ctx.Logf("extra life: %d", ctx.Lives.Value())
}
