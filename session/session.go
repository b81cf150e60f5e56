// Package session runs one play-through: it owns the world, the frame
// schedule, the level index and the menu and overlay state around them.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/ecs/entity"
	"github.com/milk9111/pinkball/ecs/system"
	"github.com/milk9111/pinkball/levels"
	"github.com/milk9111/pinkball/prefabs"
)

var ErrNoLevels = errors.New("session: no levels")

// Mixer is implemented by sound backends whose volume can be changed.
type Mixer interface {
	SetVolumes(music, effects float64, muted bool)
}

type Options struct {
	Levels []*levels.Level
	Specs  entity.Specs
	Menu   prefabs.MenuSpec
	Seed   int64
	Sounds system.Sounds
	// LogOutput defaults to stderr.
	LogOutput io.Writer
}

// DefaultOptions loads the embedded campaign and prefab specs.
func DefaultOptions() (Options, error) {
	lvls, err := levels.LoadCampaign()
	if err != nil {
		return Options{}, fmt.Errorf("session: %w", err)
	}
	return Options{
		Levels: lvls,
		Specs:  LoadSpecs(),
		Menu:   prefabs.LoadMenuSpec(),
		Seed:   1,
	}, nil
}

func LoadSpecs() entity.Specs {
	return entity.Specs{
		Game:  prefabs.LoadGameSpec(),
		Ball:  prefabs.LoadBallSpec(),
		Enemy: prefabs.LoadEnemySpec(),
		Boss:  prefabs.LoadBossSpec(),
		Hints: prefabs.LoadHintsSpec(),
	}
}

type Session struct {
	opts Options

	runID string
	log   *log.Logger

	world     *ecs.World
	ctx       *system.Context
	scheduler *system.Scheduler
	boss      *system.BossSystem

	level   int
	loaded  entity.Loaded
	overlay Overlay
	menu    *Menu
}

func New(opts Options) (*Session, error) {
	if len(opts.Levels) == 0 {
		return nil, ErrNoLevels
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	s := &Session{opts: opts}
	s.menu = NewMenu(opts.Menu, Volumes{
		Music:   opts.Specs.Game.MusicVolume,
		Effects: opts.Specs.Game.EffectsVolume,
	})
	if err := s.Restart(); err != nil {
		return nil, err
	}
	s.applyVolumes()
	return s, nil
}

// Restart throws away the whole play-through and starts again at level 0
// with a fresh world, counters and run id.
func (s *Session) Restart() error {
	s.runID = uuid.NewString()
	s.log = log.New(s.opts.LogOutput, fmt.Sprintf("[pinkball %s] ", s.runID[:8]), log.LstdFlags|log.Lmsgprefix)

	s.world = ecs.NewWorld()
	s.ctx = system.NewContext(s.world, s.tuning(), s.opts.Seed)
	s.ctx.Sounds = s.opts.Sounds
	s.ctx.Log = s.log
	s.scheduler = system.NewScheduler(
		system.NewInputSystem(),
		system.NewHintSystem(),
		system.NewHostileMotionSystem(),
		system.NewPlayerMotionSystem(),
		system.NewContactSystem(),
		system.NewBoundsSystem(),
		system.NewRespawnSystem(),
		system.NewCameraSystem(),
		system.NewBackgroundSystem(),
	)
	s.boss = system.NewBossSystem()
	s.menu.Close()

	s.log.Printf("run started")
	return s.Load(0)
}

// RestartLevel reloads the current level keeping score and lives.
func (s *Session) RestartLevel() error {
	return s.Load(s.level)
}

// Load swaps in level index. Level 0 also resets score and lives and
// installs the tutorial.
func (s *Session) Load(index int) error {
	if index < 0 || index >= len(s.opts.Levels) {
		return fmt.Errorf("session: level %d out of range [0,%d)", index, len(s.opts.Levels))
	}
	lvl := s.opts.Levels[index]

	if index == 0 {
		s.ctx.Score.Reset()
		s.ctx.Lives.Reset()
	}
	loaded, err := entity.LoadLevelToWorld(s.world, lvl, s.opts.Specs, index == 0)
	if err != nil {
		return fmt.Errorf("session: load level %d: %w", index, err)
	}

	s.level = index
	s.loaded = loaded
	s.overlay = OverlayNone
	system.ResumeAll(s.world)
	s.world.Events().Drain()
	s.log.Printf("level %d (%s) loaded", index+1, lvl.Name)
	return nil
}

// Step advances one frame.
func (s *Session) Step(in component.Input) error {
	s.ctx.Frame++
	s.ctx.Input = in

	if in.Menu && s.overlay == OverlayNone {
		s.toggleMenu()
		return nil
	}
	if s.menu.Visible() {
		if in.Resume {
			s.closeMenu()
			return nil
		}
		return s.handleMenu(in)
	}
	if s.overlay != OverlayNone {
		if in.Confirm {
			return s.confirm()
		}
		return nil
	}

	s.scheduler.Update(s.ctx)
	s.stepBoss()
	s.handleEvents()
	return nil
}

func (s *Session) stepBoss() {
	if s.overlay != OverlayNone || !ecs.IsAlive(s.world, s.loaded.Boss) {
		return
	}
	s.boss.Update(s.ctx)
	system.CheckBulletCollisions(s.ctx)
}

func (s *Session) handleEvents() {
	for _, ev := range s.world.Events().Drain() {
		switch ev.Type {
		case system.EventLivesDepleted:
			s.show(OverlayLose)
		case system.EventGoalReached:
			if kind, _ := ev.Data.(component.GoalKind); kind == component.GoalReward {
				s.show(OverlayCongrats)
			} else {
				s.show(OverlayWin)
			}
		case system.EventBossDefeated:
			s.log.Printf("boss defeated")
		}
	}
}

// show raises an overlay. A lose always replaces a win raised in the same
// frame; otherwise the first overlay stands.
func (s *Session) show(o Overlay) {
	if s.overlay != OverlayNone && o != OverlayLose {
		return
	}
	s.overlay = o
	system.PauseAll(s.world)
	switch o {
	case OverlayLose:
		s.ctx.Play(system.SoundLose)
	default:
		s.ctx.Play(system.SoundWin)
	}
	s.log.Printf("overlay %s at score %d", o, s.ctx.Score.Value())
}

func (s *Session) confirm() error {
	switch s.overlay {
	case OverlayWin:
		next := s.level + 1
		if next >= len(s.opts.Levels) {
			return s.Restart()
		}
		return s.Load(next)
	case OverlayLose, OverlayCongrats:
		return s.Restart()
	}
	return nil
}

func (s *Session) toggleMenu() {
	if s.menu.Visible() {
		s.closeMenu()
		return
	}
	s.menu.Open()
	system.PauseAll(s.world)
}

func (s *Session) closeMenu() {
	s.menu.Close()
	system.ResumeAll(s.world)
}

func (s *Session) handleMenu(in component.Input) error {
	before := s.menu.Volumes()
	action := s.menu.Handle(in)
	if s.menu.Volumes() != before {
		s.applyVolumes()
	}
	return s.apply(action)
}

// ChooseMenuOption activates a main page option, for pointer-driven menus.
func (s *Session) ChooseMenuOption(i int) error {
	if !s.menu.Visible() {
		return nil
	}
	return s.apply(s.menu.Choose(i))
}

func (s *Session) apply(action MenuAction) error {
	switch action {
	case MenuResume:
		system.ResumeAll(s.world)
	case MenuRestartLevel:
		return s.RestartLevel()
	case MenuRestartGame:
		return s.Restart()
	}
	return nil
}

func (s *Session) applyVolumes() {
	mixer, ok := s.opts.Sounds.(Mixer)
	if !ok {
		return
	}
	v := s.menu.Volumes()
	mixer.SetVolumes(v.Music, v.Effects, v.Muted)
}

// ApplySpecs swaps prefab tunings. Systems see them on the next frame;
// entity shapes change on the next level load.
func (s *Session) ApplySpecs(specs entity.Specs) {
	s.opts.Specs = specs
	s.ctx.Tuning = s.tuning()
	s.log.Printf("prefab specs reloaded")
}

func (s *Session) tuning() system.Tuning {
	return system.Tuning{
		Game:  s.opts.Specs.Game,
		Ball:  s.opts.Specs.Ball,
		Enemy: s.opts.Specs.Enemy,
		Boss:  s.opts.Specs.Boss,
	}
}

func (s *Session) World() *ecs.World        { return s.world }
func (s *Session) Context() *system.Context { return s.ctx }
func (s *Session) Menu() *Menu              { return s.menu }
func (s *Session) Overlay() Overlay         { return s.overlay }
func (s *Session) Awaiting() bool           { return s.overlay != OverlayNone }
func (s *Session) LevelIndex() int          { return s.level }
func (s *Session) LevelCount() int          { return len(s.opts.Levels) }
func (s *Session) Loaded() entity.Loaded    { return s.loaded }
func (s *Session) RunID() string            { return s.runID }
func (s *Session) Logger() *log.Logger      { return s.log }

// HUD is the screen-space status the renderers draw.
type HUD struct {
	Score     int
	Lives     int
	MaxLives  int
	Level     int
	Levels    int
	LevelName string
	// Progress is the ball's x over the level length, in [0, 1].
	Progress float64
	Hint     string

	HasBoss       bool
	BossHealth    int
	BossMaxHealth int
	BossPhase     int
}

func (s *Session) HUD() HUD {
	lvl := s.opts.Levels[s.level]
	h := HUD{
		Score:     s.ctx.Score.Value(),
		Lives:     s.ctx.Lives.Value(),
		MaxLives:  s.ctx.Lives.Max(),
		Level:     s.level + 1,
		Levels:    len(s.opts.Levels),
		LevelName: lvl.Name,
	}
	if t, ok := ecs.Get(s.world, s.loaded.Ball, component.TransformComponent.Kind()); ok {
		h.Progress = common.Clamp(t.X/lvl.ProgressLength(), 0, 1)
	}
	if hints, ok := ecs.Get(s.world, s.loaded.Hints, component.HintsComponent.Kind()); ok {
		if cur, ok := hints.Current(); ok {
			h.Hint = cur.Text
		}
	}
	if b, ok := ecs.Get(s.world, s.loaded.Boss, component.BossComponent.Kind()); ok {
		h.HasBoss = true
		h.BossHealth = b.Health
		h.BossMaxHealth = b.MaxHealth
		h.BossPhase = b.Phase
	}
	return h
}
