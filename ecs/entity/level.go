package entity

import (
	"fmt"

	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/levels"
	"github.com/milk9111/pinkball/prefabs"
)

// Specs are the prefab tunings a level build reads.
type Specs struct {
	Game  prefabs.GameSpec
	Ball  prefabs.BallSpec
	Enemy prefabs.EnemySpec
	Boss  prefabs.BossSpec
	Hints prefabs.HintsSpec
}

// Loaded names the entities the session needs to reach directly.
type Loaded struct {
	Ball       ecs.Entity
	Camera     ecs.Entity
	Background ecs.Entity
	Hints      ecs.Entity
	Boss       ecs.Entity
	Reward     ecs.Entity
}

const (
	persistentBall       = "ball"
	persistentCamera     = "camera"
	persistentBackground = "background"
)

// ClearLevel destroys every entity not marked to survive a level change and
// reports how many went.
func ClearLevel(w *ecs.World) int {
	removed := 0
	for _, e := range ecs.Entities(w) {
		if p, ok := ecs.Get(w, e, component.PersistentComponent.Kind()); ok && p.KeepOnLevelChange {
			continue
		}
		if ecs.DestroyEntity(w, e) {
			removed++
		}
	}
	return removed
}

// FindPersistent returns the live entity tagged with id.
func FindPersistent(w *ecs.World, id string) (ecs.Entity, bool) {
	var found ecs.Entity
	ok := false
	ecs.ForEach(w, component.PersistentComponent.Kind(), func(e ecs.Entity, p *component.Persistent) {
		if !ok && p.ID == id {
			found, ok = e, true
		}
	})
	return found, ok
}

func markPersistent(w *ecs.World, e ecs.Entity, id string) error {
	return ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{ID: id, KeepOnLevelChange: true})
}

// LoadLevelToWorld swaps the world's level objects for lvl's. The ball,
// camera and backdrop carry over between levels and are created on first
// use. The ball goes back to the spawn point with no velocity or jumps.
// The tutorial flag locks the ball's actions and adds the hint walker;
// otherwise every action is unlocked.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, specs Specs, tutorial bool) (Loaded, error) {
	var out Loaded
	if lvl == nil {
		return out, fmt.Errorf("load level: nil level")
	}
	ClearLevel(w)

	background, err := ensureBackground(w, lvl, specs.Game.BackgroundSpeed)
	if err != nil {
		return out, err
	}
	out.Background = background

	if _, err := NewBounds(w, specs.Game.WorldWidth, specs.Game.WorldHeight); err != nil {
		return out, err
	}
	for i, g := range lvl.Geometry {
		if _, err := NewGeometry(w, g); err != nil {
			return out, fmt.Errorf("level %s geometry %d: %w", lvl.Name, i, err)
		}
	}
	for i, s := range lvl.Stars {
		if _, err := NewStar(w, s, specs.Game.StarPoints); err != nil {
			return out, fmt.Errorf("level %s star %d: %w", lvl.Name, i, err)
		}
	}
	for i, en := range lvl.Enemies {
		if _, err := NewEnemy(w, specs.Enemy, en); err != nil {
			return out, fmt.Errorf("level %s enemy %d: %w", lvl.Name, i, err)
		}
	}
	if lvl.Flag != nil {
		if _, err := NewGoal(w, *lvl.Flag, component.GoalFlag, false); err != nil {
			return out, fmt.Errorf("level %s flag: %w", lvl.Name, err)
		}
	}
	if lvl.Boss != nil && lvl.Reward != nil {
		reward, err := NewGoal(w, *lvl.Reward, component.GoalReward, true)
		if err != nil {
			return out, fmt.Errorf("level %s reward: %w", lvl.Name, err)
		}
		boss, err := NewBoss(w, specs.Boss, *lvl.Boss, reward)
		if err != nil {
			return out, fmt.Errorf("level %s: %w", lvl.Name, err)
		}
		out.Boss, out.Reward = boss, reward
	}

	if tutorial {
		hints, err := NewHints(w, specs.Hints)
		if err != nil {
			return out, err
		}
		out.Hints = hints
	}

	ball, err := ensureBall(w, specs.Ball, lvl.Spawn.X, lvl.Spawn.Y)
	if err != nil {
		return out, err
	}
	actions := component.AllActions()
	if tutorial {
		actions = component.Actions{}
	}
	if err := ecs.Add(w, ball, component.ActionsComponent.Kind(), &actions); err != nil {
		return out, fmt.Errorf("ball: set actions: %w", err)
	}
	out.Ball = ball

	camera, err := ensureCamera(w, ball, specs.Game.WorldWidth)
	if err != nil {
		return out, err
	}
	out.Camera = camera

	return out, nil
}

func ensureBall(w *ecs.World, spec prefabs.BallSpec, x, y float64) (ecs.Entity, error) {
	e, ok := FindPersistent(w, persistentBall)
	if !ok {
		e, err := NewBall(w, spec, x, y)
		if err != nil {
			return 0, err
		}
		if err := markPersistent(w, e, persistentBall); err != nil {
			return 0, fmt.Errorf("ball: add persistent: %w", err)
		}
		return e, nil
	}

	b, ok := ecs.Get(w, e, component.BallComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("ball: persistent entity %s has no ball", e)
	}
	b.SpawnX, b.SpawnY = x, y
	b.JumpCount = 0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.DX, v.DY = 0, 0
	}
	ecs.Remove(w, e, component.RespawnRequestComponent.Kind())
	ecs.Remove(w, e, component.InvulnerableComponent.Kind())
	return e, nil
}

func ensureCamera(w *ecs.World, target ecs.Entity, worldWidth float64) (ecs.Entity, error) {
	if e, ok := FindPersistent(w, persistentCamera); ok {
		if cam, ok := ecs.Get(w, e, component.CameraComponent.Kind()); ok {
			cam.X = 0
			cam.WorldWidth = worldWidth
			cam.TargetEntID = uint64(target)
		}
		return e, nil
	}
	e, err := NewCamera(w, target, worldWidth)
	if err != nil {
		return 0, err
	}
	if err := markPersistent(w, e, persistentCamera); err != nil {
		return 0, fmt.Errorf("camera: add persistent: %w", err)
	}
	return e, nil
}

func ensureBackground(w *ecs.World, lvl *levels.Level, speed float64) (ecs.Entity, error) {
	if e, ok := FindPersistent(w, persistentBackground); ok {
		if bg, ok := ecs.Get(w, e, component.BackgroundComponent.Kind()); ok {
			bg.Sky = common.MustColor(orDefault(lvl.Background.Sky, "skyblue"))
			bg.Hills = common.MustColor(orDefault(lvl.Background.Hills, "seagreen"))
			bg.Speed = speed
			bg.Offset = 0
		}
		return e, nil
	}
	e, err := NewBackground(w, lvl.Background.Sky, lvl.Background.Hills, speed)
	if err != nil {
		return 0, err
	}
	if err := markPersistent(w, e, persistentBackground); err != nil {
		return 0, fmt.Errorf("background: add persistent: %w", err)
	}
	return e, nil
}
