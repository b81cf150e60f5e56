package system

import (
	"runtime/debug"

	"github.com/milk9111/pinkball/ecs"
)

// System advances one concern by one frame.
type System interface {
	Update(ctx *Context)
}

// Scheduler runs systems in registration order. A panicking system is logged
// and skipped for the frame; the rest still run.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := append([]System(nil), systems...)
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(ctx *Context) {
	for _, sys := range s.systems {
		runGuarded(ctx, sys)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

func runGuarded(ctx *Context, sys System) {
	defer func() {
		if r := recover(); r != nil {
			ctx.Logf("system %T panicked: %v\n%s", sys, r, debug.Stack())
		}
	}()
	sys.Update(ctx)
}

// guard isolates one entity's work so a bad entity cannot stop the pass.
func guard(ctx *Context, what string, e ecs.Entity, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			ctx.Logf("%s: entity %s panicked: %v", what, e, r)
		}
	}()
	fn()
}
