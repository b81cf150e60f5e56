package system

import "github.com/milk9111/pinkball/ecs"

const (
	// EventLivesDepleted fires once when lives reach zero.
	EventLivesDepleted ecs.EventType = "lives_depleted"
	// EventGoalReached carries the component.GoalKind touched in Data.
	EventGoalReached ecs.EventType = "goal_reached"
	// EventBossDefeated fires once per boss, with the boss entity.
	EventBossDefeated ecs.EventType = "boss_defeated"
)
