package component

// Paused freezes an entity's update. Set on everything while the menu or an
// overlay is showing.
type Paused struct{}

var PausedComponent = NewComponent[Paused]()
