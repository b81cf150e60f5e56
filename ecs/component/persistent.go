package component

// Persistent entities survive level swaps.
type Persistent struct {
	ID                string
	KeepOnLevelChange bool
}

var PersistentComponent = NewComponent[Persistent]()
