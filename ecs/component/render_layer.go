package component

// RenderLayer sorts the world pass. Equal layers draw in creation order.
type RenderLayer struct {
	Index int
}

const (
	LayerBackground = 0
	LayerGeometry   = 10
	LayerGoal       = 20
	LayerPickup     = 30
	LayerHostile    = 40
	LayerBoss       = 50
	LayerPlayer     = 100
)

var RenderLayerComponent = NewComponent[RenderLayer]()
