package session

import "fmt"

// Overlay is the end-of-level screen waiting for confirmation.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayWin
	OverlayLose
	OverlayCongrats
)

func (o Overlay) String() string {
	switch o {
	case OverlayWin:
		return "win"
	case OverlayLose:
		return "lose"
	case OverlayCongrats:
		return "congrats"
	}
	return "none"
}

// Message is the headline text. The congratulations screen also carries
// the final score.
func (o Overlay) Message(score int) []string {
	switch o {
	case OverlayWin:
		return []string{"You Win!", "Press Enter to go to the next level"}
	case OverlayLose:
		return []string{"You Lose!", "Press Enter to restart the game"}
	case OverlayCongrats:
		return []string{"CONGRATULATIONS!", fmt.Sprintf("Total Score: %d", score), "Press Enter to restart the game"}
	}
	return nil
}
