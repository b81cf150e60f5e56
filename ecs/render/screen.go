package render

import (
	"fmt"
	"image/color"

	"github.com/milk9111/pinkball/session"
	"golang.org/x/image/colornames"
)

var (
	dim       = color.RGBA{A: 178}
	panelDark = color.RGBA{A: 178}
	selected  = colornames.Pink
)

// Frame draws one complete frame of s.
func Frame(c Canvas, s *session.Session, progressWidth float64) {
	DrawWorld(c, s.World())
	DrawHUD(c, s.HUD(), progressWidth)
	if o := s.Overlay(); o != session.OverlayNone {
		DrawOverlay(c, o, s.HUD().Score)
	}
	if m := s.Menu(); m.Visible() {
		DrawMenu(c, m)
	}
}

func DrawHUD(c Canvas, h session.HUD, progressWidth float64) {
	sw, sh := c.Size()

	c.Text(fmt.Sprintf("Score: %d", h.Score), 20, 30, 20, AlignLeft, colornames.White)

	const heart, gap = 20.0, 10.0
	for i := 0; i < h.MaxLives; i++ {
		col := colornames.Lightcoral
		if i < h.Lives {
			col = colornames.Red
		}
		c.FillPolygon(HeartPoints(20+(heart+gap)*float64(i), 50, heart), col)
	}

	if progressWidth <= 0 || progressWidth > sw {
		progressWidth = sw / 2
	}
	left := (sw - progressWidth) / 2
	const top, height = 20.0, 10.0
	c.FillRect(left, top, progressWidth, height, colornames.Lightgray)
	c.FillRect(left, top, progressWidth*h.Progress, height, colornames.Blue)
	c.FillCircle(left+progressWidth*h.Progress, top+height/2, 5, colornames.Red)

	const boxW, boxH = 150.0, 40.0
	bx := sw - boxW - 20
	c.FillRect(bx, 20, boxW, boxH, panelDark)
	c.Text(fmt.Sprintf("Level: %d", h.Level), bx+boxW/2, 20+boxH/2+7, 20, AlignCenter, colornames.White)

	if h.Hint != "" {
		c.FillRect(0, sh-80, sw, 50, panelDark)
		c.Text(h.Hint, sw/2, sh-50, 20, AlignCenter, colornames.White)
	}
}

// DrawOverlay dims the screen and shows the overlay's message block centred.
func DrawOverlay(c Canvas, o session.Overlay, score int) {
	sw, sh := c.Size()
	c.FillRect(0, 0, sw, sh, dim)

	lines := o.Message(score)
	for i, line := range lines {
		y := sh/2 - 20
		switch {
		case i == len(lines)-1 && i > 0:
			y = sh/2 + 60
		case i > 0:
			y = sh/2 + 30
		}
		c.Text(line, sw/2, y, 30, AlignCenter, colornames.White)
	}
}

func DrawMenu(c Canvas, m *session.Menu) {
	sw, sh := c.Size()
	c.FillRect(0, 0, sw, sh, dim)

	switch m.Page() {
	case session.PageMain:
		c.Text(m.Page().String(), sw/2, 100, 30, AlignCenter, colornames.White)
		for i, opt := range m.Options() {
			bx, by := sw/2-150, 150+float64(i)*60-25
			col := colornames.White
			if i == m.Selected() {
				col = selected
			}
			c.FillRect(bx, by, 300, 50, col)
			c.StrokeRect(bx, by, 300, 50, 2, colornames.Black)
			c.Text(opt, sw/2, by+25+7, 20, AlignCenter, colornames.Black)
		}
	case session.PageSound:
		v := m.Volumes()
		lines := []struct {
			text string
			y    float64
		}{
			{m.Page().String(), 100},
			{fmt.Sprintf("Background Music: %d%%", percent(v.Music)), 200},
			{fmt.Sprintf("Effects Volume: %d%%", percent(v.Effects)), 250},
			{"Arrow Right/Left: Adjust Music Volume", 350},
			{"Arrow Up/Down: Adjust Effects Volume", 400},
			{muteLabel(v.Muted), 450},
			{"Press Enter to go back", 500},
		}
		for _, l := range lines {
			c.Text(l.text, sw/2, l.y, 24, AlignCenter, colornames.White)
		}
	case session.PageStory, session.PageHowToPlay:
		c.Text(m.Page().String(), sw/2, 50, 30, AlignCenter, colornames.White)
		for i, line := range m.Lines() {
			c.Text(line, 50, 100+float64(i)*30, 18, AlignLeft, colornames.White)
		}
		page, total := m.PageNumber()
		c.Text(fmt.Sprintf("Page %d of %d", page, total), sw/2, sh-60, 16, AlignCenter, colornames.Yellow)
		c.Text("Use Arrow Up/Down to scroll. Press Enter to return to the main menu.", sw/2, sh-30, 16, AlignCenter, colornames.Yellow)
	}
}

func percent(v float64) int {
	return int(v*100 + 0.5)
}

func muteLabel(muted bool) string {
	if muted {
		return "Press M to unmute"
	}
	return "Press M to toggle mute"
}
