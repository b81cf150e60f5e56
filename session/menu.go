package session

import (
	"math"

	"github.com/milk9111/pinkball/common"
	"github.com/milk9111/pinkball/ecs/component"
	"github.com/milk9111/pinkball/prefabs"
)

type Page int

const (
	PageMain Page = iota
	PageSound
	PageStory
	PageHowToPlay
)

func (p Page) String() string {
	switch p {
	case PageSound:
		return "Sound Settings"
	case PageStory:
		return "Story"
	case PageHowToPlay:
		return "How to Play"
	}
	return "Pause Menu"
}

// MenuAction is what the session must do after the menu handled input.
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuResume
	MenuRestartLevel
	MenuRestartGame
)

// Main page option labels understood by Choose.
const (
	OptionResume       = "Resume"
	OptionRestartLevel = "Restart Level"
	OptionRestartGame  = "Restart Game"
	OptionSound        = "Sound Effects"
	OptionStory        = "Story"
	OptionHowToPlay    = "How to Play"
)

// Volumes is the mixer state the sound page edits.
type Volumes struct {
	Music   float64
	Effects float64
	Muted   bool
}

// Menu is the pause menu model. Frontends draw it; only Handle and Choose
// change it.
type Menu struct {
	spec     prefabs.MenuSpec
	visible  bool
	page     Page
	selected int
	scroll   map[Page]int
	volumes  Volumes
}

func NewMenu(spec prefabs.MenuSpec, volumes Volumes) *Menu {
	if len(spec.Options) == 0 {
		spec.Options = prefabs.DefaultMenuSpec().Options
	}
	if spec.VolumeStep <= 0 {
		spec.VolumeStep = 0.1
	}
	if spec.StoryLines <= 0 {
		spec.StoryLines = 6
	}
	if spec.HowToPlayLines <= 0 {
		spec.HowToPlayLines = 10
	}
	return &Menu{spec: spec, scroll: map[Page]int{}, volumes: volumes}
}

func (m *Menu) Visible() bool     { return m.visible }
func (m *Menu) Page() Page        { return m.page }
func (m *Menu) Selected() int     { return m.selected }
func (m *Menu) Options() []string { return m.spec.Options }
func (m *Menu) Volumes() Volumes  { return m.volumes }

// Open shows the main page with the first option selected.
func (m *Menu) Open() {
	m.visible = true
	m.page = PageMain
	m.selected = 0
}

func (m *Menu) Close() {
	m.visible = false
	m.page = PageMain
}

func (m *Menu) Toggle() {
	if m.visible {
		m.Close()
		return
	}
	m.Open()
}

// Handle applies one frame of input to the visible menu.
func (m *Menu) Handle(in component.Input) MenuAction {
	if !m.visible {
		return MenuNone
	}
	switch m.page {
	case PageMain:
		n := len(m.spec.Options)
		if in.Up {
			m.selected = (m.selected - 1 + n) % n
		}
		if in.Down {
			m.selected = (m.selected + 1) % n
		}
		if in.Confirm {
			return m.Choose(m.selected)
		}
	case PageSound:
		step := m.spec.VolumeStep
		if in.MenuRight {
			m.volumes.Music = stepVolume(m.volumes.Music, step)
		}
		if in.MenuLeft {
			m.volumes.Music = stepVolume(m.volumes.Music, -step)
		}
		if in.Up {
			m.volumes.Effects = stepVolume(m.volumes.Effects, step)
		}
		if in.Down {
			m.volumes.Effects = stepVolume(m.volumes.Effects, -step)
		}
		if in.Mute {
			m.volumes.Muted = !m.volumes.Muted
		}
		if in.Confirm {
			m.page = PageMain
		}
	case PageStory, PageHowToPlay:
		lines, visible := m.pageText(m.page)
		if in.Down {
			m.scroll[m.page] = min(m.scroll[m.page]+1, max(len(lines)-visible, 0))
		}
		if in.Up {
			m.scroll[m.page] = max(m.scroll[m.page]-1, 0)
		}
		if in.Confirm {
			m.page = PageMain
		}
	}
	return MenuNone
}

// Choose activates main page option i. Out of range indexes do nothing.
func (m *Menu) Choose(i int) MenuAction {
	if i < 0 || i >= len(m.spec.Options) {
		return MenuNone
	}
	m.selected = i
	switch m.spec.Options[i] {
	case OptionResume:
		m.Close()
		return MenuResume
	case OptionRestartLevel:
		m.Close()
		return MenuRestartLevel
	case OptionRestartGame:
		m.Close()
		return MenuRestartGame
	case OptionSound:
		m.page = PageSound
	case OptionStory:
		m.page = PageStory
	case OptionHowToPlay:
		m.page = PageHowToPlay
	}
	return MenuNone
}

// Lines returns the slice of page text currently scrolled into view.
func (m *Menu) Lines() []string {
	lines, visible := m.pageText(m.page)
	start := min(m.scroll[m.page], len(lines))
	end := min(start+visible, len(lines))
	return lines[start:end]
}

// PageNumber reports the scroll position as "page n of total" for text pages.
func (m *Menu) PageNumber() (int, int) {
	lines, visible := m.pageText(m.page)
	if visible <= 0 || len(lines) == 0 {
		return 1, 1
	}
	total := int(math.Ceil(float64(len(lines)) / float64(visible)))
	return m.scroll[m.page]/visible + 1, total
}

func (m *Menu) pageText(p Page) ([]string, int) {
	switch p {
	case PageStory:
		return m.spec.Story, m.spec.StoryLines
	case PageHowToPlay:
		return m.spec.HowToPlay, m.spec.HowToPlayLines
	}
	return nil, 0
}

func stepVolume(v, step float64) float64 {
	// Hundredths, so ten 0.1 steps reach 1.
	v = math.Round((v+step)*100) / 100
	return common.Clamp(v, 0, 1)
}
