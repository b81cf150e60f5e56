package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
)

//go:embed *.json
var LevelsFS embed.FS

// Campaign lists the levels in play order.
var Campaign = []string{"level1.json", "level2.json", "level3.json"}

type Level struct {
	Name       string     `json:"name"`
	Length     float64    `json:"length,omitempty"`
	Spawn      Point      `json:"spawn"`
	Background Background `json:"background"`
	Geometry   []Rect     `json:"geometry"`
	Enemies    []Enemy    `json:"enemies,omitempty"`
	Stars      []Star     `json:"stars,omitempty"`
	Flag       *Rect      `json:"flag,omitempty"`
	Boss       *Boss      `json:"boss,omitempty"`
	Reward     *Rect      `json:"reward,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Background struct {
	Sky   string `json:"sky"`
	Hills string `json:"hills"`
}

type Rect struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Kind  string  `json:"kind,omitempty"`
	Color string  `json:"color,omitempty"`
}

// Enemy stands with its bottom-centre at (X, Y) and paces Platform.
type Enemy struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	JumpStrength float64 `json:"jump_strength"`
	JumpInterval int     `json:"jump_interval"`
	Platform     Rect    `json:"platform"`
	Variant      string  `json:"variant,omitempty"`
}

type Star struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Color string  `json:"color,omitempty"`
}

// Boss stands on Arena's top edge and roams its width.
type Boss struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Arena Rect    `json:"arena"`
}

var (
	ErrNoGoal      = errors.New("levels: level has neither a flag nor a boss with a reward")
	ErrBadPlatform = errors.New("levels: enemy platform has no width")
	ErrBadInterval = errors.New("levels: enemy jump interval must be positive")
)

func LoadLevelFromFS(name string) (*Level, error) {
	return LoadLevel(LevelsFS, name)
}

func LoadLevel(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &lvl, nil
}

// LoadCampaign loads every level in Campaign order.
func LoadCampaign() ([]*Level, error) {
	out := make([]*Level, 0, len(Campaign))
	for _, name := range Campaign {
		lvl, err := LoadLevelFromFS(name)
		if err != nil {
			return nil, err
		}
		out = append(out, lvl)
	}
	return out, nil
}

func (l *Level) Validate() error {
	if l.Flag == nil && (l.Boss == nil || l.Reward == nil) {
		return ErrNoGoal
	}
	for i, e := range l.Enemies {
		if e.Platform.W <= 0 {
			return fmt.Errorf("enemy %d: %w", i, ErrBadPlatform)
		}
		if e.JumpInterval <= 0 {
			return fmt.Errorf("enemy %d: %w", i, ErrBadInterval)
		}
	}
	return nil
}

// ProgressLength is the distance the progress bar measures against. Levels
// without an explicit length use the right-most edge of their geometry.
func (l *Level) ProgressLength() float64 {
	if l.Length > 0 {
		return l.Length
	}
	extent := 0.0
	for _, g := range l.Geometry {
		extent = math.Max(extent, g.X+g.W)
	}
	if l.Flag != nil {
		extent = math.Max(extent, l.Flag.X+l.Flag.W)
	}
	if extent == 0 {
		return 1
	}
	return extent
}
