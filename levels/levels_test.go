package levels

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestLoadCampaign(t *testing.T) {
	lvls, err := LoadCampaign()
	if err != nil {
		t.Fatalf("load campaign: %v", err)
	}
	if len(lvls) != len(Campaign) {
		t.Fatalf("expected %d levels, got %d", len(Campaign), len(lvls))
	}

	tests := []struct {
		name      string
		index     int
		wantFlag  bool
		wantBoss  bool
		minLength float64
	}{
		{"meadow", 0, true, false, 1},
		{"canopy", 1, true, false, 1},
		{"lair", 2, false, true, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lvl := lvls[tc.index]
			if (lvl.Flag != nil) != tc.wantFlag {
				t.Fatalf("flag present=%v, want %v", lvl.Flag != nil, tc.wantFlag)
			}
			if (lvl.Boss != nil) != tc.wantBoss {
				t.Fatalf("boss present=%v, want %v", lvl.Boss != nil, tc.wantBoss)
			}
			if tc.wantBoss && lvl.Reward == nil {
				t.Fatal("boss level needs a reward")
			}
			if lvl.ProgressLength() < tc.minLength {
				t.Fatalf("progress length %v too small", lvl.ProgressLength())
			}
			if len(lvl.Geometry) == 0 {
				t.Fatal("level has no geometry")
			}
		})
	}
}

func TestLoadLevelErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json":   {Data: []byte(`{"name":`)},
		"nogoal.json":   {Data: []byte(`{"name":"x","geometry":[]}`)},
		"badplat.json":  {Data: []byte(`{"name":"x","flag":{"x":1,"y":1,"w":1,"h":1},"enemies":[{"jump_interval":10,"platform":{"w":0}}]}`)},
		"badjump.json":  {Data: []byte(`{"name":"x","flag":{"x":1,"y":1,"w":1,"h":1},"enemies":[{"jump_interval":0,"platform":{"w":10}}]}`)},
		"bossonly.json": {Data: []byte(`{"name":"x","boss":{"x":1,"y":1,"arena":{"w":10}}}`)},
	}

	tests := []struct {
		name    string
		file    string
		wantErr error
	}{
		{"missing", "nope.json", nil},
		{"broken_json", "broken.json", nil},
		{"no_goal", "nogoal.json", ErrNoGoal},
		{"bad_platform", "badplat.json", ErrBadPlatform},
		{"bad_interval", "badjump.json", ErrBadInterval},
		{"boss_without_reward", "bossonly.json", ErrNoGoal},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadLevel(fsys, tc.file)
			if err == nil {
				t.Fatal("expected error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestProgressLength(t *testing.T) {
	tests := []struct {
		name string
		lvl  Level
		want float64
	}{
		{"explicit", Level{Length: 3000, Geometry: []Rect{{X: 0, W: 9000}}}, 3000},
		{"geometry_extent", Level{Geometry: []Rect{{X: 0, W: 800}, {X: 1000, W: 500}}}, 1500},
		{"flag_extent", Level{Geometry: []Rect{{X: 0, W: 800}}, Flag: &Rect{X: 1900, W: 100}}, 2000},
		{"empty", Level{}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.lvl.ProgressLength(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
