package prefabs

// GameSpec holds frame-independent rules shared by every level.
type GameSpec struct {
	WorldWidth         float64 `yaml:"world_width"`
	WorldHeight        float64 `yaml:"world_height"`
	MaxLives           int     `yaml:"max_lives"`
	InvulnerableFrames int     `yaml:"invulnerable_frames"`
	StarPoints         int     `yaml:"star_points"`
	EnemyPoints        int     `yaml:"enemy_points"`
	MusicVolume        float64 `yaml:"music_volume"`
	EffectsVolume      float64 `yaml:"effects_volume"`
	BackgroundSpeed    float64 `yaml:"background_speed"`
	ProgressBarWidth   float64 `yaml:"progress_bar_width"`
}

type BallSpec struct {
	Radius       float64 `yaml:"radius"`
	Gravity      float64 `yaml:"gravity"`
	JumpStrength float64 `yaml:"jump_strength"`
	MoveSpeed    float64 `yaml:"move_speed"`
	MaxJumps     int     `yaml:"max_jumps"`
	Fill         Color   `yaml:"fill"`
	Border       Color   `yaml:"border"`
}

type EnemySpec struct {
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`
	Gravity  float64 `yaml:"gravity"`
	Basic    Color   `yaml:"basic_color"`
	Advanced Color   `yaml:"advanced_color"`
}

type BossSpec struct {
	Size    float64 `yaml:"size"`
	Health  int     `yaml:"health"`
	Gravity float64 `yaml:"gravity"`
	MinX    float64 `yaml:"min_x"`
	Color   Color   `yaml:"color"`

	// Phase 3 starts at or below this percentage of max health.
	EnragePercent float64 `yaml:"enrage_percent"`

	ArriveTolerance float64 `yaml:"arrive_tolerance"`
	PatrolFrames    int     `yaml:"patrol_frames"`
	HopFrames       int     `yaml:"hop_frames"`
	HopSpeed        float64 `yaml:"hop_speed"`
	LeapSpeed       float64 `yaml:"leap_speed"`
	LeapCooldown    int     `yaml:"leap_cooldown"`
	// Base horizontal speed per phase; the phase number is added on top.
	PatrolSpeed float64 `yaml:"patrol_speed"`
	HopMove     float64 `yaml:"hop_move"`
	LeapMove    float64 `yaml:"leap_move"`

	Bullets BulletSpec `yaml:"bullets"`
}

type BulletSpec struct {
	Count    int     `yaml:"count"`
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Cooldown int     `yaml:"cooldown"`
	Color    Color   `yaml:"color"`
}

type HintSpec struct {
	Text   string `yaml:"text"`
	Action string `yaml:"action"`
	Done   string `yaml:"done"`
}

type HintsSpec struct {
	Hints []HintSpec `yaml:"hints"`
}

type MenuSpec struct {
	Options        []string `yaml:"options"`
	Story          []string `yaml:"story"`
	HowToPlay      []string `yaml:"how_to_play"`
	StoryLines     int      `yaml:"story_lines"`
	HowToPlayLines int      `yaml:"how_to_play_lines"`
	VolumeStep     float64  `yaml:"volume_step"`
}

// SoundSpec describes a synthesized effect.
type SoundSpec struct {
	Name     string  `yaml:"name"`
	Wave     string  `yaml:"wave"`
	Freq     float64 `yaml:"freq"`
	FreqEnd  float64 `yaml:"freq_end"`
	Millis   int     `yaml:"ms"`
	AttackMs int     `yaml:"attack_ms"`
	DecayMs  int     `yaml:"release_ms"`
	Volume   float64 `yaml:"volume"`
}

// MusicSpec is a looping note sequence; Notes are frequencies, 0 is a rest.
type MusicSpec struct {
	Wave   string    `yaml:"wave"`
	BeatMs int       `yaml:"beat_ms"`
	Notes  []float64 `yaml:"notes"`
	Volume float64   `yaml:"volume"`
}

type SoundsSpec struct {
	Effects []SoundSpec `yaml:"effects"`
	Music   MusicSpec   `yaml:"music"`
}

func LoadGameSpec() GameSpec     { return LoadOr("game.yaml", DefaultGameSpec()) }
func LoadBallSpec() BallSpec     { return LoadOr("ball.yaml", DefaultBallSpec()) }
func LoadEnemySpec() EnemySpec   { return LoadOr("enemy.yaml", DefaultEnemySpec()) }
func LoadBossSpec() BossSpec     { return LoadOr("boss.yaml", DefaultBossSpec()) }
func LoadHintsSpec() HintsSpec   { return LoadOr("hints.yaml", DefaultHintsSpec()) }
func LoadMenuSpec() MenuSpec     { return LoadOr("menu.yaml", DefaultMenuSpec()) }
func LoadSoundsSpec() SoundsSpec { return LoadOr("sounds.yaml", SoundsSpec{}) }
