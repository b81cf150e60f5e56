package prefabs

func DefaultGameSpec() GameSpec {
	return GameSpec{
		WorldWidth:         5000,
		WorldHeight:        600,
		MaxLives:           7,
		InvulnerableFrames: 60,
		StarPoints:         10,
		EnemyPoints:        20,
		MusicVolume:        0.5,
		EffectsVolume:      0.5,
		BackgroundSpeed:    0.5,
		ProgressBarWidth:   400,
	}
}

func DefaultBallSpec() BallSpec {
	return BallSpec{
		Radius:       15,
		Gravity:      0.4,
		JumpStrength: -12,
		MoveSpeed:    5,
		MaxJumps:     2,
		Fill:         NamedColor("blue"),
		Border:       NamedColor("black"),
	}
}

func DefaultEnemySpec() EnemySpec {
	return EnemySpec{
		Size:     45,
		Speed:    2,
		Gravity:  0.3,
		Basic:    NamedColor("purple"),
		Advanced: NamedColor("yellow"),
	}
}

func DefaultBossSpec() BossSpec {
	return BossSpec{
		Size:            100,
		Health:          15,
		Gravity:         0.3,
		MinX:            450,
		Color:           NamedColor("darkred"),
		EnragePercent:   30,
		ArriveTolerance: 5,
		PatrolFrames:    120,
		HopFrames:       60,
		HopSpeed:        -9,
		LeapSpeed:       -11,
		LeapCooldown:    30,
		PatrolSpeed:     2,
		HopMove:         3,
		LeapMove:        6,
		Bullets: BulletSpec{
			Count:    8,
			Speed:    5,
			Radius:   10,
			Cooldown: 60,
			Color:    NamedColor("red"),
		},
	}
}

func DefaultHintsSpec() HintsSpec {
	return HintsSpec{Hints: []HintSpec{
		{Text: "Press → to move right", Action: "right", Done: "x > 105"},
		{Text: "Press ← to move left", Action: "left", Done: "x < 95"},
		{Text: "Press Space to jump", Action: "jump", Done: "jumps == 1"},
		{Text: "Press Space again for a double jump", Action: "doubleJump", Done: "jumps == 2"},
	}}
}

func DefaultMenuSpec() MenuSpec {
	return MenuSpec{
		Options:        []string{"Resume", "Restart Level", "Restart Game", "Sound Effects", "Story", "How to Play"},
		StoryLines:     6,
		HowToPlayLines: 10,
		VolumeStep:     0.1,
	}
}
