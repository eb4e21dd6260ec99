package config

import (
	_ "embed"
)

//go:embed defaults/trex.yaml
var defaultTrexYAML []byte

// DefaultTrexConfig returns the default runner configuration.
// It mirrors defaults/trex.yaml and is used when the embedded file cannot be parsed.
func DefaultTrexConfig() TrexConfig {
	return TrexConfig{
		World: TrexWorld{
			SpawnX:     700,
			RecycleX:   -700,
			ViewLeft:   -640,
			ViewRight:  640,
			ViewBottom: -240,
			ViewTop:    280,
		},
		Player: TrexPlayer{
			X:    -400,
			Y:    0,
			Size: 75,
		},
		Jump: TrexJump{
			HoldTicks: 30,
			Step:      6,
		},
		Obstacles: TrexObstacles{
			Short: ObstacleKindConfig{
				Count: 2, Y: 0, Size: 75, Speed: 360,
				GraceMin: 20, GraceMax: 120,
			},
			Long: ObstacleKindConfig{
				Count: 1, Y: 0, Size: 75, Speed: 360,
				GraceMin: 60, GraceMax: 180,
			},
			Flying: ObstacleKindConfig{
				Count: 1, Y: 110, Size: 75, Speed: 480,
				GraceMin: 120, GraceMax: 300,
			},
		},
		Collision: TrexCollision{
			Policy: CollisionAll,
		},
		Clock: TrexClock{
			MaxDelta: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTrexYAML
}
