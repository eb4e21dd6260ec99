package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// presetScale returns the speed and grace-period multipliers for a preset.
func presetScale(preset DifficultyPreset) (speed, grace float64) {
	switch preset {
	case DifficultyEasy:
		return 0.8, 1.25
	case DifficultyHard:
		return 1.3, 0.75
	default:
		return 1.0, 1.0
	}
}

// ApplyTrexPreset scales obstacle speeds and grace ranges for a preset.
// Faster obstacles and shorter grace periods make gaps tighter.
func ApplyTrexPreset(cfg *TrexConfig, preset DifficultyPreset) {
	speed, grace := presetScale(preset)
	for _, k := range []*ObstacleKindConfig{&cfg.Obstacles.Short, &cfg.Obstacles.Long, &cfg.Obstacles.Flying} {
		k.Speed *= speed
		k.GraceMin = int(float64(k.GraceMin) * grace)
		k.GraceMax = int(float64(k.GraceMax) * grace)
	}
}
