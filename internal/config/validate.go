package config

import (
	"errors"
	"fmt"
)

// Validate reports every problem in the configuration at once.
func (c TrexConfig) Validate() error {
	var errs []error

	if c.World.SpawnX <= c.World.RecycleX {
		errs = append(errs, fmt.Errorf("world.spawn_x (%g) must be greater than world.recycle_x (%g)", c.World.SpawnX, c.World.RecycleX))
	}
	if c.World.ViewRight <= c.World.ViewLeft {
		errs = append(errs, errors.New("world.view_right must be greater than world.view_left"))
	}
	if c.World.ViewTop <= c.World.ViewBottom {
		errs = append(errs, errors.New("world.view_top must be greater than world.view_bottom"))
	}
	if c.Player.Size <= 0 {
		errs = append(errs, errors.New("player.size must be positive"))
	}
	if c.Jump.HoldTicks < 1 {
		errs = append(errs, fmt.Errorf("jump.hold_ticks must be at least 1, got %d", c.Jump.HoldTicks))
	}
	if c.Jump.Step <= 0 {
		errs = append(errs, errors.New("jump.step must be positive"))
	}

	kinds := []struct {
		name string
		cfg  ObstacleKindConfig
	}{
		{"short", c.Obstacles.Short},
		{"long", c.Obstacles.Long},
		{"flying", c.Obstacles.Flying},
	}
	for _, k := range kinds {
		if err := k.cfg.validate(); err != nil {
			errs = append(errs, fmt.Errorf("obstacles.%s: %w", k.name, err))
		}
	}

	switch c.Collision.Policy {
	case CollisionAll, CollisionFirstPerKind:
	default:
		errs = append(errs, fmt.Errorf("collision.policy %q is not one of %q, %q", c.Collision.Policy, CollisionAll, CollisionFirstPerKind))
	}

	if c.Clock.MaxDelta <= 0 {
		errs = append(errs, errors.New("clock.max_delta must be positive"))
	}

	return errors.Join(errs...)
}

func (k ObstacleKindConfig) validate() error {
	var errs []error
	if k.Count < 0 {
		errs = append(errs, errors.New("count must not be negative"))
	}
	if k.Size <= 0 {
		errs = append(errs, errors.New("size must be positive"))
	}
	if k.Speed <= 0 {
		errs = append(errs, errors.New("speed must be positive"))
	}
	if k.GraceMin < 0 {
		errs = append(errs, errors.New("grace_min must not be negative"))
	}
	if k.GraceMax < k.GraceMin {
		errs = append(errs, fmt.Errorf("grace_max (%d) must not be less than grace_min (%d)", k.GraceMax, k.GraceMin))
	}
	return errors.Join(errs...)
}
