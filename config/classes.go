package config

import (
	"fmt"
	"math"
)

// Attributes are the rollup stats a class starts with.
type Attributes struct {
	Might   int `yaml:"might"`
	Agility int `yaml:"agility"`
	Focus   int `yaml:"focus"`
	Grit    int `yaml:"grit"`
}

// BaseStats are the combat-relevant numbers attached to an actor at spawn.
type BaseStats struct {
	MaxHealth       float64 `yaml:"max_health"`
	Defense         float64 `yaml:"defense"`
	KnockbackResist float64 `yaml:"knockback_resist"`
	MeleePower      float64 `yaml:"melee_power"`
	Knockback       float64 `yaml:"knockback"`
	MoveSpeed       float64 `yaml:"move_speed"`
	CritChance      float64 `yaml:"crit_chance"`
	CritMultiplier  float64 `yaml:"crit_multiplier"`
}

// Class is a YAML class manifest: identity plus the stats an actor of
// that class spawns with.
type Class struct {
	ID          string     `yaml:"id"`
	DisplayName string     `yaml:"display_name"`
	Tags        []string   `yaml:"tags"`
	Attributes  Attributes `yaml:"attributes"`
	Stats       BaseStats  `yaml:"base_stats"`
}

// Validate checks a loaded class and clamps fractional stats into their
// legal ranges. Returns an error for manifests no clamp can repair.
func (c *Class) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("class manifest missing id")
	}
	if c.Stats.MaxHealth <= 0 || math.IsNaN(c.Stats.MaxHealth) {
		return fmt.Errorf("class %q: max_health must be positive, got %v", c.ID, c.Stats.MaxHealth)
	}
	if c.Stats.MeleePower < 0 {
		return fmt.Errorf("class %q: melee_power must be non-negative, got %v", c.ID, c.Stats.MeleePower)
	}
	c.Stats.Defense = clampFraction(c.Stats.Defense, Combat.MaxDefense)
	c.Stats.KnockbackResist = clampFraction(c.Stats.KnockbackResist, Combat.MaxKnockbackResist)
	return nil
}

func clampFraction(v, max float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
