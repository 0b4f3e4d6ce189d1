package archetypes

import (
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	FloatingPlatform = newArchetype(
		tags.FloatingPlatform,
		components.Object,
		components.Tween,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Actor,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
		components.Intent,
		components.AttackCooldown,
		components.MeleeRay,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Actor,
		components.Object,
		components.Health,
		components.Animation,
		components.Physics,
		components.State,
		components.Intent,
		components.AttackCooldown,
		components.MeleeRay,
		components.Senses,
		components.Brain,
		components.Patrol,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
