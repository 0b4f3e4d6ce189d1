package factory

import (
	"github.com/solarlune/resolv"
	"github.com/thomasza92/redeemer/archetypes"
	"github.com/thomasza92/redeemer/assets"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the given class at (x, y). patrolSpan
// is the half-width of its patrol band; 0 uses the configured default.
func CreateEnemy(ecs *ecs.ECS, x, y float64, className string, patrolSpan float64) *donburi.Entry {
	if className == "" {
		className = "footman"
	}
	if patrolSpan <= 0 {
		patrolSpan = cfg.Enemy.PatrolSpan
	}
	class := assets.MustLoadClass(sheetManifestFor(className))

	enemy := archetypes.Enemy.Spawn(ecs)

	obj := resolv.NewObject(x, y, float64(cfg.Enemy.CollisionWidth), float64(cfg.Enemy.CollisionHeight))
	obj.SetShape(resolv.NewRectangle(0, 0, float64(cfg.Enemy.CollisionWidth), float64(cfg.Enemy.CollisionHeight)))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{
		SpawnX: x,
		SpawnY: y,
	})
	components.Actor.SetValue(enemy, components.ActorData{
		Class:  class,
		Facing: cfg.DirectionLeft,
	})
	components.State.SetValue(enemy, components.StateData{
		Locomotion: cfg.LocIdle,
		Previous:   cfg.LocIdle,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		WalkSpeed: cfg.Enemy.WalkSpeed,
		RunSpeed:  cfg.Enemy.RunSpeed,
		Accel:     cfg.Enemy.Acceleration,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: class.Stats.MaxHealth,
		Max:     class.Stats.MaxHealth,
		Last:    class.Stats.MaxHealth,
	})
	components.Patrol.SetValue(enemy, components.PatrolData{
		Left:  x - patrolSpan,
		Right: x + patrolSpan,
		Dir:   cfg.DirectionLeft,
	})

	damage := class.Stats.MeleePower
	if damage <= 0 {
		damage = cfg.Enemy.MeleeDamage
	}
	components.MeleeRay.SetValue(enemy, components.MeleeRayData{
		OffsetX:      cfg.Enemy.MeleeOffsetX,
		OffsetY:      cfg.Enemy.MeleeOffsetY,
		Length:       cfg.Enemy.AttackRange,
		MaxHits:      cfg.Enemy.MeleeMaxHits,
		Damage:       damage,
		OncePerSwing: true,
		TargetTag:    tags.ResolvPlayer,
		Ray:          createMeleeRay(ecs, obj),
	})

	animData := GenerateAnimations(sheetManifestFor(class.ID))
	components.Animation.Set(enemy, animData)

	return enemy
}
