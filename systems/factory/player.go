package factory

import (
	"strings"

	"github.com/solarlune/resolv"
	"github.com/thomasza92/redeemer/archetypes"
	"github.com/thomasza92/redeemer/assets"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	class := assets.MustLoadClass(cfg.Player.ClassFile)

	obj := resolv.NewObject(x, y, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight))
	obj.SetShape(resolv.NewRectangle(0, 0, float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		LastSafeX: x,
		LastSafeY: y,
	})
	components.Actor.SetValue(player, components.ActorData{
		Class:  class,
		Facing: cfg.DirectionRight,
	})
	components.State.SetValue(player, components.StateData{
		Locomotion: cfg.LocIdle,
		Previous:   cfg.LocIdle,
	})

	walkSpeed := class.Stats.MoveSpeed
	if walkSpeed <= 0 {
		walkSpeed = cfg.Player.WalkSpeed
	}
	components.Physics.SetValue(player, components.PhysicsData{
		WalkSpeed: walkSpeed,
		RunSpeed:  walkSpeed * cfg.Player.SprintMultiplier,
		Accel:     cfg.Player.Acceleration,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: class.Stats.MaxHealth,
		Max:     class.Stats.MaxHealth,
		Last:    class.Stats.MaxHealth,
	})

	components.MeleeRay.SetValue(player, components.MeleeRayData{
		OffsetX:      cfg.Player.MeleeOffsetX,
		OffsetY:      cfg.Player.MeleeOffsetY,
		Length:       cfg.Player.MeleeRange,
		MaxHits:      cfg.Player.MeleeMaxHits,
		Damage:       class.Stats.MeleePower,
		Solid:        true,
		OncePerSwing: true,
		TargetTag:    tags.ResolvEnemy,
		Ray:          createMeleeRay(ecs, obj),
	})

	animData := GenerateAnimations(sheetManifestFor(class.ID))
	components.Animation.Set(player, animData)

	return player
}

// createMeleeRay registers an actor's melee probe in the collision
// space. It starts parked at the owner's position; the melee system
// re-aims it every tick a swing is active.
func createMeleeRay(ecs *ecs.ECS, owner *resolv.Object) *resolv.Object {
	ray := resolv.NewObject(owner.X, owner.Y, 1, 2, tags.ResolvRay)
	ray.SetShape(resolv.NewRectangle(0, 0, 1, 2))
	addToSpace(ecs, ray)
	return ray
}

// sheetManifestFor maps a class id to its sheet manifest file name.
func sheetManifestFor(classID string) string {
	if strings.HasSuffix(classID, ".yaml") {
		return classID
	}
	return classID + ".yaml"
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
