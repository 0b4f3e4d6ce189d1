package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/thomasza92/redeemer/archetypes"
	"github.com/thomasza92/redeemer/components"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a one-way platform: solid from above only.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return platform
}

// CreateFloatingPlatform spawns a one-way platform that travels up and
// back down on a looping tween.
func CreateFloatingPlatform(ecs *ecs.ECS, x, y, w, h, travel, period float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	// The platform moves along a *gween.Sequence of tweens, up then back.
	tw := gween.NewSequence(
		gween.New(float32(y), float32(y-travel), float32(period), ease.Linear),
		gween.New(float32(y-travel), float32(y), float32(period), ease.Linear),
	)
	components.Tween.Set(platform, tw)

	return platform
}
