package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves every actor by its velocity and resolves the
// result against solid geometry and one-way platforms. Velocities are
// pixels per second; displacement per tick is velocity * TickDelta.
// Ground contact is recomputed from scratch each tick.
func UpdateCollisions(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if obj.Object == nil {
			return
		}

		resolveHorizontal(physics, obj.Object)
		resolveVertical(physics, obj.Object)
		obj.Update()

		// Dead zones kill outright; the impact pass turns the health
		// drop into the death sequence.
		if e.HasComponent(components.Health) && !e.HasComponent(components.Death) {
			if obj.Check(0, 0, tags.ResolvDeadZone) != nil {
				components.Health.Get(e).Current = 0
			}
		}
	})
}

func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX * cfg.TickDelta
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		// Walk up to the wall, then stop.
		object.X += check.ContactWithObject(solids[0]).X()
		physics.SpeedX = 0
		return
	}

	object.X += dx
}

func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := math.Min(physics.SpeedY*cfg.TickDelta, cfg.Physics.MaxFallSpeed*cfg.TickDelta)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		object.Y += resolveUpward(physics, check)
		return
	}

	object.Y += resolveDownward(physics, object, check, dy)
}

func resolveUpward(physics *components.PhysicsData, check *resolv.Collision) float64 {
	// Platforms are pass-through from below; only solids bonk.
	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		dy := check.ContactWithObject(solids[0]).Y()
		physics.SpeedY = 0
		return dy
	}
	return physics.SpeedY * cfg.TickDelta
}

func resolveDownward(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision, dy float64) float64 {
	if newDy, landed := tryPlatformLanding(physics, object, check); landed {
		return newDy
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		physics.OnGround = solids[0]
		physics.SpeedY = 0
		physics.IgnorePlatform = nil
		return check.ContactWithObject(solids[0]).Y()
	}

	return dy
}

// tryPlatformLanding lands on a one-way platform only when coming down
// onto its top edge.
func tryPlatformLanding(physics *components.PhysicsData, object *resolv.Object, check *resolv.Collision) (float64, bool) {
	platforms := check.ObjectsByTags(tags.ResolvPlatform)
	if len(platforms) == 0 {
		return 0, false
	}

	platform := platforms[0]
	if platform == physics.IgnorePlatform ||
		physics.SpeedY < 0 ||
		object.Bottom() >= platform.Y+4 {
		return 0, false
	}

	physics.OnGround = platform
	physics.SpeedY = 0
	physics.IgnorePlatform = nil
	return check.ContactWithObject(platform).Y(), true
}
