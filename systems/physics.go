package systems

import (
	"math"

	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates gravity and friction. Falls get heavier the
// longer they last: g(t) = base + (max-base)*(1 - e^(-k*t)), with the
// ramp timer resetting the moment the actor stops descending.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.TickDelta

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		// Ground friction when nothing is driving horizontal movement.
		if !hasMoveIntent(e) && physics.OnGround != nil {
			step := cfg.Physics.Friction * dt
			if physics.SpeedX > step {
				physics.SpeedX -= step
			} else if physics.SpeedX < -step {
				physics.SpeedX += step
			} else {
				physics.SpeedX = 0
			}
		}

		// Gravity with the fall ramp.
		g := cfg.Physics.Gravity
		if physics.SpeedY > 0 {
			physics.FallTime += dt
			ramp := 1 - math.Exp(-cfg.Physics.FallGravityK*physics.FallTime)
			g += (cfg.Physics.MaxFallGravity - cfg.Physics.Gravity) * ramp
		} else {
			physics.FallTime = 0
		}
		physics.SpeedY += g * dt

		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}

		// Track last safe ground position for the player.
		if e.HasComponent(components.Player) && physics.OnGround != nil {
			obj := components.Object.Get(e)
			if obj.Check(0, 0, tags.ResolvDeadZone) == nil {
				player := components.Player.Get(e)
				player.LastSafeX = obj.X
				player.LastSafeY = obj.Y
			}
		}
	})
}

// hasMoveIntent reports whether the actor is actively steering; dead or
// stunned actors coast on friction alone.
func hasMoveIntent(e *donburi.Entry) bool {
	if !e.HasComponent(components.Intent) {
		return false
	}
	if e.HasComponent(components.Stun) || e.HasComponent(components.Death) {
		return false
	}
	intent := components.Intent.Get(e)
	return math.Abs(intent.Axis) >= cfg.Player.AxisThreshold
}
