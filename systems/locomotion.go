package systems

import (
	"math"

	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion runs the locomotion state machine for every actor.
// Each actor holds exactly one locomotion state; transitions are driven
// by intent, ground contact and vertical velocity. Side effects that
// must fire once per transition (the jump impulse) run inside the
// transition itself, not on a per-tick re-check.
func UpdateLocomotion(ecs *ecs.ECS) {
	components.Intent.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}

		intent := components.Intent.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)

		// Stun suppresses intent but not gravity driven transitions:
		// a knocked back actor still leaves the ground and lands.
		stunned := e.HasComponent(components.Stun)

		grounded := physics.OnGround != nil
		moving := math.Abs(intent.Axis) >= cfg.Player.AxisThreshold && !stunned

		switch state.Locomotion {
		case cfg.LocIdle, cfg.LocWalking, cfg.LocRunning:
			if !grounded {
				transitionLocomotion(e, state, physics, cfg.LocFalling)
				break
			}
			if intent.JumpPressed && !stunned {
				next := cfg.LocJumping
				if intent.Sprint && moving {
					next = cfg.LocSprintJumping
				}
				transitionLocomotion(e, state, physics, next)
				break
			}
			transitionLocomotion(e, state, physics, groundedStateFor(intent, physics, state.Locomotion, stunned))

		case cfg.LocJumping, cfg.LocSprintJumping:
			if landed(physics) {
				transitionLocomotion(e, state, physics, groundedStateFor(intent, physics, state.Locomotion, stunned))
				break
			}
			// Apex: once vertical velocity stops being upward.
			if physics.SpeedY >= 0 {
				transitionLocomotion(e, state, physics, cfg.LocFalling)
			}

		case cfg.LocFalling:
			if landed(physics) {
				transitionLocomotion(e, state, physics, groundedStateFor(intent, physics, state.Locomotion, stunned))
			}
		}

		// Horizontal control runs in every state, attacks included, so
		// a swing never freezes movement.
		if !stunned {
			applyHorizontalControl(intent, physics)
		}

		updateFacing(e, intent, physics)
	})
}

// groundedStateFor selects Idle, Walking or Running from the intent at
// this instant. The stop check carries hysteresis: with the stick
// released the actor stays in its moving state until it has actually
// slowed down, unless the input opposes the velocity outright.
func groundedStateFor(intent *components.IntentData, physics *components.PhysicsData, current cfg.LocomotionID, stunned bool) cfg.LocomotionID {
	if stunned {
		return cfg.LocIdle
	}
	if math.Abs(intent.Axis) >= cfg.Player.AxisThreshold {
		if intent.Sprint {
			return cfg.LocRunning
		}
		return cfg.LocWalking
	}

	if math.Abs(physics.SpeedX) < cfg.Player.StopSpeed || intent.Axis*physics.SpeedX < 0 {
		return cfg.LocIdle
	}

	// Still sliding: keep the moving state to avoid flicker.
	if current == cfg.LocWalking || current == cfg.LocRunning {
		return current
	}
	return cfg.LocIdle
}

// landed reports ground contact, tolerating a small residual upward
// velocity so shallow bounces still count.
func landed(physics *components.PhysicsData) bool {
	return physics.OnGround != nil && physics.SpeedY >= -cfg.Physics.LandingTolerance
}

// transitionLocomotion moves the actor to a new locomotion state and
// runs the state's enter hook. Re-entering the current state is a no-op
// so enter effects fire exactly once.
func transitionLocomotion(e *donburi.Entry, state *components.StateData, physics *components.PhysicsData, next cfg.LocomotionID) {
	if state.Locomotion == next {
		return
	}

	state.Previous = state.Locomotion
	state.Locomotion = next
	state.StateTimer = 0

	switch next {
	case cfg.LocJumping:
		physics.SpeedY = -cfg.Player.JumpSpeed
	case cfg.LocSprintJumping:
		physics.SpeedY = -(cfg.Player.JumpSpeed + cfg.Player.SprintJumpBonus)
	}

	// A grounded swing does not survive going airborne; an air-to-air
	// change (jump apex) or landing lets the swing follow its variant.
	if e.HasComponent(components.Attack) {
		wasAirborne := state.Previous == cfg.LocJumping || state.Previous == cfg.LocSprintJumping || state.Previous == cfg.LocFalling
		nowAirborne := next == cfg.LocJumping || next == cfg.LocSprintJumping || next == cfg.LocFalling
		if nowAirborne && !wasAirborne {
			cancelSwing(e)
		} else {
			attack := components.Attack.Get(e)
			attack.Kind = cfg.AttackKindFor(next)
		}
	}
}

// applyHorizontalControl accelerates toward the intended horizontal
// velocity at the actor's acceleration, in pixels per second.
func applyHorizontalControl(intent *components.IntentData, physics *components.PhysicsData) {
	if math.Abs(intent.Axis) < cfg.Player.AxisThreshold {
		return
	}

	target := intent.Axis * physics.WalkSpeed
	if intent.Sprint {
		target = intent.Axis * physics.RunSpeed
	}

	step := physics.Accel * cfg.TickDelta
	diff := target - physics.SpeedX
	if math.Abs(diff) <= step {
		physics.SpeedX = target
	} else if diff > 0 {
		physics.SpeedX += step
	} else {
		physics.SpeedX -= step
	}
}

// updateFacing derives facing from the held target when one is sensed,
// from horizontal velocity otherwise.
func updateFacing(e *donburi.Entry, intent *components.IntentData, physics *components.PhysicsData) {
	actor := components.Actor.Get(e)
	if e.HasComponent(components.Senses) {
		if senses := components.Senses.Get(e); senses.HasTarget {
			if senses.Dx != 0 {
				actor.Facing = math.Copysign(1, senses.Dx)
			}
			return
		}
	}
	if physics.SpeedX > cfg.Player.StopSpeed {
		actor.Facing = cfg.DirectionRight
	} else if physics.SpeedX < -cfg.Player.StopSpeed {
		actor.Facing = cfg.DirectionLeft
	} else if math.Abs(intent.Axis) >= cfg.Player.AxisThreshold {
		if intent.Axis > 0 {
			actor.Facing = cfg.DirectionRight
		} else {
			actor.Facing = cfg.DirectionLeft
		}
	}
}
