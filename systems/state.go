package systems

import (
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates mirrors StateData.Locomotion onto the per-state marker
// components. Runs after every system that can change locomotion, so
// filters on the markers see this tick's state.
func UpdateStates(ecs *ecs.ECS) {
	components.State.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		if state.Locomotion == state.Previous && e.HasComponent(components.LocomotionTag(state.Locomotion)) {
			return
		}

		removeAllStateTags(e)
		switch state.Locomotion {
		case cfg.LocWalking:
			donburi.Add(e, components.Walking, &components.WalkingState{})
		case cfg.LocRunning:
			donburi.Add(e, components.Running, &components.RunningState{})
		case cfg.LocJumping:
			donburi.Add(e, components.Jumping, &components.JumpingState{})
		case cfg.LocSprintJumping:
			donburi.Add(e, components.SprintJumping, &components.SprintJumpingState{})
		case cfg.LocFalling:
			donburi.Add(e, components.Falling, &components.FallingState{})
		default:
			donburi.Add(e, components.Idle, &components.IdleState{})
		}

		state.Previous = state.Locomotion
	})
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.WalkingState](e, components.Walking)
	donburi.Remove[components.RunningState](e, components.Running)
	donburi.Remove[components.JumpingState](e, components.Jumping)
	donburi.Remove[components.SprintJumpingState](e, components.SprintJumping)
	donburi.Remove[components.FallingState](e, components.Falling)
}
