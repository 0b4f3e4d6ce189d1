package components

import (
	"github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
)

// StateData holds the single active locomotion state of an actor.
// StateTimer counts seconds spent in the current state.
type StateData struct {
	Locomotion config.LocomotionID
	Previous   config.LocomotionID
	StateTimer float64
}

var State = donburi.NewComponentType[StateData]()

// Marker components mirroring StateData.Locomotion, kept in sync by the
// state sync pass so systems can filter on a locomotion state without
// reading StateData. At most one is present per living actor.
type IdleState struct{}
type WalkingState struct{}
type RunningState struct{}
type JumpingState struct{}
type SprintJumpingState struct{}
type FallingState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Walking = donburi.NewComponentType[WalkingState]()
var Running = donburi.NewComponentType[RunningState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var SprintJumping = donburi.NewComponentType[SprintJumpingState]()
var Falling = donburi.NewComponentType[FallingState]()

// LocomotionTag returns the marker component for a locomotion state.
func LocomotionTag(l config.LocomotionID) donburi.IComponentType {
	switch l {
	case config.LocWalking:
		return Walking
	case config.LocRunning:
		return Running
	case config.LocJumping:
		return Jumping
	case config.LocSprintJumping:
		return SprintJumping
	case config.LocFalling:
		return Falling
	}
	return Idle
}
