package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData holds an actor's velocity in pixels per second. Y grows
// downward. FallTime accumulates while descending and drives the
// ramping fall gravity; it resets the moment the actor stops falling.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64

	WalkSpeed float64 // horizontal target when moving, from class move_speed
	RunSpeed  float64 // horizontal target when sprinting
	Accel     float64 // pixels/second^2 toward the target speed

	FallTime float64

	OnGround       *resolv.Object
	IgnorePlatform *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
