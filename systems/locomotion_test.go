package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/systems/factory"
)

func TestIdleWalkRunTransitions(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	setIntent(player, components.IntentData{Axis: 1})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocWalking, locomotionOf(player))

	setIntent(player, components.IntentData{Axis: 1, Sprint: true})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocRunning, locomotionOf(player))

	// Axis below the threshold counts as no movement intent.
	setIntent(player, components.IntentData{Axis: 0.3})
	components.Physics.Get(player).SpeedX = 0
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocIdle, locomotionOf(player))
}

func TestStopHysteresisWhileSliding(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	setIntent(player, components.IntentData{Axis: 1})
	UpdateLocomotion(e)
	require.Equal(t, cfg.LocWalking, locomotionOf(player))

	// Input released but the actor is still sliding: stay in Walking.
	setIntent(player, components.IntentData{})
	components.Physics.Get(player).SpeedX = 120
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocWalking, locomotionOf(player))

	// Once actually slow, go Idle.
	components.Physics.Get(player).SpeedX = cfg.Player.StopSpeed / 2
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocIdle, locomotionOf(player))
}

func TestStopAgainstOpposingInput(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	setIntent(player, components.IntentData{Axis: 1})
	UpdateLocomotion(e)
	require.Equal(t, cfg.LocWalking, locomotionOf(player))

	// Input opposing the velocity drops straight to Idle even while
	// still moving fast; sub-threshold axis still steers the check.
	setIntent(player, components.IntentData{Axis: -0.3})
	components.Physics.Get(player).SpeedX = 150
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocIdle, locomotionOf(player))
}

func TestJumpImpulseAppliedOncePerTransition(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)
	physics := components.Physics.Get(player)

	setIntent(player, components.IntentData{JumpPressed: true})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocJumping, locomotionOf(player))
	assert.Equal(t, -cfg.Player.JumpSpeed, physics.SpeedY)

	// Holding jump in the air must not re-apply the impulse.
	airborne(player)
	physics.SpeedY = -100
	setIntent(player, components.IntentData{JumpPressed: true})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocJumping, locomotionOf(player))
	assert.Equal(t, -100.0, physics.SpeedY)
}

func TestSprintJumpGetsBonus(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)
	physics := components.Physics.Get(player)
	physics.SpeedX = 200

	setIntent(player, components.IntentData{Axis: 1, Sprint: true, JumpPressed: true})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocSprintJumping, locomotionOf(player))
	assert.Equal(t, -(cfg.Player.JumpSpeed + cfg.Player.SprintJumpBonus), physics.SpeedY)
}

func TestJumpWithoutMovementIsPlainJump(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	// Sprint held but no horizontal intent: a standing jump.
	setIntent(player, components.IntentData{Sprint: true, JumpPressed: true})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocJumping, locomotionOf(player))
}

func TestApexSwitchesToFalling(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	setIntent(player, components.IntentData{JumpPressed: true})
	UpdateLocomotion(e)
	require.Equal(t, cfg.LocJumping, locomotionOf(player))

	airborne(player)
	physics := components.Physics.Get(player)

	// Still rising: stays jumping.
	physics.SpeedY = -50
	setIntent(player, components.IntentData{})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocJumping, locomotionOf(player))

	// Vertical velocity no longer upward: falling.
	physics.SpeedY = 0
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocFalling, locomotionOf(player))
}

func TestWalkingOffLedgeFalls(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	setIntent(player, components.IntentData{Axis: 1})
	UpdateLocomotion(e)
	require.Equal(t, cfg.LocWalking, locomotionOf(player))

	airborne(player)
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocFalling, locomotionOf(player))
}

func TestLandingToleratesShallowBounce(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	components.State.Get(player).Locomotion = cfg.LocFalling
	obj := ground(player)
	physics := components.Physics.Get(player)

	// Residual upward velocity within tolerance still lands.
	physics.OnGround = obj
	physics.SpeedY = -cfg.Physics.LandingTolerance / 2
	setIntent(player, components.IntentData{})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocIdle, locomotionOf(player))

	// A stronger bounce does not.
	components.State.Get(player).Locomotion = cfg.LocFalling
	physics.SpeedY = -cfg.Physics.LandingTolerance * 2
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocFalling, locomotionOf(player))
}

func TestStunSuppressesIntent(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)
	applyStun(player, 0, 0, 0)

	physics := components.Physics.Get(player)
	physics.SpeedX = 0

	setIntent(player, components.IntentData{Axis: 1, JumpPressed: true})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocIdle, locomotionOf(player))
	assert.Equal(t, 0.0, physics.SpeedX)
}

func TestStunStillFallsAndLands(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)
	applyStun(player, 0, 0, 0)

	airborne(player)
	setIntent(player, components.IntentData{})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocFalling, locomotionOf(player))

	ground(player)
	UpdateLocomotion(e)
	assert.Equal(t, cfg.LocIdle, locomotionOf(player))
}

func TestHorizontalControlAccelerates(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)
	physics := components.Physics.Get(player)

	setIntent(player, components.IntentData{Axis: 1})
	UpdateLocomotion(e)
	assert.Equal(t, physics.Accel*cfg.TickDelta, physics.SpeedX)

	// Velocity converges to the walk speed, never past it.
	for i := 0; i < 600; i++ {
		UpdateLocomotion(e)
	}
	assert.InDelta(t, physics.WalkSpeed, physics.SpeedX, 1e-9)

	setIntent(player, components.IntentData{Axis: 1, Sprint: true})
	for i := 0; i < 600; i++ {
		UpdateLocomotion(e)
	}
	assert.InDelta(t, physics.RunSpeed, physics.SpeedX, 1e-9)
}

func TestFacingFollowsVelocity(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)
	actor := components.Actor.Get(player)
	physics := components.Physics.Get(player)

	setIntent(player, components.IntentData{Axis: -1})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.DirectionLeft, actor.Facing)

	// Facing holds through a stop.
	setIntent(player, components.IntentData{})
	physics.SpeedX = 0
	UpdateLocomotion(e)
	assert.Equal(t, cfg.DirectionLeft, actor.Facing)

	setIntent(player, components.IntentData{Axis: 1})
	UpdateLocomotion(e)
	assert.Equal(t, cfg.DirectionRight, actor.Facing)
}

func TestStateMarkersStayInSync(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	UpdateStates(e)
	assert.True(t, player.HasComponent(components.Idle))

	setIntent(player, components.IntentData{Axis: 1})
	UpdateLocomotion(e)
	UpdateStates(e)

	assert.True(t, player.HasComponent(components.Walking))
	for _, marker := range []struct {
		name string
		has  bool
	}{
		{"idle", player.HasComponent(components.Idle)},
		{"running", player.HasComponent(components.Running)},
		{"jumping", player.HasComponent(components.Jumping)},
		{"sprintjumping", player.HasComponent(components.SprintJumping)},
		{"falling", player.HasComponent(components.Falling)},
	} {
		assert.False(t, marker.has, marker.name)
	}
}

func TestAggroFacingBeatsSlideVelocity(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 300, 100, "", 0)
	ground(enemy)

	UpdatePerception(e)
	require.True(t, components.Senses.Get(enemy).HasTarget)

	// Shoved past the target, still sliding away from it.
	components.Physics.Get(enemy).SpeedX = 150
	setIntent(enemy, components.IntentData{})
	UpdateLocomotion(e)

	assert.Equal(t, cfg.DirectionLeft, components.Actor.Get(enemy).Facing)
}
