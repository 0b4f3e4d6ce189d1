package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomasza92/redeemer/archetypes"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func setupCameraWorld(t *testing.T) (*ecs.ECS, *donburi.Entry, *components.CameraData) {
	t.Helper()
	e := newTestECS()
	levelEntry := archetypes.Level.Spawn(e)
	spawnTestLevel(levelEntry, testLevel())
	factory.CreateCamera(e)
	player := factory.CreatePlayer(e, 800, 240)

	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	return e, player, components.Camera.Get(cameraEntry)
}

func TestCameraFollowsPlayer(t *testing.T) {
	e, player, camera := setupCameraWorld(t)
	camera.Position.X = 400
	camera.Position.Y = 240

	for i := 0; i < 200; i++ {
		UpdateCamera(e)
	}

	obj := components.Object.Get(player)
	assert.InDelta(t, obj.X, camera.Position.X, 2.0)
	assert.InDelta(t, obj.Y, camera.Position.Y, 2.0)
}

func TestCameraClampsToLevelBounds(t *testing.T) {
	e, player, camera := setupCameraWorld(t)

	// Park the player in the top-left corner; the camera stops at the
	// half-screen margin instead of showing past the level edge.
	obj := components.Object.Get(player)
	obj.X, obj.Y = 0, 0

	for i := 0; i < 300; i++ {
		UpdateCamera(e)
	}

	assert.InDelta(t, float64(cfg.C.Width)/2, camera.Position.X, 2.0)
	assert.InDelta(t, float64(cfg.C.Height)/2, camera.Position.Y, 2.0)
}

func TestCameraLooksAheadOfMovement(t *testing.T) {
	e, player, camera := setupCameraWorld(t)
	physics := components.Physics.Get(player)
	actor := components.Actor.Get(player)

	physics.SpeedX = 200
	actor.Facing = cfg.DirectionRight
	for i := 0; i < 500; i++ {
		UpdateCamera(e)
	}
	assert.InDelta(t, cfg.Camera.LookAheadDistanceX, camera.LookAheadX, 2.0)

	// Standing still freezes the offset rather than snapping back.
	physics.SpeedX = 0
	before := camera.LookAheadX
	UpdateCamera(e)
	assert.Equal(t, before, camera.LookAheadX)
}
