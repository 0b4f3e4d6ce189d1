package factory

import (
	"github.com/thomasza92/redeemer/archetypes"
	"github.com/thomasza92/redeemer/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
