package factory

import (
	"github.com/thomasza92/redeemer/archetypes"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpawner starts the periodic enemy spawner on its first cycle.
func CreateSpawner(ecs *ecs.ECS) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)
	components.Spawner.SetValue(spawner, components.SpawnerData{
		Timer: components.NewTimer(cfg.Spawner.Interval),
	})
	return spawner
}
