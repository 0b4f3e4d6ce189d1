package factory

import (
	"github.com/thomasza92/redeemer/archetypes"
	"github.com/thomasza92/redeemer/assets"
	"github.com/thomasza92/redeemer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(ecs, 0)
}

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loader := assets.NewLevelLoader()
	levels := loader.MustLoadLevels()
	if len(levels) == 0 {
		panic("no levels found in assets/levels")
	}
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: &levels[levelIndex],
	})

	return level
}

// PopulateLevel instantiates the current level's geometry and actors
// into the world: solids, platforms, dead zones, the player, the placed
// enemies and the periodic spawner.
func PopulateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	for _, s := range level.Solids {
		CreateWall(ecs, s.X, s.Y, s.Width, s.Height)
	}
	for _, p := range level.Platforms {
		CreatePlatform(ecs, p.X, p.Y, p.Width, p.Height)
	}
	for _, fp := range level.FloatingPlatforms {
		CreateFloatingPlatform(ecs, fp.X, fp.Y, fp.Width, fp.Height, fp.Travel, fp.Period)
	}
	for _, dz := range level.DeadZones {
		CreateDeadZone(ecs, dz.X, dz.Y, dz.Width, dz.Height)
	}

	for _, es := range level.EnemySpawns {
		CreateEnemy(ecs, es.X, es.Y, es.ClassName, es.PatrolSpan)
	}
	if len(level.SpawnRegions) > 0 {
		CreateSpawner(ecs)
	}

	spawn := assets.PlayerSpawn{X: 64, Y: 64}
	if len(level.PlayerSpawns) > 0 {
		spawn = level.PlayerSpawns[0]
	}
	return CreatePlayer(ecs, spawn.X, spawn.Y)
}
