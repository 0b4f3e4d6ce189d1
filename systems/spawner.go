package systems

import (
	"math/rand"

	"github.com/thomasza92/redeemer/assets"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/systems/factory"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawners runs the periodic enemy spawner. Each time the timer
// elapses the spawner tries a handful of random placements inside the
// level's spawn regions; the cycle restarts whether or not a placement
// stuck. Spawning pauses while the population is at the cap.
func UpdateSpawners(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	components.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		spawner := components.Spawner.Get(e)
		if !spawner.Timer.Finished() {
			return
		}
		spawner.Timer.Reset(cfg.Spawner.Interval)

		if countAliveEnemies(ecs) >= cfg.Spawner.MaxAlive {
			return
		}
		trySpawn(ecs, level)
	})
}

func countAliveEnemies(ecs *ecs.ECS) int {
	alive := 0
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			alive++
		}
	})
	return alive
}

// trySpawn picks random points in the spawn regions until one has solid
// ground beneath it, then places an enemy just above that ground.
func trySpawn(ecs *ecs.ECS, level *assets.Level) {
	if len(level.SpawnRegions) == 0 {
		return
	}

	for attempt := 0; attempt < cfg.Spawner.MaxAttempts; attempt++ {
		region := level.SpawnRegions[rand.Intn(len(level.SpawnRegions))]

		usable := region.Width - 2*cfg.Spawner.EdgeMargin
		if usable <= 0 {
			continue
		}
		x := region.X + cfg.Spawner.EdgeMargin + rand.Float64()*usable

		groundY, ok := probeGround(level, x, region.Y)
		if !ok {
			continue
		}

		y := groundY - float64(cfg.Enemy.CollisionHeight) - cfg.Spawner.SpawnHeight
		factory.CreateEnemy(ecs, x, y, "", 0)
		return
	}
}

// probeGround finds the top of the first solid or platform straight
// below (x, fromY), within the configured probe distance.
func probeGround(level *assets.Level, x, fromY float64) (float64, bool) {
	limit := fromY + cfg.Spawner.GroundProbe
	best := limit
	found := false

	consider := func(rx, ry, rw float64) {
		if x < rx || x > rx+rw {
			return
		}
		if ry < fromY || ry > limit {
			return
		}
		if ry < best {
			best = ry
			found = true
		}
	}

	for _, s := range level.Solids {
		consider(s.X, s.Y, s.Width)
	}
	for _, p := range level.Platforms {
		consider(p.X, p.Y, p.Width)
	}

	return best, found
}
