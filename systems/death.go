package systems

import (
	"github.com/thomasza92/redeemer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes actors whose death sequence has played out. The
// entity and its collision objects leave the world together so no stale
// object keeps colliding. The world scene notices the player entity
// disappearing and switches to the game over screen.
func UpdateDeaths(ecs *ecs.ECS) {
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if !death.Timer.Finished() {
			return
		}

		removeFromSpace(ecs, e)
		ecs.World.Remove(e.Entity())
	})
}

func removeFromSpace(ecs *ecs.ECS, e *donburi.Entry) {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	if e.HasComponent(components.Object) {
		if obj := components.Object.Get(e); obj.Object != nil {
			space.Remove(obj.Object)
		}
	}
	if e.HasComponent(components.MeleeRay) {
		if m := components.MeleeRay.Get(e); m.Ray != nil {
			space.Remove(m.Ray)
		}
	}
}

// PlayerAlive reports whether a living player entity exists.
func PlayerAlive(ecs *ecs.ECS) bool {
	alive := false
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			alive = true
		}
	})
	return alive
}

// PlayerGone reports whether the player entity has been removed
// entirely, which ends the run.
func PlayerGone(ecs *ecs.ECS) bool {
	_, ok := components.Player.First(ecs.World)
	return !ok
}
