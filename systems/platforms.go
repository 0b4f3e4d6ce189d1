package systems

import (
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFloatingPlatforms advances each floating platform along its
// tween sequence, looping it when a full cycle completes.
func UpdateFloatingPlatforms(ecs *ecs.ECS) {
	for e := range tags.FloatingPlatform.Iter(ecs.World) {
		tw := components.Tween.Get(e)
		obj := components.Object.Get(e)

		y, _, seqDone := tw.Update(cfg.TickDelta)
		obj.Y = float64(y)
		obj.Update()

		if seqDone {
			tw.Reset()
		}
	}
}
