package systems

import (
	"math"

	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePerception rebuilds every enemy's perception snapshot. A target
// is held while the player is alive, within the aggro radius and not too
// far above or below; everything downstream reads the snapshot only.
func UpdatePerception(ecs *ecs.ECS) {
	playerX, playerY, playerAlive := playerPosition(ecs)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		senses := components.Senses.Get(e)
		*senses = components.SensesData{}

		if !playerAlive {
			return
		}

		obj := components.Object.Get(e)
		cx := obj.X + obj.W/2
		cy := obj.Y + obj.H/2

		dx := playerX - cx
		if math.Abs(dx) > cfg.Enemy.AggroRange ||
			math.Abs(playerY-cy) > cfg.Enemy.MaxVerticalAggro {
			return
		}

		senses.HasTarget = true
		senses.TargetX = playerX
		senses.TargetY = playerY
		senses.Dx = dx
		senses.Dist = math.Abs(dx)
	})
}

// playerPosition returns the center of the living player, if any.
func playerPosition(ecs *ecs.ECS) (x, y float64, alive bool) {
	player, ok := tags.Player.First(ecs.World)
	if !ok || player.HasComponent(components.Death) {
		return 0, 0, false
	}
	obj := components.Object.Get(player)
	return obj.X + obj.W/2, obj.Y + obj.H/2, true
}
