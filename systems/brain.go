package systems

import (
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// behaviorThreshold is the minimum score a behavior needs to win.
const behaviorThreshold = 0.5

// UpdateBrains scores every enemy's behavior candidates and picks the
// winner. Ties go to the higher-priority behavior: Attack beats Chase
// beats Patrol. While an enemy can act, Patrol always scores above
// threshold; stun and death zero every score.
func UpdateBrains(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		brain := components.Brain.Get(e)
		senses := components.Senses.Get(e)

		// Stunned and dying enemies want nothing.
		if e.HasComponent(components.Stun) || e.HasComponent(components.Death) {
			brain.Scores = [3]float64{}
			brain.Current = components.BehaviorPatrol
			return
		}

		brain.Scores[components.BehaviorPatrol] = 1.0
		brain.Scores[components.BehaviorChase] = scoreChase(senses)
		brain.Scores[components.BehaviorAttack] = scoreAttack(e, senses)

		brain.Current = components.BehaviorPatrol
		best := brain.Scores[components.BehaviorPatrol]
		for _, b := range []components.BehaviorID{components.BehaviorChase, components.BehaviorAttack} {
			if s := brain.Scores[b]; s >= behaviorThreshold && s >= best {
				brain.Current = b
				best = s
			}
		}
	})
}

func scoreChase(senses *components.SensesData) float64 {
	if !senses.HasTarget {
		return 0
	}
	return 2.0
}

// scoreAttack keeps the attack behavior pinned while a swing is in
// flight so chase can't steer the enemy away mid-swing.
func scoreAttack(e *donburi.Entry, senses *components.SensesData) float64 {
	if e.HasComponent(components.Attack) {
		return 4.0
	}
	if !senses.HasTarget {
		return 0
	}
	if senses.Dist > cfg.Enemy.AttackRange+cfg.Enemy.AttackBand {
		return 0
	}
	cooldown := components.AttackCooldown.Get(e)
	if !cooldown.Timer.Finished() {
		return 0
	}
	return 3.0
}
