package systems

import (
	"math"

	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemyActions translates each enemy's chosen behavior into the
// same intent shape the player's input produces, so locomotion and
// attacks treat both alike. Stunned and dying enemies emit no intent.
func UpdateEnemyActions(ecs *ecs.ECS) {
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		intent := components.Intent.Get(e)
		*intent = components.IntentData{}

		if e.HasComponent(components.Stun) || e.HasComponent(components.Death) {
			return
		}

		brain := components.Brain.Get(e)
		switch brain.Current {
		case components.BehaviorAttack:
			actAttack(e, intent)
		case components.BehaviorChase:
			actChase(e, intent)
		default:
			actPatrol(e, intent)
		}
	})
}

// actPatrol walks back and forth inside the patrol band, turning around
// near either bound.
func actPatrol(e *donburi.Entry, intent *components.IntentData) {
	patrol := components.Patrol.Get(e)
	obj := components.Object.Get(e)
	cx := obj.X + obj.W/2

	if patrol.Dir == 0 {
		patrol.Dir = 1
	}
	if patrol.Dir > 0 && cx >= patrol.Right-cfg.Enemy.TurnTolerance {
		patrol.Dir = -1
	} else if patrol.Dir < 0 && cx <= patrol.Left+cfg.Enemy.TurnTolerance {
		patrol.Dir = 1
	}

	intent.Axis = patrol.Dir
}

// actChase sprints toward the target and eases off once inside attack
// reach, so the enemy doesn't overshoot and shove the player around.
func actChase(e *donburi.Entry, intent *components.IntentData) {
	senses := components.Senses.Get(e)
	if senses.Dist <= cfg.Enemy.AttackRange {
		faceTarget(e, senses)
		return
	}

	intent.Axis = math.Copysign(1, senses.Dx)
	intent.Sprint = true
}

// actAttack stands still, faces the target and holds the attack input.
// The attack system applies the cooldown gate.
func actAttack(e *donburi.Entry, intent *components.IntentData) {
	senses := components.Senses.Get(e)
	if senses.HasTarget {
		faceTarget(e, senses)
	}
	intent.AttackPressed = true
}

// faceTarget turns the enemy without moving it. Facing normally follows
// velocity, which is useless while standing still.
func faceTarget(e *donburi.Entry, senses *components.SensesData) {
	if senses.Dx == 0 {
		return
	}
	actor := components.Actor.Get(e)
	actor.Facing = math.Copysign(1, senses.Dx)
}
