package systems

import (
	"math"

	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RegisterCombatHandlers wires the hit event pipeline. The melee hit
// subscriber is the only code that mutates health from combat.
func RegisterCombatHandlers(w donburi.World) {
	components.MeleeHitEvent.Subscribe(w, resolveMeleeHit)
}

// ProcessCombatEvents delivers queued hit events to their subscribers.
// Runs after the melee pass and before the impact pass so damage lands
// in the same tick it was scored.
func ProcessCombatEvents(ecs *ecs.ECS) {
	components.MeleeHitEvent.ProcessEvents(ecs.World)
}

// resolveMeleeHit applies defense-mitigated damage to the hit target.
func resolveMeleeHit(w donburi.World, hit components.MeleeHit) {
	if !w.Valid(hit.Target) {
		return
	}
	target := w.Entry(hit.Target)
	if !target.HasComponent(components.Health) || target.HasComponent(components.Death) {
		return
	}

	defense := 0.0
	if target.HasComponent(components.Actor) {
		if class := components.Actor.Get(target).Class; class != nil {
			defense = class.Stats.Defense
		}
	}

	health := components.Health.Get(target)
	health.Current -= MitigateDamage(hit.Damage, defense)
	if health.Current < 0 {
		health.Current = 0
	}

	if target.HasComponent(components.LastHit) {
		*components.LastHit.Get(target) = components.LastHitData{
			AttackerX: hit.AttackerX,
			Knockback: hit.Knockback,
		}
	} else {
		donburi.Add(target, components.LastHit, &components.LastHitData{
			AttackerX: hit.AttackerX,
			Knockback: hit.Knockback,
		})
	}
}

// MitigateDamage reduces raw damage by the target's defense fraction,
// rounding up so any positive raw damage chips at least one point.
// Defense outside [0, max] is clamped, never amplifying damage.
func MitigateDamage(raw, defense float64) float64 {
	if defense < 0 {
		defense = 0
	}
	if defense > cfg.Combat.MaxDefense {
		defense = cfg.Combat.MaxDefense
	}
	mitigated := raw * (1 - defense)
	if mitigated < 0 {
		return 0
	}
	return math.Ceil(mitigated)
}

// UpdateImpacts turns health drops into stun or death. It diffs each
// pool against the snapshot from the previous tick, so any source of
// damage (melee, dead zones) funnels through the same state changes.
// Fresh flags mark the onset tick for the knockback pass.
func UpdateImpacts(ecs *ecs.ECS) {
	components.Health.Each(ecs.World, func(e *donburi.Entry) {
		health := components.Health.Get(e)

		if health.Damaged() && !e.HasComponent(components.Death) {
			attackerX, force, pop := hitImpulse(e)

			if e.HasComponent(tags.Enemy) {
				showHealthBar(e)
			}

			if health.Dead() {
				startDeathSequence(e, attackerX, force, pop)
			} else {
				applyStun(e, attackerX, force, pop)
			}
		}

		health.Last = health.Current
		if e.HasComponent(components.LastHit) {
			donburi.Remove[components.LastHitData](e, components.LastHit)
		}
	})
}

// hitImpulse reads the impulse parameters the damage subscriber left,
// if any. Environmental damage has no attacker and no impulse.
func hitImpulse(e *donburi.Entry) (attackerX, force, pop float64) {
	if !e.HasComponent(components.LastHit) {
		obj := components.Object.Get(e)
		return obj.X + obj.W/2, 0, 0
	}
	hit := components.LastHit.Get(e)
	return hit.AttackerX, hit.Knockback, cfg.Combat.KnockbackPop
}

func applyStun(e *donburi.Entry, attackerX, force, pop float64) {
	stun := &components.StunData{
		Timer:     components.NewTimer(cfg.Combat.StunDuration),
		Fresh:     true,
		AttackerX: attackerX,
		Force:     force,
		Pop:       pop,
	}
	if e.HasComponent(components.Stun) {
		// Re-hit while stunned: restart the stun and its impulse.
		*components.Stun.Get(e) = *stun
		return
	}
	donburi.Add(e, components.Stun, stun)
}

func startDeathSequence(e *donburi.Entry, attackerX, force, pop float64) {
	if e.HasComponent(components.Attack) {
		cancelSwing(e)
	}
	if e.HasComponent(components.Stun) {
		donburi.Remove[components.StunData](e, components.Stun)
	}

	duration := cfg.Combat.DeathDuration
	if e.HasComponent(components.Animation) {
		anim := components.Animation.Get(e)
		if d := anim.Duration(cfg.ClipDie); d > 0 {
			duration = d
		}
	}

	donburi.Add(e, components.Death, &components.DeathData{
		Timer:     components.NewTimer(duration),
		Fresh:     true,
		AttackerX: attackerX,
		Force:     force,
		Pop:       pop,
	})
}

func showHealthBar(e *donburi.Entry) {
	if e.HasComponent(components.HealthBar) {
		components.HealthBar.Get(e).TimeToLive = cfg.Combat.HealthBarDuration
		return
	}
	donburi.Add(e, components.HealthBar, &components.HealthBarData{
		TimeToLive: cfg.Combat.HealthBarDuration,
	})
}

// UpdateKnockback applies the impulse for stuns and deaths added this
// tick. Consuming the Fresh flag guarantees one impulse per onset no
// matter how many ticks the state lasts.
func UpdateKnockback(ecs *ecs.ECS) {
	components.Stun.Each(ecs.World, func(e *donburi.Entry) {
		stun := components.Stun.Get(e)
		if !stun.Fresh {
			return
		}
		stun.Fresh = false
		applyImpulse(e, stun.AttackerX, stun.Force, stun.Pop)
	})

	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if !death.Fresh {
			return
		}
		death.Fresh = false
		applyImpulse(e, death.AttackerX, death.Force, death.Pop)
	})
}

// applyImpulse pushes the victim horizontally away from the attacker
// and pops it upward. The pop only raises upward velocity, it never
// cancels an existing stronger rise.
func applyImpulse(e *donburi.Entry, attackerX, force, pop float64) {
	if !e.HasComponent(components.Physics) || force == 0 && pop == 0 {
		return
	}

	resist := 0.0
	if e.HasComponent(components.Actor) {
		if class := components.Actor.Get(e).Class; class != nil {
			resist = class.Stats.KnockbackResist
		}
	}
	scale := 1 - resist

	obj := components.Object.Get(e)
	centerX := obj.X + obj.W/2

	physics := components.Physics.Get(e)
	if force > 0 {
		if centerX >= attackerX {
			physics.SpeedX = force * scale
		} else {
			physics.SpeedX = -force * scale
		}
	}
	if pop > 0 {
		physics.SpeedY = math.Min(physics.SpeedY, -pop*scale)
	}
}

// UpdateStuns clears expired hitstun.
func UpdateStuns(ecs *ecs.ECS) {
	components.Stun.Each(ecs.World, func(e *donburi.Entry) {
		if components.Stun.Get(e).Timer.Finished() {
			donburi.Remove[components.StunData](e, components.Stun)
		}
	})
}
