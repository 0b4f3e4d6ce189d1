package systems

import (
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// attackClipFallbacks orders the clips tried for each attack variant
// when a sheet omits the specific one.
var attackClipFallbacks = map[cfg.AttackKind][]cfg.ClipID{
	cfg.AttackIdle:    {cfg.ClipAttackIdle, cfg.ClipAttackWalk, cfg.ClipAttackRun, cfg.ClipAttackJump, cfg.ClipAttackFall},
	cfg.AttackWalking: {cfg.ClipAttackWalk, cfg.ClipAttackIdle, cfg.ClipAttackRun, cfg.ClipAttackJump, cfg.ClipAttackFall},
	cfg.AttackRunning: {cfg.ClipAttackRun, cfg.ClipAttackWalk, cfg.ClipAttackIdle, cfg.ClipAttackJump, cfg.ClipAttackFall},
	cfg.AttackJumping: {cfg.ClipAttackJump, cfg.ClipAttackFall, cfg.ClipAttackIdle, cfg.ClipAttackWalk, cfg.ClipAttackRun},
	cfg.AttackFalling: {cfg.ClipAttackFall, cfg.ClipAttackJump, cfg.ClipAttackIdle, cfg.ClipAttackWalk, cfg.ClipAttackRun},
}

// defaultSwingDuration is used when a sheet provides no usable attack
// clip duration at all.
const defaultSwingDuration = 0.4

// UpdateAttacks runs the attack overlay state machine. A swing starts
// when attack is pressed with the cooldown finished and the actor able
// to act; it ends when its timer elapses, restarting the cooldown. The
// interrupted paths (stun, death, leaving the ground) go through
// cancelSwing and deliberately leave the cooldown alone.
func UpdateAttacks(ecs *ecs.ECS) {
	components.Intent.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			if e.HasComponent(components.Attack) {
				cancelSwing(e)
			}
			return
		}
		if e.HasComponent(components.Stun) {
			if e.HasComponent(components.Attack) {
				cancelSwing(e)
			}
			return
		}

		if e.HasComponent(components.Attack) {
			attack := components.Attack.Get(e)
			if attack.Timer.Finished() {
				endSwing(e, true)
			}
			return
		}

		intent := components.Intent.Get(e)
		cooldown := components.AttackCooldown.Get(e)
		if !intent.AttackPressed || !cooldown.Timer.Finished() {
			return
		}

		startSwing(e)
	})
}

// startSwing attaches the attack overlay matching the current
// locomotion state and arms the melee ray for a fresh swing.
func startSwing(e *donburi.Entry) {
	state := components.State.Get(e)
	kind := cfg.AttackKindFor(state.Locomotion)

	duration := swingDuration(e, kind)

	donburi.Add(e, components.Attack, &components.AttackData{
		Kind:  kind,
		Timer: components.NewTimer(duration),
	})

	if e.HasComponent(components.MeleeRay) {
		components.MeleeRay.Get(e).BeginSwing()
	}
}

// endSwing finishes a swing. restartCooldown distinguishes natural
// completion from interruption: exactly one of "cooldown restarted" or
// "swing was cancelled" holds for every swing that ever started.
func endSwing(e *donburi.Entry, restartCooldown bool) {
	donburi.Remove[components.AttackData](e, components.Attack)

	if restartCooldown {
		cooldown := components.AttackCooldown.Get(e)
		cooldown.Timer.Reset(attackCooldownFor(e))
	}
}

// cancelSwing is the interruption path: the overlay and its timer go
// away without touching the cooldown.
func cancelSwing(e *donburi.Entry) {
	endSwing(e, false)
}

// swingDuration resolves the variant's duration from the actor's clip
// table, walking the same fallback chain animation selection uses.
func swingDuration(e *donburi.Entry, kind cfg.AttackKind) float64 {
	if e.HasComponent(components.Animation) {
		anim := components.Animation.Get(e)
		for _, clip := range attackClipFallbacks[kind] {
			if d := anim.Duration(clip); d > 0 {
				return d
			}
		}
	}
	return defaultSwingDuration
}

// attackCooldownFor returns the post-swing cooldown for an actor.
func attackCooldownFor(e *donburi.Entry) float64 {
	if e.HasComponent(components.Senses) {
		return cfg.Enemy.AttackCooldown
	}
	return cfg.Player.AttackCooldown
}
