package systems

import (
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// animationClipFallbacks orders the clips tried for non-attack states
// when a sheet omits the preferred one. Attack variants use
// attackClipFallbacks. Every chain ends in ClipIdle so a sheet with an
// idle clip always animates.
var animationClipFallbacks = map[cfg.ClipID][]cfg.ClipID{
	cfg.ClipIdle: {cfg.ClipIdle},
	cfg.ClipWalk: {cfg.ClipWalk, cfg.ClipRun, cfg.ClipIdle},
	cfg.ClipRun:  {cfg.ClipRun, cfg.ClipWalk, cfg.ClipIdle},
	cfg.ClipJump: {cfg.ClipJump, cfg.ClipFall, cfg.ClipIdle},
	cfg.ClipFall: {cfg.ClipFall, cfg.ClipJump, cfg.ClipIdle},
	cfg.ClipHit:  {cfg.ClipHit, cfg.ClipIdle},
	cfg.ClipDie:  {cfg.ClipDie, cfg.ClipHit, cfg.ClipIdle},
}

// UpdateAnimations picks each actor's clip from its current state and
// advances the playing animation. Selection is a pure function of state:
// dying beats stunned beats attacking beats locomotion.
func UpdateAnimations(ecs *ecs.ECS) {
	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)

		anim.SetClip(resolveClip(anim, selectClip(e)))

		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

// selectClip returns the preferred clip for the actor's state, before
// sheet fallback.
func selectClip(e *donburi.Entry) cfg.ClipID {
	if e.HasComponent(components.Death) {
		return cfg.ClipDie
	}
	if e.HasComponent(components.Stun) {
		return cfg.ClipHit
	}
	if e.HasComponent(components.Attack) {
		return attackClip(e)
	}

	state := components.State.Get(e)
	switch state.Locomotion {
	case cfg.LocWalking:
		return cfg.ClipWalk
	case cfg.LocRunning:
		return cfg.ClipRun
	case cfg.LocJumping, cfg.LocSprintJumping:
		return cfg.ClipJump
	case cfg.LocFalling:
		return airborneClip(e)
	}
	return cfg.ClipIdle
}

// airborneClip keeps the jump clip while still rising and switches to
// the fall clip once the actor is descending.
func airborneClip(e *donburi.Entry) cfg.ClipID {
	physics := components.Physics.Get(e)
	if physics.SpeedY < 0 {
		return cfg.ClipJump
	}
	return cfg.ClipFall
}

func attackClip(e *donburi.Entry) cfg.ClipID {
	attack := components.Attack.Get(e)
	anim := components.Animation.Get(e)
	chain := attackClipFallbacks[attack.Kind]
	for _, clip := range chain {
		if anim.Animations[clip] != nil {
			return clip
		}
	}
	if len(chain) > 0 {
		return chain[0]
	}
	return cfg.ClipAttackIdle
}

// resolveClip walks the fallback chain for a clip the sheet lacks.
func resolveClip(anim *components.AnimationData, clip cfg.ClipID) cfg.ClipID {
	if anim.Animations[clip] != nil {
		return clip
	}
	for _, alt := range animationClipFallbacks[clip] {
		if anim.Animations[alt] != nil {
			return alt
		}
	}
	return clip
}
