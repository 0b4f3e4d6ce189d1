package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/systems/factory"
	"github.com/yohamta/donburi"
)

func currentClip(e *donburi.Entry) cfg.ClipID {
	return components.Animation.Get(e).CurrentClip
}

func TestAnimationFollowsLocomotion(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipIdle, currentClip(player))

	components.State.Get(player).Locomotion = cfg.LocWalking
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipWalk, currentClip(player))

	components.State.Get(player).Locomotion = cfg.LocRunning
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipRun, currentClip(player))
}

func TestAirborneClipSplitsOnVerticalVelocity(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	physics := components.Physics.Get(player)
	state := components.State.Get(player)

	state.Locomotion = cfg.LocJumping
	physics.SpeedY = -200
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipJump, currentClip(player))

	// The falling state shows the jump clip while still rising.
	state.Locomotion = cfg.LocFalling
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipJump, currentClip(player))

	physics.SpeedY = 200
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipFall, currentClip(player))
}

func TestDeathBeatsStunBeatsAttack(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	donburi.Add(player, components.Attack, &components.AttackData{Kind: cfg.AttackIdle})
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipAttackIdle, currentClip(player))

	applyStun(player, 0, 0, 0)
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipHit, currentClip(player))

	donburi.Add(player, components.Death, &components.DeathData{Timer: components.NewTimer(1)})
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipDie, currentClip(player))
}

func TestAttackClipMatchesVariant(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	donburi.Add(player, components.Attack, &components.AttackData{Kind: cfg.AttackRunning})
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipAttackRun, currentClip(player))

	components.Attack.Get(player).Kind = cfg.AttackJumping
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipAttackJump, currentClip(player))
}

func TestAttackClipFallsBackOnSparseSheet(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 100, 100, "", 0)

	// The footman sheet has no attack_walk clip; the walking variant
	// falls back to attack_idle.
	donburi.Add(enemy, components.Attack, &components.AttackData{Kind: cfg.AttackWalking})
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipAttackIdle, currentClip(enemy))
}

func TestLocomotionClipFallsBackOnSparseSheet(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 100, 100, "", 0)

	// No jump or fall clips on the footman sheet: airborne states show
	// idle rather than a frozen wrong clip.
	components.State.Get(enemy).Locomotion = cfg.LocJumping
	components.Physics.Get(enemy).SpeedY = -100
	UpdateAnimations(e)
	assert.Equal(t, cfg.ClipIdle, currentClip(enemy))
}

func TestResolveClipPrefersDirectClip(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	anim := components.Animation.Get(player)

	assert.Equal(t, cfg.ClipWalk, resolveClip(anim, cfg.ClipWalk))
	assert.Equal(t, cfg.ClipJump, resolveClip(anim, cfg.ClipJump))
}

func TestResolveClipWalksChain(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 100, 100, "", 0)
	anim := components.Animation.Get(enemy)

	require.Nil(t, anim.Animations[cfg.ClipJump])
	assert.Equal(t, cfg.ClipIdle, resolveClip(anim, cfg.ClipJump))
	// Walk exists on the footman sheet and resolves to itself.
	assert.Equal(t, cfg.ClipWalk, resolveClip(anim, cfg.ClipWalk))
	// Die exists; no fallback needed.
	assert.Equal(t, cfg.ClipDie, resolveClip(anim, cfg.ClipDie))
}

func TestAnimationAdvancesFrames(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	ground(player)

	anim := components.Animation.Get(player)
	require.NotNil(t, anim.CurrentAnimation)
	start := anim.CurrentAnimation.Frame()

	// The idle clip plays at 5 ticks per frame.
	for i := 0; i < 12; i++ {
		UpdateAnimations(e)
	}
	assert.NotEqual(t, start, anim.CurrentAnimation.Frame())
}
