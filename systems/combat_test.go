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

func TestMitigateDamage(t *testing.T) {
	tests := []struct {
		name    string
		raw     float64
		defense float64
		want    float64
	}{
		{"no defense", 20, 0, 20},
		{"half defense", 20, 0.5, 10},
		{"footman defense rounds up", 20, 0.10, 18},
		{"fractional result rounds up", 7.5, 0.5, 4},
		{"defense above cap is clamped", 20, 1.5, 1},
		{"negative defense never amplifies", 20, -1, 20},
		{"zero raw", 0, 0.5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MitigateDamage(tt.raw, tt.defense))
		})
	}
}

func TestNonLethalHitStuns(t *testing.T) {
	e := newTestECS()
	RegisterCombatHandlers(e.World)

	player := factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)

	beginSwing(player)
	UpdateMelee(e)
	ProcessCombatEvents(e)
	UpdateImpacts(e)

	require.Equal(t, 22.0, enemyHealth(enemy))
	assert.True(t, enemy.HasComponent(components.Stun))
	assert.False(t, enemy.HasComponent(components.Death))

	stun := components.Stun.Get(enemy)
	assert.True(t, stun.Fresh)
	assert.Equal(t, cfg.Combat.StunDuration, stun.Timer.Duration)

	// The snapshot is caught up and the hit record consumed.
	assert.Equal(t, 22.0, components.Health.Get(enemy).Last)
	assert.False(t, enemy.HasComponent(components.LastHit))
	assert.True(t, enemy.HasComponent(components.HealthBar))
}

func TestLethalHitKillsInsteadOfStunning(t *testing.T) {
	e := newTestECS()
	RegisterCombatHandlers(e.World)

	player := factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	components.Health.Get(enemy).Current = 10
	components.Health.Get(enemy).Last = 10

	beginSwing(player)
	UpdateMelee(e)
	ProcessCombatEvents(e)
	UpdateImpacts(e)

	assert.Equal(t, 0.0, enemyHealth(enemy))
	assert.True(t, enemy.HasComponent(components.Death))
	assert.False(t, enemy.HasComponent(components.Stun))
}

func TestLethalHitWhileStunnedClearsStun(t *testing.T) {
	e := newTestECS()
	RegisterCombatHandlers(e.World)

	player := factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	applyStun(enemy, 0, 0, 0)

	components.Health.Get(enemy).Current = 5
	components.Health.Get(enemy).Last = 5

	beginSwing(player)
	UpdateMelee(e)
	ProcessCombatEvents(e)
	UpdateImpacts(e)

	assert.True(t, enemy.HasComponent(components.Death))
	assert.False(t, enemy.HasComponent(components.Stun))
}

func TestDeathDurationComesFromDieClip(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)

	startDeathSequence(enemy, 0, 0, 0)
	// The footman manifest pins the die clip at one second.
	assert.Equal(t, 1.0, components.Death.Get(enemy).Timer.Duration)
}

func TestKnockbackPushesAwayFromAttacker(t *testing.T) {
	e := newTestECS()
	RegisterCombatHandlers(e.World)

	player := factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)

	beginSwing(player)
	UpdateMelee(e)
	ProcessCombatEvents(e)
	UpdateImpacts(e)
	UpdateKnockback(e)

	physics := components.Physics.Get(enemy)
	// The player's class knockback is 260; footman resists 10%.
	assert.InDelta(t, 260*0.9, physics.SpeedX, 1e-9)
	assert.InDelta(t, -cfg.Combat.KnockbackPop*0.9, physics.SpeedY, 1e-9)
	assert.False(t, components.Stun.Get(enemy).Fresh)
}

func TestKnockbackAppliesOncePerOnset(t *testing.T) {
	e := newTestECS()
	RegisterCombatHandlers(e.World)

	player := factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)

	beginSwing(player)
	UpdateMelee(e)
	ProcessCombatEvents(e)
	UpdateImpacts(e)
	UpdateKnockback(e)

	physics := components.Physics.Get(enemy)
	physics.SpeedX = 0
	physics.SpeedY = 0

	UpdateKnockback(e)
	assert.Equal(t, 0.0, physics.SpeedX)
	assert.Equal(t, 0.0, physics.SpeedY)
}

func TestKnockbackPopNeverCancelsAStrongerRise(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	physics := components.Physics.Get(enemy)
	physics.SpeedY = -400

	applyImpulse(enemy, 0, 100, cfg.Combat.KnockbackPop)
	assert.Equal(t, -400.0, physics.SpeedY)
}

func TestKnockbackDirectionFollowsRelativePosition(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	physics := components.Physics.Get(enemy)

	// Attacker to the right of the victim: push left.
	applyImpulse(enemy, 500, 100, 0)
	assert.InDelta(t, -100*0.9, physics.SpeedX, 1e-9)
}

func TestEnvironmentalDamageHasNoImpulse(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)

	health := components.Health.Get(enemy)
	health.Current = 22

	UpdateImpacts(e)
	UpdateKnockback(e)

	require.True(t, enemy.HasComponent(components.Stun))
	physics := components.Physics.Get(enemy)
	assert.Equal(t, 0.0, physics.SpeedX)
	assert.Equal(t, 0.0, physics.SpeedY)
}

func TestRehitWhileStunnedRestartsStun(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)

	health := components.Health.Get(enemy)
	health.Current = 30
	UpdateImpacts(e)
	require.True(t, enemy.HasComponent(components.Stun))

	tickSeconds(e, cfg.Combat.StunDuration/2)
	elapsed := components.Stun.Get(enemy).Timer.Elapsed
	require.Greater(t, elapsed, 0.0)

	health.Current = 20
	UpdateImpacts(e)
	assert.Equal(t, 0.0, components.Stun.Get(enemy).Timer.Elapsed)
	assert.True(t, components.Stun.Get(enemy).Fresh)
}

func TestStunExpires(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	applyStun(enemy, 0, 0, 0)

	UpdateStuns(e)
	require.True(t, enemy.HasComponent(components.Stun))

	tickSeconds(e, cfg.Combat.StunDuration)
	UpdateStuns(e)
	assert.False(t, enemy.HasComponent(components.Stun))
}

func TestDeathRemovesEntityAndCollisionObjects(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	entity := enemy.Entity()

	obj := components.Object.Get(enemy).Object
	ray := components.MeleeRay.Get(enemy).Ray
	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	space := components.Space.Get(spaceEntry)
	require.Contains(t, space.Objects(), obj)
	require.Contains(t, space.Objects(), ray)

	startDeathSequence(enemy, 0, 0, 0)
	UpdateDeaths(e)
	require.True(t, e.World.Valid(entity))

	tickSeconds(e, 1.0)
	UpdateDeaths(e)

	assert.False(t, e.World.Valid(entity))
	assert.NotContains(t, space.Objects(), obj)
	assert.NotContains(t, space.Objects(), ray)
}

func TestDeadTargetTakesNoFurtherDamage(t *testing.T) {
	e := newTestECS()
	RegisterCombatHandlers(e.World)

	player := factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	donburi.Add(enemy, components.Death, &components.DeathData{Timer: components.NewTimer(1)})

	beginSwing(player)
	UpdateMelee(e)
	ProcessCombatEvents(e)
	assert.Equal(t, 40.0, enemyHealth(enemy))
}

func TestPlayerGone(t *testing.T) {
	e := newTestECS()
	assert.True(t, PlayerGone(e))

	player := factory.CreatePlayer(e, 100, 100)
	assert.False(t, PlayerGone(e))

	startDeathSequence(player, 0, 0, 0)
	tickSeconds(e, 1.1)
	UpdateDeaths(e)
	assert.True(t, PlayerGone(e))
}
