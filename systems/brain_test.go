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

func TestPerceptionAcquiresTargetInRange(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 300, 100, "", 0)

	UpdatePerception(e)

	senses := components.Senses.Get(enemy)
	require.True(t, senses.HasTarget)
	assert.Negative(t, senses.Dx)
	assert.Equal(t, 200.0, senses.Dist)
}

func TestPerceptionIgnoresFarTargets(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 100+cfg.Enemy.AggroRange+50, 100, "", 0)

	UpdatePerception(e)
	assert.False(t, components.Senses.Get(enemy).HasTarget)
}

func TestPerceptionIgnoresVerticallyDistantTargets(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 150, 100+cfg.Enemy.MaxVerticalAggro+50, "", 0)

	UpdatePerception(e)
	assert.False(t, components.Senses.Get(enemy).HasTarget)
}

func TestPerceptionDropsDeadPlayer(t *testing.T) {
	e := newTestECS()
	player := factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 150, 100, "", 0)

	UpdatePerception(e)
	require.True(t, components.Senses.Get(enemy).HasTarget)

	donburi.Add(player, components.Death, &components.DeathData{Timer: components.NewTimer(1)})
	UpdatePerception(e)
	assert.False(t, components.Senses.Get(enemy).HasTarget)
}

func TestBrainDefaultsToPatrol(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 700, 100, "", 0)

	UpdatePerception(e)
	UpdateBrains(e)
	assert.Equal(t, components.BehaviorPatrol, components.Brain.Get(enemy).Current)
}

func TestBrainChasesDistantTarget(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 300, 100, "", 0)

	UpdatePerception(e)
	UpdateBrains(e)
	assert.Equal(t, components.BehaviorChase, components.Brain.Get(enemy).Current)
}

func TestBrainAttacksInReach(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)

	UpdatePerception(e)
	UpdateBrains(e)
	assert.Equal(t, components.BehaviorAttack, components.Brain.Get(enemy).Current)
}

func TestBrainAttackGatedByCooldown(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	components.AttackCooldown.Get(enemy).Timer.Reset(cfg.Enemy.AttackCooldown)

	UpdatePerception(e)
	UpdateBrains(e)
	assert.Equal(t, components.BehaviorChase, components.Brain.Get(enemy).Current)

	tickSeconds(e, cfg.Enemy.AttackCooldown)
	UpdateBrains(e)
	assert.Equal(t, components.BehaviorAttack, components.Brain.Get(enemy).Current)
}

func TestBrainAttackUsesReachBand(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)

	// Just beyond reach plus the slack band: chase, not attack.
	beyond := cfg.Enemy.AttackRange + cfg.Enemy.AttackBand + 10
	enemy := factory.CreateEnemy(e, 100+beyond, 100, "", 0)

	UpdatePerception(e)
	UpdateBrains(e)
	assert.Equal(t, components.BehaviorChase, components.Brain.Get(enemy).Current)
}

func TestBrainStaysOnAttackMidSwing(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	beginSwing(enemy)

	// Target wandered off mid-swing; the behavior stays pinned until
	// the swing resolves.
	UpdatePerception(e)
	*components.Senses.Get(enemy) = components.SensesData{}
	UpdateBrains(e)
	assert.Equal(t, components.BehaviorAttack, components.Brain.Get(enemy).Current)
}

func TestPatrolTurnsAtBounds(t *testing.T) {
	e := newTestECS()
	enemy := factory.CreateEnemy(e, 700, 100, "", 100)
	patrol := components.Patrol.Get(enemy)
	patrol.Dir = 1

	obj := components.Object.Get(enemy)

	// Mid-band: keep going.
	UpdatePerception(e)
	UpdateBrains(e)
	UpdateEnemyActions(e)
	assert.Equal(t, 1.0, components.Intent.Get(enemy).Axis)

	// At the right bound: turn around.
	obj.X = patrol.Right - obj.W/2
	UpdateEnemyActions(e)
	assert.Equal(t, -1.0, components.Intent.Get(enemy).Axis)

	// At the left bound: turn back.
	obj.X = patrol.Left - obj.W/2
	UpdateEnemyActions(e)
	assert.Equal(t, 1.0, components.Intent.Get(enemy).Axis)
}

func TestChaseSprintsTowardTarget(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 300, 100, "", 0)

	UpdatePerception(e)
	UpdateBrains(e)
	UpdateEnemyActions(e)

	intent := components.Intent.Get(enemy)
	assert.Equal(t, -1.0, intent.Axis)
	assert.True(t, intent.Sprint)
}

func TestChaseStandsInsideReach(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 130, 100, "", 0)

	// Force the chase behavior even though attack would normally win,
	// to exercise the stop band on its own.
	UpdatePerception(e)
	components.Brain.Get(enemy).Current = components.BehaviorChase
	UpdateEnemyActions(e)

	intent := components.Intent.Get(enemy)
	assert.Equal(t, 0.0, intent.Axis)
	assert.False(t, intent.Sprint)
	assert.Equal(t, cfg.DirectionLeft, components.Actor.Get(enemy).Facing)
}

func TestAttackActionFacesTargetAndPressesAttack(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 200, 100)
	enemy := factory.CreateEnemy(e, 160, 100, "", 0)
	components.Actor.Get(enemy).Facing = cfg.DirectionLeft

	UpdatePerception(e)
	UpdateBrains(e)
	require.Equal(t, components.BehaviorAttack, components.Brain.Get(enemy).Current)

	UpdateEnemyActions(e)
	intent := components.Intent.Get(enemy)
	assert.True(t, intent.AttackPressed)
	assert.Equal(t, cfg.DirectionRight, components.Actor.Get(enemy).Facing)
}

func TestStunnedEnemyEmitsNoIntent(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	applyStun(enemy, 0, 0, 0)

	UpdatePerception(e)
	UpdateBrains(e)
	UpdateEnemyActions(e)

	assert.Equal(t, components.IntentData{}, *components.Intent.Get(enemy))
}

func TestEnemyAttacksThroughFullPipeline(t *testing.T) {
	e := newTestECS()
	RegisterCombatHandlers(e.World)

	player := factory.CreatePlayer(e, 100, 100)
	ground(player)
	enemy := factory.CreateEnemy(e, 140, 100, "", 0)
	ground(enemy)

	// One full AI tick: perceive, decide, act, swing, resolve.
	UpdatePerception(e)
	UpdateBrains(e)
	UpdateEnemyActions(e)
	UpdateAttacks(e)
	require.True(t, enemy.HasComponent(components.Attack))

	UpdateMelee(e)
	ProcessCombatEvents(e)
	UpdateImpacts(e)

	assert.Equal(t, 85.0, components.Health.Get(player).Current)
	assert.True(t, player.HasComponent(components.Stun))
}

func TestStunAndDeathZeroAllScores(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 100, 100)

	stunned := factory.CreateEnemy(e, 140, 100, "", 0)
	applyStun(stunned, 0, 0, 0)
	dying := factory.CreateEnemy(e, 150, 100, "", 0)
	startDeathSequence(dying, 0, 0, 0)

	UpdatePerception(e)
	UpdateBrains(e)

	for _, enemy := range []*donburi.Entry{stunned, dying} {
		brain := components.Brain.Get(enemy)
		assert.Equal(t, [3]float64{}, brain.Scores)
		assert.Equal(t, components.BehaviorPatrol, brain.Current)
	}
}
