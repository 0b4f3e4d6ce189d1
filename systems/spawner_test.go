package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"

	"github.com/thomasza92/redeemer/archetypes"
	"github.com/thomasza92/redeemer/assets"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/systems/factory"
	"github.com/thomasza92/redeemer/tags"
)

func testLevel() *assets.Level {
	return &assets.Level{
		Width:  1600,
		Height: 480,
		Solids: []assets.SolidRect{
			{X: 0, Y: 432, Width: 1600, Height: 48},
		},
		Platforms: []assets.PlatformRect{
			{X: 448, Y: 304, Width: 96, Height: 8},
		},
		SpawnRegions: []assets.SpawnRegion{
			{X: 320, Y: 320, Width: 960, Height: 112},
		},
	}
}

func TestProbeGroundFindsTopmostSurface(t *testing.T) {
	level := testLevel()

	// Over the platform, the platform wins over the floor below it.
	y, ok := probeGround(level, 500, 100)
	require.True(t, ok)
	assert.Equal(t, 304.0, y)

	// Off the platform, the floor is the surface.
	y, ok = probeGround(level, 800, 100)
	require.True(t, ok)
	assert.Equal(t, 432.0, y)
}

func TestProbeGroundRespectsProbeDistance(t *testing.T) {
	level := testLevel()

	// From high enough up, nothing is within the probe distance.
	_, ok := probeGround(level, 800, 432-cfg.Spawner.GroundProbe-100)
	assert.False(t, ok)
}

func TestProbeGroundMissesOutsideGeometry(t *testing.T) {
	level := testLevel()
	_, ok := probeGround(level, 5000, 100)
	assert.False(t, ok)
}

func TestProbeGroundIgnoresSurfacesAbove(t *testing.T) {
	level := testLevel()

	// Probing from below the platform must not pick it up.
	y, ok := probeGround(level, 500, 350)
	require.True(t, ok)
	assert.Equal(t, 432.0, y)
}

func spawnTestLevel(e *donburi.Entry, level *assets.Level) {
	components.Level.Set(e, &components.LevelData{CurrentLevel: level})
}

func TestSpawnerPlacesEnemyOnCycle(t *testing.T) {
	e := newTestECS()
	levelEntry := archetypes.Level.Spawn(e)
	spawnTestLevel(levelEntry, testLevel())
	factory.CreateSpawner(e)

	UpdateSpawners(e)
	assert.Equal(t, 0, countAliveEnemies(e))

	tickSeconds(e, cfg.Spawner.Interval)
	UpdateSpawners(e)
	assert.Equal(t, 1, countAliveEnemies(e))

	// The cycle restarted: no second enemy until the next interval.
	UpdateSpawners(e)
	assert.Equal(t, 1, countAliveEnemies(e))

	spawner, ok := components.Spawner.First(e.World)
	require.True(t, ok)
	assert.False(t, components.Spawner.Get(spawner).Timer.Finished())
}

func TestSpawnerPlacesEnemyAboveGround(t *testing.T) {
	e := newTestECS()
	levelEntry := archetypes.Level.Spawn(e)
	spawnTestLevel(levelEntry, testLevel())
	factory.CreateSpawner(e)

	tickSeconds(e, cfg.Spawner.Interval)
	UpdateSpawners(e)

	enemy, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	obj := components.Object.Get(enemy)

	region := testLevel().SpawnRegions[0]
	assert.GreaterOrEqual(t, obj.X, region.X+cfg.Spawner.EdgeMargin)
	assert.LessOrEqual(t, obj.X, region.X+region.Width-cfg.Spawner.EdgeMargin)
	// Spawned just above its ground surface, never inside it.
	assert.LessOrEqual(t, obj.Bottom(), 432.0)
}

func TestSpawnerRespectsPopulationCap(t *testing.T) {
	e := newTestECS()
	levelEntry := archetypes.Level.Spawn(e)
	spawnTestLevel(levelEntry, testLevel())
	factory.CreateSpawner(e)

	for i := 0; i < cfg.Spawner.MaxAlive; i++ {
		factory.CreateEnemy(e, 400+float64(i)*50, 100, "", 0)
	}

	tickSeconds(e, cfg.Spawner.Interval)
	UpdateSpawners(e)
	assert.Equal(t, cfg.Spawner.MaxAlive, countAliveEnemies(e))
}

func TestSpawnerCountsOnlyLivingEnemies(t *testing.T) {
	e := newTestECS()

	for i := 0; i < 3; i++ {
		factory.CreateEnemy(e, 400+float64(i)*50, 100, "", 0)
	}
	require.Equal(t, 3, countAliveEnemies(e))

	enemy, ok := tags.Enemy.First(e.World)
	require.True(t, ok)
	startDeathSequence(enemy, 0, 0, 0)
	assert.Equal(t, 2, countAliveEnemies(e))
}

func TestSpawnerIdleWithoutRegions(t *testing.T) {
	e := newTestECS()
	level := testLevel()
	level.SpawnRegions = nil
	levelEntry := archetypes.Level.Spawn(e)
	spawnTestLevel(levelEntry, level)
	factory.CreateSpawner(e)

	tickSeconds(e, cfg.Spawner.Interval)
	UpdateSpawners(e)
	assert.Equal(t, 0, countAliveEnemies(e))
}
