package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/systems"
	"github.com/thomasza92/redeemer/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewPlatformerScene creates the gameplay scene.
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// All the way dead: the death sequence finished and the player
	// entity is gone from the world.
	if systems.PlayerGone(ps.ecs) {
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear to prevent flashes from the OS window background.
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	world := ecs.NewECS(donburi.NewWorld())

	systems.RegisterCombatHandlers(world.World)

	// Systems that always run
	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.UpdatePause)

	// Simulation order: timers first, then intent (input and AI), the
	// state machines, combat resolution, movement, and finally the
	// passes that only observe the tick's outcome.
	world.AddSystem(systems.WithPauseCheck(systems.UpdateTimers))
	world.AddSystem(systems.WithPauseCheck(systems.UpdatePlayerIntent))
	world.AddSystem(systems.WithPauseCheck(systems.UpdatePerception))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateBrains))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateEnemyActions))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateLocomotion))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateAttacks))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateMelee))
	world.AddSystem(systems.WithPauseCheck(systems.ProcessCombatEvents))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateImpacts))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateKnockback))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateStuns))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))
	world.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateFloatingPlatforms))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateStates))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateSpawners))
	world.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	// Renderers
	world.AddRenderer(cfg.Default, systems.DrawLevel)
	world.AddRenderer(cfg.Default, systems.DrawAnimated)
	world.AddRenderer(cfg.Default, systems.DrawSprites)
	world.AddRenderer(cfg.Default, systems.DrawHealthBars)
	world.AddRenderer(cfg.Default, systems.DrawHUD)
	world.AddRenderer(cfg.Default, systems.DrawMetrics)
	world.AddRenderer(cfg.Default, systems.DrawDebug)
	world.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = world

	// Level data first; the collision space is sized from it.
	level := factory.CreateLevelAtIndex(ps.ecs, 0)
	levelData := components.Level.Get(level)

	factory.CreateSpace(ps.ecs,
		levelData.CurrentLevel.Width,
		levelData.CurrentLevel.Height,
		16, 16,
	)
	factory.CreateCamera(ps.ecs)

	player := factory.PopulateLevel(ps.ecs, levelData.CurrentLevel)

	// Snap the camera to the player's start so it doesn't pan in from (0,0).
	if cameraEntry, ok := components.Camera.First(ps.ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		playerObj := components.Object.Get(player)
		camera.Position.X = playerObj.X
		camera.Position.Y = playerObj.Y
	}
}
