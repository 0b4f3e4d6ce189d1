package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/thomasza92/redeemer/components"
	"github.com/yohamta/donburi/ecs"
)

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.Background == nil {
		return
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-camera.Position.X, -camera.Position.Y)
	opts.GeoM.Translate(float64(width)/2, float64(height)/2)
	screen.DrawImage(levelData.CurrentLevel.Background, opts)
}
