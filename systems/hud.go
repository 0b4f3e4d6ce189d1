package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

// DrawHUD renders the player's health bar and class name in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	// Background (dark gray)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		color.RGBA{40, 40, 40, 255}, false)

	// Current HP (green)
	ratio := float32(hp.Current / hp.Max)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		color.RGBA{40, 220, 40, 255}, false)

	drawClassLine(playerEntry, screen)
}

func drawClassLine(playerEntry *donburi.Entry, screen *ebiten.Image) {
	actor := components.Actor.Get(playerEntry)
	if actor.Class == nil {
		return
	}
	hp := components.Health.Get(playerEntry)
	line := fmt.Sprintf("%s  %.0f/%.0f", actor.Class.DisplayName, hp.Current, hp.Max)
	ebitenutil.DebugPrintAt(screen, line, hudMargin, hudMargin+hudBarHeight+4)
}

// DrawMetrics shows the TPS and entity count overlay when enabled.
func DrawMetrics(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowMetrics {
		return
	}
	entities := 0
	components.Object.Each(ecs.World, func(e *donburi.Entry) { entities++ })
	line := fmt.Sprintf("TPS: %.1f  entities: %d", ebiten.ActualTPS(), entities)
	ebitenutil.DebugPrintAt(screen, line, hudMargin, screen.Bounds().Dy()-20)
}
