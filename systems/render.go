package systems

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/thomasza92/redeemer/assets"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Viewport culling skips the matrix math and draw calls for entities
// that are currently off-screen. A small padding prevents sprites from
// popping in and out at the edges.

// DrawAnimated renders every entity with an Animation component at its
// current frame. Sprite sheets are loaded from disk the first time a
// clip is drawn and cached per frame after that.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Culling bounds
	padding := 64.0
	minX := camera.Position.X - float64(width)/2 - padding
	maxX := camera.Position.X + float64(width)/2 + padding
	minY := camera.Position.Y - float64(height)/2 - padding
	maxY := camera.Position.Y + float64(height)/2 + padding

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)

		// Viewport Culling
		if o.X+o.W < minX || o.X > maxX || o.Y+o.H < minY || o.Y > maxY {
			return
		}

		animData := components.Animation.Get(e)

		img := currentFrameImage(animData)
		if img == nil {
			drawFallbackRect(screen, e, o, camera, width, height)
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		// Anchor at bottom-center so feet line up with the collision box.
		drawOp.GeoM.Translate(-float64(animData.FrameWidth)/2, -float64(animData.FrameHeight))

		// Flip the sprite if facing left.
		if e.HasComponent(components.Actor) {
			actor := components.Actor.Get(e)
			if !actor.FacingRight() {
				drawOp.GeoM.Scale(-1, 1)
			}
		}

		// Bottom-center of sprite at bottom-center of collision box.
		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H)

		// Apply the camera translation.
		drawOp.GeoM.Translate(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)

		// Stunned actors tint red; corpses fade out over their lifetime.
		if e.HasComponent(components.Stun) {
			drawOp.ColorScale.Scale(1, 0.5, 0.5, 1)
		}
		if e.HasComponent(components.Death) {
			death := components.Death.Get(e)
			alpha := float32(death.Timer.Remaining() / death.Timer.Duration)
			drawOp.ColorScale.ScaleAlpha(alpha)
		}

		screen.DrawImage(img, drawOp)
	})
}

// currentFrameImage resolves the sprite for the playing clip's frame,
// loading and caching the sheet on first use.
func currentFrameImage(animData *components.AnimationData) *ebiten.Image {
	if animData.CurrentAnimation == nil || animData.SheetKey == "" {
		return nil
	}

	frame := animData.CurrentAnimation.Frame()
	clip := animData.CurrentClip

	if frames, ok := animData.CachedFrames[clip]; ok {
		if img := frames[frame]; img != nil {
			return img
		}
	}

	sx := frame * animData.FrameWidth
	srcRect := image.Rect(sx, 0, sx+animData.FrameWidth, animData.FrameHeight)
	img := assets.GetFrame(animData.SheetKey, clip, frame, srcRect)

	if animData.CachedFrames == nil {
		animData.CachedFrames = make(map[cfg.ClipID]map[int]*ebiten.Image)
	}
	if animData.CachedFrames[clip] == nil {
		animData.CachedFrames[clip] = make(map[int]*ebiten.Image)
	}
	animData.CachedFrames[clip][frame] = img

	return img
}

// drawFallbackRect draws a colored rectangle for entities with no
// usable sprite, so a missing asset is visible instead of invisible.
func drawFallbackRect(screen *ebiten.Image, e *donburi.Entry, o *components.ObjectData, camera *components.CameraData, width, height int) {
	var entityColor color.Color = cfg.LightRed
	if e.HasComponent(components.Player) {
		entityColor = cfg.Blue
	}
	if e.HasComponent(components.Physics) && components.Physics.Get(e).OnGround == nil {
		entityColor = cfg.Purple
	}

	screenX := float64(width)/2 - camera.Position.X + o.X
	screenY := float64(height)/2 - camera.Position.Y + o.Y
	vector.DrawFilledRect(screen, float32(screenX), float32(screenY), float32(o.W), float32(o.H), entityColor, false)
}

// DrawHealthBars draws the overhead bar for entities recently hit.
func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Health) || !e.HasComponent(components.Object) {
			return
		}
		bar := components.HealthBar.Get(e)
		if bar.TimeToLive <= 0 {
			return
		}
		o := components.Object.Get(e)
		hp := components.Health.Get(e)

		barWidth := 32.0
		barHeight := 4.0
		barX := o.X + (o.W-barWidth)/2
		barY := o.Y - barHeight - 4

		healthPercentage := hp.Current / hp.Max

		drawX := barX + float64(width)/2 - camera.Position.X
		drawY := barY + float64(height)/2 - camera.Position.Y

		vector.DrawFilledRect(screen, float32(drawX), float32(drawY), float32(barWidth), float32(barHeight), cfg.Red, false)
		vector.DrawFilledRect(screen, float32(drawX), float32(drawY), float32(barWidth*healthPercentage), float32(barHeight), cfg.Green, false)
	})
}

func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		sprite := components.Sprite.Get(e)
		if sprite.Image == nil {
			return
		}

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()

		drawOp.GeoM.Translate(-sprite.PivotX, -sprite.PivotY)
		drawOp.GeoM.Rotate(sprite.Rotation)
		drawOp.GeoM.Translate(o.X+o.W/2, o.Y+o.H/2)
		drawOp.GeoM.Translate(float64(width)/2-camera.Position.X, float64(height)/2-camera.Position.Y)

		screen.DrawImage(sprite.Image, drawOp)
	})
}
