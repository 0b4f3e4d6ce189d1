package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/thomasza92/redeemer/assets/animations"
	"github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
)

// AnimationData holds an actor's resolved clip table. Clips are bound
// once at spawn from a sheet manifest; a missing slot means the sheet
// has no clip for that id and selection falls back along a fixed chain.
// SpriteSheets may be nil when running without a display.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentClip      config.ClipID
	Animations       map[config.ClipID]*animations.Animation
	Durations        map[config.ClipID]float64 // seconds, from the manifest

	SheetKey     string // spritesheet directory under assets/images/spritesheets
	SpriteSheets map[config.ClipID]*ebiten.Image
	CachedFrames map[config.ClipID]map[int]*ebiten.Image // Pre-calculated subimages keyed by frame index
	FrameWidth   int
	FrameHeight  int
}

// SetClip switches to the given clip if it differs from the one playing.
// Switching restarts the clip; setting the already-active clip is a
// no-op so a looping animation is never reset mid-cycle.
func (a *AnimationData) SetClip(clip config.ClipID) {
	if a.CurrentClip == clip && (a.CurrentAnimation != nil || a.Animations[clip] == nil) {
		return
	}

	anim, ok := a.Animations[clip]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentClip = clip
			a.CurrentAnimation.Restart()
		}
	} else {
		// No animation for this clip, clear current
		a.CurrentAnimation = nil
		a.CurrentClip = clip
	}
}

// Duration returns the manifest duration for a clip, or 0 when absent.
func (a *AnimationData) Duration(clip config.ClipID) float64 {
	if a.Durations == nil {
		return 0
	}
	return a.Durations[clip]
}

var Animation = donburi.NewComponentType[AnimationData]()
