package factory

import (
	"github.com/thomasza92/redeemer/assets"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
)

// GenerateAnimations builds an AnimationData from a sheet manifest.
// Only the clip table and durations are resolved here; sprite sheet
// images are loaded lazily by the render path, so simulation code can
// run without a display.
func GenerateAnimations(manifestFile string) *components.AnimationData {
	manifest := assets.MustLoadSheetManifest(manifestFile)
	clips, durations := manifest.BuildClips()

	animData := &components.AnimationData{
		Animations:  clips,
		Durations:   durations,
		SheetKey:    manifest.Key,
		FrameWidth:  manifest.FrameWidth,
		FrameHeight: manifest.FrameHeight,
	}
	animData.SetClip(cfg.ClipIdle)

	return animData
}
