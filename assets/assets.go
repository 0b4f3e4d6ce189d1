package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"path/filepath"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
	"gopkg.in/yaml.v3"

	"github.com/thomasza92/redeemer/assets/animations"
	"github.com/thomasza92/redeemer/config"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:classes
	classFS embed.FS

	//go:embed all:sheets
	sheetFS embed.FS
)

type PlayerSpawn struct {
	X float64
	Y float64
}

type EnemySpawn struct {
	X          float64
	Y          float64
	ClassName  string
	PatrolSpan float64 // half-width of the patrol band; 0 means the default
}

type SolidRect struct {
	X, Y, Width, Height float64
}

// PlatformRect is a one-way platform: solid from above only.
type PlatformRect struct {
	X, Y, Width, Height float64
}

// FloatingPlatformRect moves vertically on a tween loop.
type FloatingPlatformRect struct {
	X, Y, Width, Height float64
	Travel              float64 // pixels of upward travel
	Period              float64 // seconds for one leg of the trip
}

type DeadZone struct {
	X, Y, Width, Height float64
}

// SpawnRegion is a band the periodic spawner may place enemies in.
type SpawnRegion struct {
	X, Y, Width, Height float64
}

type Level struct {
	Background        *ebiten.Image
	Solids            []SolidRect
	Platforms         []PlatformRect
	FloatingPlatforms []FloatingPlatformRect
	PlayerSpawns      []PlayerSpawn
	EnemySpawns       []EnemySpawn
	DeadZones         []DeadZone
	SpawnRegions      []SpawnRegion
	Name              string
	Width             int
	Height            int
}

type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) MustLoadLevels() []Level {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		panic(fmt.Sprintf("Failed to read levels directory: %v", err))
	}

	var levels []Level
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			levelPath := filepath.Join("levels", entry.Name())
			level := l.MustLoadLevel(levelPath)
			levels = append(levels, level)
		}
	}

	if len(levels) == 0 {
		panic("No level files found in assets/levels directory")
	}

	return levels
}

func (l *LevelLoader) MustLoadLevel(levelPath string) Level {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(assetFS))
	if err != nil {
		panic(err)
	}

	level := Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Collision":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, SolidRect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "Platforms":
			for _, o := range og.Objects {
				level.Platforms = append(level.Platforms, PlatformRect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "FloatingPlatforms":
			for _, o := range og.Objects {
				travel := o.Properties.GetFloat("travel")
				if travel == 0 {
					travel = 128
				}
				period := o.Properties.GetFloat("period")
				if period == 0 {
					period = 2
				}
				level.FloatingPlatforms = append(level.FloatingPlatforms, FloatingPlatformRect{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
					Travel: travel,
					Period: period,
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{
					X: o.X,
					Y: o.Y,
				})
			}
			sort.Slice(level.PlayerSpawns, func(i, j int) bool {
				return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
			})
		case "EnemySpawn":
			for _, o := range og.Objects {
				className := o.Properties.GetString("class")
				patrolSpan := o.Properties.GetFloat("patrolSpan")
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:          o.X,
					Y:          o.Y,
					ClassName:  className,
					PatrolSpan: patrolSpan,
				})
			}
		case "DeadZones":
			for _, o := range og.Objects {
				level.DeadZones = append(level.DeadZones, DeadZone{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		case "SpawnRegions":
			for _, o := range og.Objects {
				level.SpawnRegions = append(level.SpawnRegions, SpawnRegion{
					X:      o.X,
					Y:      o.Y,
					Width:  o.Width,
					Height: o.Height,
				})
			}
		}
	}

	level.Background = renderImageLayers(levelMap)

	return level
}

// renderImageLayers composites the level's image layers into a single
// background. Returns nil when the map has none, which also keeps level
// parsing usable without a display.
func renderImageLayers(levelMap *tiled.Map) *ebiten.Image {
	var background *ebiten.Image
	for _, imgLayer := range levelMap.ImageLayers {
		shouldRender := imgLayer.Properties.GetBool("render")
		if !shouldRender || imgLayer.Image == nil {
			continue
		}

		imgPath := filepath.Join("levels", imgLayer.Image.Source)
		imgBytes, err := assetFS.ReadFile(imgPath)
		if err != nil {
			fmt.Printf("Warning: Failed to load image layer %s: %v\n", imgLayer.Name, err)
			continue
		}

		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
		if err != nil {
			fmt.Printf("Warning: Failed to decode image layer %s: %v\n", imgLayer.Name, err)
			continue
		}

		opacity := imgLayer.Opacity
		if opacity <= 0 {
			img.Deallocate()
			continue
		}

		if background == nil {
			background = ebiten.NewImage(levelMap.Width*levelMap.TileWidth, levelMap.Height*levelMap.TileHeight)
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(imgLayer.OffsetX), float64(imgLayer.OffsetY))
		op.ColorScale.ScaleAlpha(float32(opacity))
		background.DrawImage(img, op)
		img.Deallocate()
	}
	return background
}

// LoadClass reads and validates a class manifest from assets/classes.
func LoadClass(name string) (*config.Class, error) {
	data, err := classFS.ReadFile(filepath.Join("classes", name))
	if err != nil {
		return nil, fmt.Errorf("read class manifest %s: %w", name, err)
	}
	var class config.Class
	if err := yaml.Unmarshal(data, &class); err != nil {
		return nil, fmt.Errorf("parse class manifest %s: %w", name, err)
	}
	if err := class.Validate(); err != nil {
		return nil, fmt.Errorf("class manifest %s: %w", name, err)
	}
	return &class, nil
}

// MustLoadClass is LoadClass for startup paths where a broken manifest
// should stop the game immediately.
func MustLoadClass(name string) *config.Class {
	class, err := LoadClass(name)
	if err != nil {
		panic(err)
	}
	return class
}

// ClipDef is one clip entry in a sheet manifest.
type ClipDef struct {
	First    int     `yaml:"first"`
	Last     int     `yaml:"last"`
	Step     int     `yaml:"step"`
	Speed    float32 `yaml:"speed"` // ticks per frame
	Freeze   bool    `yaml:"freeze"`
	Duration float64 `yaml:"duration"` // seconds; 0 derives from frame count
}

// SheetManifest describes one sprite sheet directory: frame geometry
// plus the clips it provides, keyed by clip name.
type SheetManifest struct {
	Key         string             `yaml:"key"`
	FrameWidth  int                `yaml:"frame_width"`
	FrameHeight int                `yaml:"frame_height"`
	Clips       map[string]ClipDef `yaml:"clips"`
}

// LoadSheetManifest reads a sheet manifest from assets/sheets.
func LoadSheetManifest(name string) (*SheetManifest, error) {
	data, err := sheetFS.ReadFile(filepath.Join("sheets", name))
	if err != nil {
		return nil, fmt.Errorf("read sheet manifest %s: %w", name, err)
	}
	var m SheetManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse sheet manifest %s: %w", name, err)
	}
	if m.Key == "" {
		return nil, fmt.Errorf("sheet manifest %s: missing key", name)
	}
	for clipName := range m.Clips {
		if _, ok := config.ClipNames[clipName]; !ok {
			return nil, fmt.Errorf("sheet manifest %s: unknown clip %q", name, clipName)
		}
	}
	return &m, nil
}

// MustLoadSheetManifest panics on a broken manifest.
func MustLoadSheetManifest(name string) *SheetManifest {
	m, err := LoadSheetManifest(name)
	if err != nil {
		panic(err)
	}
	return m
}

// BuildClips resolves a manifest into per-clip animations and durations.
// Missing slots are left absent so animation selection can fall back.
func (m *SheetManifest) BuildClips() (map[config.ClipID]*animations.Animation, map[config.ClipID]float64) {
	clips := make(map[config.ClipID]*animations.Animation, len(m.Clips))
	durations := make(map[config.ClipID]float64, len(m.Clips))
	for name, def := range m.Clips {
		id := config.ClipNames[name]
		step := def.Step
		if step <= 0 {
			step = 1
		}
		speed := def.Speed
		if speed <= 0 {
			speed = float32(config.Animation.DefaultSpeed)
		}
		anim := animations.NewAnimation(def.First, def.Last, step, speed)
		anim.FreezeOnComplete = def.Freeze
		clips[id] = anim

		d := def.Duration
		if d == 0 {
			frames := (def.Last-def.First)/step + 1
			d = float64(frames) * float64(speed) * config.TickDelta
		}
		durations[id] = d
	}
	return clips, durations
}

type AnimationLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *AnimationLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image for a specific animation frame.
// This prevents creating duplicate *ebiten.Image structs for the same frame.
func (l *AnimationLoader) GetFrame(dir string, clip config.ClipID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, clip.String(), frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	sheet := GetSheet(dir, clip)
	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

var animationLoader = NewAnimationLoader()

// GetSheet loads the sprite sheet image for a clip from the on-disk
// assets directory.
func GetSheet(dir string, clip config.ClipID) *ebiten.Image {
	path := fmt.Sprintf("assets/images/spritesheets/%s/%s.png", dir, clip.String())
	return animationLoader.MustLoadImage(path)
}

func GetFrame(dir string, clip config.ClipID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	return animationLoader.GetFrame(dir, clip, frameIndex, srcRect)
}
