package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// TickDelta is the fixed simulation timestep in seconds. All timers and
// velocities are expressed in seconds and pixels-per-second respectively.
const TickDelta = 1.0 / 60.0

// Default is the ECS layer all gameplay entities and renderers live on.
const Default ecs.LayerID = 0

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels/second)
	WalkSpeed        float64
	SprintMultiplier float64
	Acceleration     float64
	JumpSpeed        float64
	SprintJumpBonus  float64

	// Input thresholds
	AxisThreshold float64 // |axis| below this counts as no movement intent
	StopSpeed     float64 // actual speed below this counts as stopped

	// Combat
	AttackCooldown float64 // seconds, restarted when a swing completes
	MeleeOffsetX   float64
	MeleeOffsetY   float64
	MeleeRange     float64
	MeleeMaxHits   int

	// Class
	ClassFile string // YAML class manifest under assets/classes

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// EnemyConfig contains enemy AI and combat configuration
type EnemyConfig struct {
	// Movement (pixels/second)
	WalkSpeed    float64
	RunSpeed     float64
	Acceleration float64

	// Perception
	AggroRange       float64 // horizontal distance to acquire the player
	MaxVerticalAggro float64 // ignore targets further above/below than this

	// Attack
	AttackRange    float64 // melee ray length
	AttackBand     float64 // extra slack beyond ray length for the scorer
	SwingDuration  float64 // seconds
	AttackCooldown float64 // seconds, restarted only on natural swing completion
	MeleeDamage    float64
	MeleeOffsetX   float64
	MeleeOffsetY   float64
	MeleeMaxHits   int

	// Patrol
	PatrolSpan    float64 // half-width of the patrol band around the spawn point
	TurnTolerance float64 // distance from a patrol bound at which to turn around

	// Class
	ClassFile string

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  int
	CollisionHeight int
}

// CombatConfig contains shared combat resolution values
type CombatConfig struct {
	StunDuration   float64 // seconds of hitstun on a non-lethal hit
	DeathDuration  float64 // seconds the corpse lingers before despawn
	KnockbackSpeed float64 // horizontal impulse when a class sets no knockback
	KnockbackPop   float64 // upward impulse on knockback

	// Clamps applied to class-file stats at load time
	MaxDefense         float64
	MaxKnockbackResist float64

	// Health bar display
	HealthBarDuration float64 // seconds the overhead bar stays visible after a hit
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Gravity ramps up the longer an actor falls:
	// g(t) = base + (max-base) * (1 - e^(-k*t))
	Gravity        float64 // base, pixels/second^2
	MaxFallGravity float64
	FallGravityK   float64

	MaxFallSpeed float64
	Friction     float64 // horizontal damping when no movement intent

	// Landing detection tolerates a small residual upward velocity so
	// shallow bounces still register as landings.
	LandingTolerance float64
}

// SpawnerConfig contains periodic enemy spawner configuration
type SpawnerConfig struct {
	Interval    float64 // seconds between spawn attempts
	MaxAttempts int     // random placement attempts per cycle
	MaxAlive    int     // stop spawning above this enemy count
	GroundProbe float64 // downward probe distance when validating a spawn point
	SpawnHeight float64 // height above ground to place the new enemy
	EdgeMargin  float64 // keep spawn points this far from level bounds
}

// AnimationConfig contains animation playback configuration
type AnimationConfig struct {
	DefaultSpeed int // ticks per frame when a sheet manifest omits one
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // how fast camera follows the player (0.0-1.0)
	LookAheadDistanceX      float64 // max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // how fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // minimum speed to update look-ahead
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64

	HealthBarBgColor [4]uint8
	HealthBarFgColor [4]uint8
	HUDTextColor     [4]uint8

	HUDFontSize   float64
	DebugFontSize float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu    bool // skip menu and go directly to the game
	DrawRays    bool // draw melee rays and collision shapes
	ShowMetrics bool // TPS/entity counts overlay
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Combat CombatConfig
var Physics PhysicsConfig
var Spawner SpawnerConfig
var Animation AnimationConfig
var Camera CameraConfig
var UI UIConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 50, G: 80, B: 255, A: 255}
	Purple       = color.RGBA{R: 160, G: 60, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for actor facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Physics = PhysicsConfig{
		Gravity:        1000.0,
		MaxFallGravity: 2200.0,
		FallGravityK:   3.0,

		MaxFallSpeed:     900.0,
		Friction:         2000.0,
		LandingTolerance: 20.0,
	}

	Player = PlayerConfig{
		WalkSpeed:        250.0,
		SprintMultiplier: 1.5,
		Acceleration:     3000.0,
		JumpSpeed:        520.0,
		SprintJumpBonus:  60.0,

		AxisThreshold: 0.5,
		StopSpeed:     10.0,

		AttackCooldown: 0.15,
		MeleeOffsetX:   16.0,
		MeleeOffsetY:   8.0,
		MeleeRange:     46.0,
		MeleeMaxHits:   3,

		ClassFile: "redeemer.yaml",

		FrameWidth:      96,
		FrameHeight:     84,
		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	Enemy = EnemyConfig{
		WalkSpeed:    50.0,
		RunSpeed:     200.0,
		Acceleration: 3000.0,

		AggroRange:       260.0,
		MaxVerticalAggro: 144.0,

		AttackRange:    46.0,
		AttackBand:     24.0,
		SwingDuration:  0.35,
		AttackCooldown: 0.60,
		MeleeDamage:    20.0,
		MeleeOffsetX:   16.0,
		MeleeOffsetY:   8.0,
		MeleeMaxHits:   1,

		PatrolSpan:    100.0,
		TurnTolerance: 4.0,

		ClassFile: "footman.yaml",

		FrameWidth:      96,
		FrameHeight:     84,
		CollisionWidth:  16,
		CollisionHeight: 40,
	}

	Combat = CombatConfig{
		StunDuration:   0.40,
		DeathDuration:  1.0,
		KnockbackSpeed: 260.0,
		KnockbackPop:   180.0,

		MaxDefense:         0.95,
		MaxKnockbackResist: 0.95,

		HealthBarDuration: 3.0,
	}

	Spawner = SpawnerConfig{
		Interval:    5.0,
		MaxAttempts: 8,
		MaxAlive:    6,
		GroundProbe: 480.0,
		SpawnHeight: 24.0,
		EdgeMargin:  48.0,
	}

	Animation = AnimationConfig{
		DefaultSpeed: 5,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 6.0,
	}

	UI = UIConfig{
		HealthBarWidth:  120.0,
		HealthBarHeight: 10.0,
		HealthBarMargin: 8.0,

		HealthBarBgColor: [4]uint8{40, 40, 40, 255},
		HealthBarFgColor: [4]uint8{200, 40, 40, 255},
		HUDTextColor:     [4]uint8{255, 255, 255, 255},

		HUDFontSize:   16,
		DebugFontSize: 12,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 15, B: 25, A: 255},
		TitleColor:        BrightOrange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuItemGap:       15,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	Debug = DebugConfig{}
}
