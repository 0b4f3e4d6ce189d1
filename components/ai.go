package components

import "github.com/yohamta/donburi"

// SensesData is the per-tick perception snapshot an enemy takes of the
// player. It is written once per tick by the perception pass and read
// by scorers and actions; no AI code queries the player directly.
type SensesData struct {
	HasTarget bool
	TargetX   float64
	TargetY   float64
	Dx        float64 // target x minus self x
	Dist      float64 // absolute horizontal distance
}

var Senses = donburi.NewComponentType[SensesData]()

// BehaviorID identifies an AI behavior candidate.
type BehaviorID int

const (
	BehaviorPatrol BehaviorID = iota
	BehaviorChase
	BehaviorAttack
)

func (b BehaviorID) String() string {
	switch b {
	case BehaviorChase:
		return "Chase"
	case BehaviorAttack:
		return "Attack"
	}
	return "Patrol"
}

// BrainData holds the scored behavior selection. Scores are recomputed
// every tick; Current is the highest scorer above threshold, with ties
// broken by priority order Attack > Chase > Patrol.
type BrainData struct {
	Current BehaviorID
	Scores  [3]float64
}

var Brain = donburi.NewComponentType[BrainData]()

// PatrolData bounds an enemy's idle wandering around its spawn point.
// Dir is +1 or -1.
type PatrolData struct {
	Left  float64
	Right float64
	Dir   float64
}

var Patrol = donburi.NewComponentType[PatrolData]()
