package components

import "github.com/yohamta/donburi"

// HealthData tracks an actor's health pool. Current is only mutated by
// the damage resolution pass and never goes below zero. Last is the
// snapshot the impact pass compares against to detect a hit landing
// this tick; the impact pass updates it after diffing.
type HealthData struct {
	Current float64
	Max     float64
	Last    float64
}

// Damaged reports whether health strictly decreased since the last
// impact pass.
func (h *HealthData) Damaged() bool {
	return h.Current < h.Last
}

// Dead reports whether the pool is empty.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

type HealthBarData struct {
	// TimeToLive is the seconds the overhead bar stays visible.
	TimeToLive float64
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
