package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// MeleeRayData configures an actor's melee reach: a horizontal ray cast
// from an offset on the actor, mirrored by facing. The ray is re-aimed
// every tick while a swing is active.
type MeleeRayData struct {
	OffsetX float64 // from actor center, mirrored when facing left
	OffsetY float64
	Length  float64
	MaxHits int
	Damage  float64
	Solid   bool // when set, targets behind solid geometry are not hit

	// OncePerSwing deduplicates hits per target for the swing's
	// lifetime. When off, every tick the ray overlaps a target emits
	// another hit.
	OncePerSwing bool

	TargetTag string // resolv tag of valid targets

	// Ray is the thin probe object registered in the collision space.
	Ray *resolv.Object

	// HitEntities records targets already struck during the current
	// swing so a multi-tick swing damages each target once.
	HitEntities map[donburi.Entity]struct{}
}

// BeginSwing clears the per-swing hit memory.
func (m *MeleeRayData) BeginSwing() {
	m.HitEntities = make(map[donburi.Entity]struct{})
}

// AlreadyHit reports whether the target was struck this swing.
func (m *MeleeRayData) AlreadyHit(e donburi.Entity) bool {
	_, ok := m.HitEntities[e]
	return ok
}

// MarkHit records a struck target for the rest of the swing.
func (m *MeleeRayData) MarkHit(e donburi.Entity) {
	if m.HitEntities == nil {
		m.HitEntities = make(map[donburi.Entity]struct{})
	}
	m.HitEntities[e] = struct{}{}
}

var MeleeRay = donburi.NewComponentType[MeleeRayData]()
