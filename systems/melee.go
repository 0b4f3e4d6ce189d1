package systems

import (
	"sort"

	"github.com/solarlune/resolv"
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMelee casts each swinging actor's melee ray and publishes a hit
// event per struck target, at most once per target per swing for rays
// configured with OncePerSwing. The ray
// is re-aimed from the actor's current position and facing every tick,
// so a turning actor swings where it looks. Runs after the attack pass
// (swing state is settled) and before damage resolution.
func UpdateMelee(ecs *ecs.ECS) {
	components.MeleeRay.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Attack) {
			return
		}

		m := components.MeleeRay.Get(e)
		if m.Ray == nil {
			return
		}

		actor := components.Actor.Get(e)
		obj := components.Object.Get(e)

		aimRay(m, obj, actor.FacingRight())

		check := m.Ray.Check(0, 0, m.TargetTag)
		if check == nil {
			return
		}

		originX := rayOriginX(m, obj, actor.FacingRight())

		// Solid geometry in front of the target blocks the hit.
		blockDist := -1.0
		if m.Solid {
			if solidCheck := m.Ray.Check(0, 0, tags.ResolvSolid); solidCheck != nil {
				for _, solid := range solidCheck.ObjectsByTags(tags.ResolvSolid) {
					d := distanceAlongRay(originX, solid, actor.FacingRight())
					if blockDist < 0 || d < blockDist {
						blockDist = d
					}
				}
			}
		}

		type rayHit struct {
			entry *donburi.Entry
			dist  float64
		}
		var hits []rayHit

		for _, target := range check.ObjectsByTags(m.TargetTag) {
			entry, ok := target.Data.(*donburi.Entry)
			if !ok || !entry.Valid() || entry.Entity() == e.Entity() {
				continue
			}
			if m.OncePerSwing && m.AlreadyHit(entry.Entity()) {
				continue
			}
			d := distanceAlongRay(originX, target, actor.FacingRight())
			if d > m.Length {
				continue
			}
			if blockDist >= 0 && d > blockDist {
				continue
			}
			hits = append(hits, rayHit{entry: entry, dist: d})
		}

		sort.Slice(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
		if m.MaxHits > 0 && len(hits) > m.MaxHits {
			hits = hits[:m.MaxHits]
		}

		normalX := 1.0
		if actor.FacingRight() {
			normalX = -1.0
		}

		for _, hit := range hits {
			if m.OncePerSwing {
				m.MarkHit(hit.entry.Entity())
			}
			components.MeleeHitEvent.Publish(ecs.World, components.MeleeHit{
				Attacker:  e.Entity(),
				Target:    hit.entry.Entity(),
				Damage:    m.Damage,
				Knockback: attackerKnockback(e),
				AttackerX: obj.X + obj.W/2,
				Distance:  hit.dist,
				NormalX:   normalX,
			})
		}
	})
}

// aimRay places the thin probe object along the swing direction.
func aimRay(m *components.MeleeRayData, obj *components.ObjectData, facingRight bool) {
	centerX := obj.X + obj.W/2
	centerY := obj.Y + obj.H/2

	originY := centerY - m.OffsetY
	if facingRight {
		m.Ray.X = centerX + m.OffsetX
	} else {
		m.Ray.X = centerX - m.OffsetX - m.Length
	}
	m.Ray.Y = originY - 1
	m.Ray.W = m.Length
	m.Ray.H = 2
	m.Ray.Update()
}

// rayOriginX is the x the ray is measured from.
func rayOriginX(m *components.MeleeRayData, obj *components.ObjectData, facingRight bool) float64 {
	centerX := obj.X + obj.W/2
	if facingRight {
		return centerX + m.OffsetX
	}
	return centerX - m.OffsetX
}

// distanceAlongRay measures from the ray origin to the target's near
// edge, floored at zero for targets straddling the origin.
func distanceAlongRay(originX float64, target *resolv.Object, facingRight bool) float64 {
	var d float64
	if facingRight {
		d = target.X - originX
	} else {
		d = originX - (target.X + target.W)
	}
	if d < 0 {
		return 0
	}
	return d
}

// attackerKnockback reads the attacker's class knockback stat, falling
// back to the default when the class manifest omits it.
func attackerKnockback(e *donburi.Entry) float64 {
	actor := components.Actor.Get(e)
	if actor.Class != nil && actor.Class.Stats.Knockback > 0 {
		return actor.Class.Stats.Knockback
	}
	return cfg.Combat.KnockbackSpeed
}
