package factory

import (
	"github.com/solarlune/resolv"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi/ecs"
)

// CreateDeadZone registers an invisible region that kills any actor
// touching it.
func CreateDeadZone(ecs *ecs.ECS, x, y, w, h float64) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvDeadZone)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, obj)
	return obj
}
