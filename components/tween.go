package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween holds the movement sequence of a floating platform.
var Tween = donburi.NewComponentType[gween.Sequence]()
