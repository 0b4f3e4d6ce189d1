package components

import (
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for
// all actions, plus the resolved analog movement axis. JustPressed and
// JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Axis            float64               // resolved horizontal axis in [-1, 1]
	LastInputMethod InputMethod           // Most recently used input method
}

// Action returns the temporal state of a logical action.
func (i *InputData) Action(id cfg.ActionID) ActionState {
	return ActionState{
		Pressed:      i.Current[id],
		JustPressed:  i.Current[id] && !i.Previous[id],
		JustReleased: !i.Current[id] && i.Previous[id],
	}
}

var Input = donburi.NewComponentType[InputData]()
