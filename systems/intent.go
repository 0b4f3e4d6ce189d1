package systems

import (
	"github.com/thomasza92/redeemer/components"
	cfg "github.com/thomasza92/redeemer/config"
	"github.com/thomasza92/redeemer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerIntent translates the resolved device state into the
// player's IntentData. Enemy intents are written by the AI action pass;
// downstream locomotion and attack systems cannot tell the two apart.
func UpdatePlayerIntent(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		intent := components.Intent.Get(e)

		// A dead or paused player produces no intent.
		if e.HasComponent(components.Death) {
			*intent = components.IntentData{}
			return
		}

		intent.Axis = input.Axis
		intent.Sprint = input.Action(cfg.ActionSprint).Pressed
		intent.JumpPressed = input.Action(cfg.ActionJump).JustPressed
		intent.AttackPressed = input.Action(cfg.ActionAttack).JustPressed
	})
}
