package components

import "github.com/yohamta/donburi"

// SpawnerData drives the periodic enemy spawner. The timer repeats:
// each time it finishes the spawner attempts a placement and the timer
// restarts regardless of whether the attempt succeeded.
type SpawnerData struct {
	Timer Timer
}

var Spawner = donburi.NewComponentType[SpawnerData]()
