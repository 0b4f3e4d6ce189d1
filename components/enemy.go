package components

import "github.com/yohamta/donburi"

// EnemyData records where an enemy entered the world. Patrol bounds are
// derived from the spawn point and stored in PatrolData.
type EnemyData struct {
	SpawnX float64
	SpawnY float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
