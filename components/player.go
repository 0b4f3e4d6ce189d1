package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	LastSafeX float64 // Last position where player was safely grounded
	LastSafeY float64
}

var Player = donburi.NewComponentType[PlayerData]()
