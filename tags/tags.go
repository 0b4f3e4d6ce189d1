package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Enemy            = donburi.NewTag().SetName("Enemy")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Wall             = donburi.NewTag().SetName("Wall")
	MeleeRay         = donburi.NewTag().SetName("MeleeRay")
	Spawner          = donburi.NewTag().SetName("Spawner")
)

// Resolv tags for physics collision
const (
	ResolvSolid    = "solid"
	ResolvPlatform = "platform"
	ResolvPlayer   = "Player"
	ResolvEnemy    = "Enemy"
	ResolvRay      = "ray"
	ResolvDeadZone = "deadzone"
)
