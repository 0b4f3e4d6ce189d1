package config

// LocomotionID identifies the single active locomotion state of an actor.
// Exactly one is held per living actor at all times.
type LocomotionID int

const (
	LocIdle LocomotionID = iota
	LocWalking
	LocRunning
	LocJumping
	LocSprintJumping
	LocFalling
)

func (l LocomotionID) String() string {
	switch l {
	case LocIdle:
		return "Idle"
	case LocWalking:
		return "Walking"
	case LocRunning:
		return "Running"
	case LocJumping:
		return "Jumping"
	case LocSprintJumping:
		return "SprintJumping"
	case LocFalling:
		return "Falling"
	}
	return "Unknown"
}

// Grounded reports whether the state is one of the on-ground states.
func (l LocomotionID) Grounded() bool {
	return l == LocIdle || l == LocWalking || l == LocRunning
}

// AttackKind identifies the attack overlay variant. It mirrors the
// locomotion state that was active when the swing started, and follows
// the actor across grounded locomotion changes mid-swing.
type AttackKind int

const (
	AttackNone AttackKind = iota
	AttackIdle
	AttackWalking
	AttackRunning
	AttackJumping
	AttackFalling
)

func (a AttackKind) String() string {
	switch a {
	case AttackIdle:
		return "IdleAttack"
	case AttackWalking:
		return "WalkingAttack"
	case AttackRunning:
		return "RunningAttack"
	case AttackJumping:
		return "JumpingAttack"
	case AttackFalling:
		return "FallingAttack"
	}
	return "NoAttack"
}

// AttackKindFor maps a locomotion state to its attack overlay variant.
// Sprint jumps share the jumping swing.
func AttackKindFor(l LocomotionID) AttackKind {
	switch l {
	case LocIdle:
		return AttackIdle
	case LocWalking:
		return AttackWalking
	case LocRunning:
		return AttackRunning
	case LocJumping, LocSprintJumping:
		return AttackJumping
	case LocFalling:
		return AttackFalling
	}
	return AttackIdle
}

// ClipID identifies an animation clip within an actor's sheet. Clips are
// resolved from sheet manifests once at load time; a zero slot in an
// AnimationSet means the sheet does not provide that clip and selection
// falls back along a fixed chain.
type ClipID int

const (
	ClipNone ClipID = iota
	ClipIdle
	ClipWalk
	ClipRun
	ClipJump
	ClipFall
	ClipAttackIdle
	ClipAttackWalk
	ClipAttackRun
	ClipAttackJump
	ClipAttackFall
	ClipHit
	ClipDie
	ClipCount // must be last
)

// ClipNames maps manifest keys to clip ids.
var ClipNames = map[string]ClipID{
	"idle":        ClipIdle,
	"walk":        ClipWalk,
	"run":         ClipRun,
	"jump":        ClipJump,
	"fall":        ClipFall,
	"attack_idle": ClipAttackIdle,
	"attack_walk": ClipAttackWalk,
	"attack_run":  ClipAttackRun,
	"attack_jump": ClipAttackJump,
	"attack_fall": ClipAttackFall,
	"hit":         ClipHit,
	"die":         ClipDie,
}

func (c ClipID) String() string {
	for name, id := range ClipNames {
		if id == c {
			return name
		}
	}
	return "none"
}
