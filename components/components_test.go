package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"

	"github.com/thomasza92/redeemer/assets/animations"
	"github.com/thomasza92/redeemer/config"
)

func TestTimerFinishes(t *testing.T) {
	timer := NewTimer(0.5)
	assert.False(t, timer.Finished())
	assert.InDelta(t, 0.5, timer.Remaining(), 1e-9)

	for i := 0; i < 29; i++ {
		timer.Tick(config.TickDelta)
	}
	assert.False(t, timer.Finished())

	timer.Tick(config.TickDelta)
	assert.True(t, timer.Finished())
	assert.Equal(t, 0.0, timer.Remaining())
}

func TestTimerZeroDurationIsAlreadyFinished(t *testing.T) {
	timer := NewTimer(0)
	assert.True(t, timer.Finished())
}

func TestTimerReset(t *testing.T) {
	timer := NewTimer(0.1)
	timer.Tick(0.2)
	assert.True(t, timer.Finished())

	timer.Reset(0.3)
	assert.False(t, timer.Finished())
	assert.Equal(t, 0.0, timer.Elapsed)
	assert.Equal(t, 0.3, timer.Duration)
}

func TestHealthDamagedAndDead(t *testing.T) {
	h := HealthData{Current: 40, Max: 40, Last: 40}
	assert.False(t, h.Damaged())
	assert.False(t, h.Dead())

	h.Current = 22
	assert.True(t, h.Damaged())
	assert.False(t, h.Dead())

	h.Last = h.Current
	assert.False(t, h.Damaged())

	h.Current = 0
	assert.True(t, h.Dead())
}

func TestMeleeRayHitMemory(t *testing.T) {
	m := MeleeRayData{}
	target := donburi.Entity(42)

	// MarkHit on a nil map initializes it.
	m.MarkHit(target)
	assert.True(t, m.AlreadyHit(target))
	assert.False(t, m.AlreadyHit(donburi.Entity(7)))

	m.BeginSwing()
	assert.False(t, m.AlreadyHit(target))
}

func TestSetClipRestartsOnlyOnChange(t *testing.T) {
	idle := animations.NewAnimation(0, 5, 1, 1)
	walk := animations.NewAnimation(0, 7, 1, 1)
	anim := AnimationData{
		Animations: map[config.ClipID]*animations.Animation{
			config.ClipIdle: idle,
			config.ClipWalk: walk,
		},
	}

	anim.SetClip(config.ClipWalk)
	assert.Equal(t, config.ClipWalk, anim.CurrentClip)
	assert.Same(t, walk, anim.CurrentAnimation)

	// Advance past the first frame, then re-set the same clip: the
	// playing animation must not restart.
	for i := 0; i < 4; i++ {
		anim.CurrentAnimation.Update()
	}
	frame := anim.CurrentAnimation.Frame()
	assert.Greater(t, frame, 0)

	anim.SetClip(config.ClipWalk)
	assert.Equal(t, frame, anim.CurrentAnimation.Frame())

	// Switching clips restarts the new one from its first frame.
	anim.SetClip(config.ClipIdle)
	assert.Same(t, idle, anim.CurrentAnimation)
	assert.Equal(t, 0, anim.CurrentAnimation.Frame())
}

func TestSetClipMissingClipClearsCurrent(t *testing.T) {
	anim := AnimationData{
		Animations: map[config.ClipID]*animations.Animation{
			config.ClipIdle: animations.NewAnimation(0, 5, 1, 1),
		},
	}
	anim.SetClip(config.ClipIdle)
	anim.SetClip(config.ClipJump)
	assert.Nil(t, anim.CurrentAnimation)
	assert.Equal(t, config.ClipJump, anim.CurrentClip)
}

func TestAnimationDuration(t *testing.T) {
	anim := AnimationData{Durations: map[config.ClipID]float64{config.ClipDie: 1.0}}
	assert.Equal(t, 1.0, anim.Duration(config.ClipDie))
	assert.Equal(t, 0.0, anim.Duration(config.ClipJump))

	var empty AnimationData
	assert.Equal(t, 0.0, empty.Duration(config.ClipIdle))
}
