package paging

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 0.01

// Default spring parameters for [NewSnap].
const (
	DefaultFPS       = 60
	DefaultFrequency = 7.0
	DefaultDamping   = 0.85
)

// Snap animates the strip offset from where a gesture left it to the resting
// offset of the committed page.
//
// Snap is driven by the caller, one [Snap.Step] per frame.
type Snap struct {
	spring   harmonica.Spring
	position float64
	velocity float64
	target   float64
	active   bool
}

// NewSnap creates a [Snap] stepped at fps frames per second. Non-positive
// arguments fall back to the defaults.
func NewSnap(fps int, frequency, damping float64) Snap {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if frequency <= 0 {
		frequency = DefaultFrequency
	}
	if damping <= 0 {
		damping = DefaultDamping
	}

	return Snap{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// Start begins an animation from one offset to another. Starting while an
// animation is running keeps the current velocity.
func (s *Snap) Start(from, to float64) {
	if !s.active {
		s.velocity = 0
	}

	s.position = from
	s.target = to
	s.active = !settled(from, to, s.velocity)

	if !s.active {
		s.position = to
		s.velocity = 0
	}
}

// Step advances the animation by one frame. It returns false once the offset
// has settled on the target.
func (s *Snap) Step() bool {
	if !s.active {
		return false
	}

	s.position, s.velocity = s.spring.Update(s.position, s.velocity, s.target)

	if settled(s.position, s.target, s.velocity) {
		s.Stop()

		return false
	}

	return true
}

// Stop jumps to the target and ends the animation.
func (s *Snap) Stop() {
	s.position = s.target
	s.velocity = 0
	s.active = false
}

// Position returns the current animated offset.
func (s *Snap) Position() float64 {
	return s.position
}

// Target returns the offset the animation is heading to.
func (s *Snap) Target() float64 {
	return s.target
}

// Active reports whether the animation is still running.
func (s *Snap) Active() bool {
	return s.active
}

func settled(pos, target, vel float64) bool {
	return math.Abs(pos-target) < settleEpsilon && math.Abs(vel) < settleEpsilon
}
