// Package animation drives the two-sided card flip with a damped spring.
package animation

import (
	"math"
	"time"
)

const (
	// Tension and Friction follow the origami-style spring configuration the
	// mobile client used for the flip.
	Tension  = 40.0
	Friction = 8.0

	restThreshold = 0.001
	substep       = time.Millisecond

	// MaxSettle bounds a single transition.
	MaxSettle = 1500 * time.Millisecond
)

// Stiffness converts an origami tension value to a spring stiffness.
func Stiffness(tension float64) float64 {
	return (tension-30)*3.62 + 194
}

// Damping converts an origami friction value to a spring damping factor.
func Damping(friction float64) float64 {
	return (friction-8)*3 + 25
}

// Spring animates a value in [0, 1] toward a target. Retargeting keeps the
// current value and velocity, so an interrupted flip reverses smoothly.
type Spring struct {
	stiffness float64
	damping   float64

	value    float64
	velocity float64
	target   float64
	elapsed  time.Duration
}

func NewSpring() *Spring {
	return NewSpringWith(Tension, Friction)
}

func NewSpringWith(tension, friction float64) *Spring {
	return &Spring{
		stiffness: Stiffness(tension),
		damping:   Damping(friction),
	}
}

// SetTarget starts a transition toward target from wherever the spring is.
func (s *Spring) SetTarget(target float64) {
	s.target = target
	s.elapsed = 0
}

// Step advances the simulation by dt and reports whether it has settled.
func (s *Spring) Step(dt time.Duration) bool {
	for dt > 0 && !s.Settled() {
		h := substep
		if dt < h {
			h = dt
		}
		dt -= h
		s.elapsed += h

		secs := h.Seconds()
		accel := -s.stiffness*(s.value-s.target) - s.damping*s.velocity
		s.velocity += accel * secs
		s.value += s.velocity * secs

		if s.elapsed >= MaxSettle || s.atRest() {
			s.snap()
		}
	}
	return s.Settled()
}

// Settle jumps straight to the target.
func (s *Spring) Settle() {
	s.snap()
}

func (s *Spring) Settled() bool {
	return s.value == s.target && s.velocity == 0
}

func (s *Spring) Value() float64 {
	return s.value
}

func (s *Spring) Target() float64 {
	return s.target
}

// FrontAngle is the front face rotation in degrees, 0..180.
func (s *Spring) FrontAngle() float64 {
	return s.value * 180
}

// BackAngle is the back face rotation in degrees, 180..360.
func (s *Spring) BackAngle() float64 {
	return 180 + s.value*180
}

// FrontVisible reports which face points at the viewer.
func (s *Spring) FrontVisible() bool {
	return s.value < 0.5
}

// Scale is the apparent horizontal size of the card, |cos θ|.
func (s *Spring) Scale() float64 {
	return math.Abs(math.Cos(s.value * math.Pi))
}

func (s *Spring) atRest() bool {
	return math.Abs(s.velocity) < restThreshold && math.Abs(s.value-s.target) < restThreshold
}

func (s *Spring) snap() {
	s.value = s.target
	s.velocity = 0
}
