package tankworld

import "math"

// Crab is the predator entity: a patrol pattern, a hunt cooldown, and
// kill-on-contact semantics against Fish, per spec.md §3.
type Crab struct {
	ID   EntityID
	Pos  Vector2
	Vel  Vector2

	patrolCenter Vector2
	patrolRadius float64
	patrolAngle  float64

	HuntCooldown int
}

// NewCrab constructs a crab patrolling around pos with the given radius.
func NewCrab(id EntityID, pos Vector2, patrolRadius float64) *Crab {
	return &Crab{ID: id, Pos: pos, patrolCenter: pos, patrolRadius: patrolRadius}
}

// crabPatrolStep is the angular speed (radians/tick) of the patrol orbit.
const crabPatrolStep = 0.05

// Patrol advances the crab one step along its circular patrol path around
// patrolCenter. It does not look for prey; runCrabPhase calls Chase instead
// when a fish is within crabHuntRadius.
func (c *Crab) Patrol(width, height float64) {
	c.patrolAngle += crabPatrolStep
	target := Vector2{
		X: c.patrolCenter.X + c.patrolRadius*math.Cos(c.patrolAngle),
		Y: c.patrolCenter.Y + c.patrolRadius*math.Sin(c.patrolAngle),
	}
	dir := target.Sub(c.Pos)
	c.Vel = dir.Normalize().Scale(crabSpeed)
	c.Pos = c.Pos.Add(c.Vel).Clamp(width, height)
}

// crabSpeed is the crab's constant movement speed in units/tick.
const crabSpeed = 1.5

// Chase moves the crab directly toward preyPos.
func (c *Crab) Chase(preyPos Vector2, width, height float64) {
	dir := preyPos.Sub(c.Pos).Normalize()
	c.Vel = dir.Scale(crabSpeed * 1.5)
	c.Pos = c.Pos.Add(c.Vel).Clamp(width, height)
}

