// Package particles is a fixed-capacity quad particle system shared by the
// demo commands. All particles live in one vertex buffer so a frame is a
// single draw call.
package particles

import (
	"time"

	"github.com/gogpu/arc"
)

// Info describes a particle at emission.
type Info struct {
	Position      arc.Vec2
	Velocity      arc.Vec2
	Acceleration  arc.Vec2
	Size          arc.Vec2
	Rotation      float32 // degrees
	RotationSpeed float32 // degrees per second
	Color         arc.Color
	Lifespan      time.Duration
}

type particle struct {
	velocity      arc.Vec2
	acceleration  arc.Vec2
	rotationSpeed float32
	remaining     time.Duration
}

// System is a ring of particles. Emitting past capacity recycles the
// oldest slot.
type System struct {
	vertices  []arc.Vertex
	particles []particle
	next      int
}

// New creates a system holding up to capacity particles.
func New(capacity int) *System {
	s := &System{}
	s.Resize(capacity)
	return s
}

// Resize changes the capacity and resets every particle.
func (s *System) Resize(capacity int) {
	s.vertices = make([]arc.Vertex, capacity*arc.QuadVertices)
	s.particles = make([]particle, capacity)
	s.Reset()
}

// Reset kills every particle.
func (s *System) Reset() {
	s.next = 0
	clear(s.particles)
	arc.SetVerticesColor(s.vertices, 0, len(s.vertices), arc.Transparent)
}

// Len returns the capacity.
func (s *System) Len() int { return len(s.particles) }

// Alive returns the number of live particles.
func (s *System) Alive() int {
	n := 0
	for i := range s.particles {
		if s.particles[i].remaining > 0 {
			n++
		}
	}
	return n
}

// Vertices returns the shared vertex buffer. Dead particles are
// transparent.
func (s *System) Vertices() []arc.Vertex { return s.vertices }

// Emit spawns a particle in the next slot.
func (s *System) Emit(info Info) {
	if len(s.particles) == 0 {
		return
	}
	id := s.next
	arc.MakeQuadWith(s.vertices, id, arc.QuadSpec{
		Center: info.Position,
		Size:   info.Size,
		Angle:  info.Rotation,
		Color:  info.Color,
	})
	s.particles[id] = particle{
		velocity:      info.Velocity,
		acceleration:  info.Acceleration,
		rotationSpeed: info.RotationSpeed,
		remaining:     info.Lifespan,
	}
	s.next = (s.next + 1) % len(s.particles)
}

// Burst emits count particles spread evenly around a circle starting at
// startDegrees. Each particle moves outward with speed and accelerates
// outward with accel; it is rotated to face its direction.
func (s *System) Burst(info Info, count int, startDegrees, speed, accel float32) {
	for i := 0; i < count; i++ {
		deg := startDegrees + 360*float32(i)/float32(count)
		dir := arc.UnitVector(deg)
		info.Velocity = dir.Mul(speed)
		info.Acceleration = dir.Mul(accel)
		info.Rotation = deg
		s.Emit(info)
	}
}

// Update advances every live particle by dt.
func (s *System) Update(dt time.Duration) {
	secs := float32(dt.Seconds())
	for i := range s.particles {
		p := &s.particles[i]
		if p.remaining <= 0 {
			continue
		}
		p.remaining -= dt
		if p.remaining <= 0 {
			arc.SetQuadColor(s.vertices, i, arc.Transparent)
			continue
		}
		p.velocity = p.velocity.Add(p.acceleration.Mul(secs))
		arc.MoveQuad(s.vertices, i, p.velocity.Mul(secs))
		if p.rotationSpeed != 0 {
			arc.RotateQuad(s.vertices, i, p.rotationSpeed*secs)
		}
	}
}
