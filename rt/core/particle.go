package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Particle matches the instance attributes in particles.wgsl.
// Position is not stored; the vertex shader integrates it from StartPos,
// Velocity and Friction using the particle's age.
//
//	struct ParticleInput {
//	  spawn_time: f32, life_duration: f32,
//	  start_pos: vec3<f32>, velocity: vec3<f32>,
//	  color: vec4<f32>, size: f32, friction: f32,
//	}
type Particle struct {
	SpawnTime    float32
	LifeDuration float32
	StartPos     mgl32.Vec3
	Velocity     mgl32.Vec3
	Color        mgl32.Vec4
	Size         float32
	Friction     float32 // per-second exponential slowdown, 0 = none
}

func (p Particle) GetSpawnTime() float32    { return p.SpawnTime }
func (p Particle) GetLifeDuration() float32 { return p.LifeDuration }

// PositionAt evaluates the same motion the shader uses. Handy for CPU-side
// picking and for checking the shader maths.
func (p Particle) PositionAt(t float32) mgl32.Vec3 {
	age := t - p.SpawnTime
	if age < 0 {
		age = 0
	}
	return p.StartPos.Add(p.Velocity.Mul(travel(age, p.Friction)))
}

// travel is the integral of exp(-friction * s) over [0, age].
func travel(age, friction float32) float32 {
	if friction <= 0 {
		return age
	}
	return (1 - exp32(-friction*age)) / friction
}

func exp32(x float32) float32 { return float32(math.Exp(float64(x))) }
