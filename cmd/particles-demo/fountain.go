package main

import (
	"math"
	"math/rand"

	"github.com/gekko3d/particles/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

// fountain produces particle records for the demo. The records carry their
// own motion, so nothing is simulated after emission.
type fountain struct {
	Rate             float32    // particles per second
	LifetimeRange    [2]float32 // seconds (min,max)
	StartSpeedRange  [2]float32 // units/sec (min,max)
	StartSizeRange   [2]float32 // world units (min,max)
	StartColorMin    [4]float32 // RGBA min (0..1)
	StartColorMax    [4]float32 // RGBA max (0..1)
	Friction         float32
	ConeAngleDegrees float32 // 0=along up axis; larger spreads

	spawnAcc float32 // fractional spawns accumulator
	rng      *rand.Rand
	batch    []core.Particle
}

func newFountain(rate float32) *fountain {
	return &fountain{
		Rate:             rate,
		LifetimeRange:    [2]float32{1.5, 3.0},
		StartSpeedRange:  [2]float32{4, 8},
		StartSizeRange:   [2]float32{0.05, 0.15},
		StartColorMin:    [4]float32{0.9, 0.4, 0.1, 0.8},
		StartColorMax:    [4]float32{1.0, 0.8, 0.3, 1.0},
		Friction:         0.8,
		ConeAngleDegrees: 20,
		rng:              rand.New(rand.NewSource(1)),
	}
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

// emit returns the particles spawned during the dt seconds ending at now.
// Spawn times are spread over the interval so low frame rates do not clump.
// The returned slice is reused by the next call.
func (f *fountain) emit(now, dt float32) []core.Particle {
	if dt <= 0 {
		return nil
	}
	f.spawnAcc += f.Rate * dt
	count := int(f.spawnAcc)
	f.spawnAcc -= float32(count)

	f.batch = f.batch[:0]
	for i := 0; i < count; i++ {
		spawn := now - dt + dt*float32(i+1)/float32(count)
		speed := lerp(f.StartSpeedRange[0], f.StartSpeedRange[1], f.rng.Float32())

		var c mgl32.Vec4
		for j := 0; j < 4; j++ {
			c[j] = lerp(f.StartColorMin[j], f.StartColorMax[j], f.rng.Float32())
		}

		f.batch = append(f.batch, core.Particle{
			SpawnTime:    spawn,
			LifeDuration: lerp(f.LifetimeRange[0], f.LifetimeRange[1], f.rng.Float32()),
			StartPos:     mgl32.Vec3{0, 0, 0},
			Velocity:     f.sampleDirection().Mul(speed),
			Color:        c,
			Size:         lerp(f.StartSizeRange[0], f.StartSizeRange[1], f.rng.Float32()),
			Friction:     f.Friction,
		})
	}
	return f.batch
}

// sampleDirection picks a direction uniformly over a cone around +Y.
func (f *fountain) sampleDirection() mgl32.Vec3 {
	if f.ConeAngleDegrees <= 0 {
		return mgl32.Vec3{0, 1, 0}
	}
	thetaMax := float32(math.Pi) * (f.ConeAngleDegrees / 180.0)
	cosTheta := lerp(float32(math.Cos(float64(thetaMax))), 1.0, f.rng.Float32())
	sinTheta := float32(math.Sqrt(float64(1.0 - cosTheta*cosTheta)))
	phi := 2.0 * float32(math.Pi) * f.rng.Float32()

	return mgl32.Vec3{
		float32(math.Cos(float64(phi))) * sinTheta,
		cosTheta,
		float32(math.Sin(float64(phi))) * sinTheta,
	}.Normalize()
}
