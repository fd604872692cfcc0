package main

import (
	"math"

	"github.com/gekko3d/particles/rt/core"
	"github.com/go-gl/mathgl/mgl32"
)

// orbitCamera circles the fountain at a fixed distance.
type orbitCamera struct {
	Target   mgl32.Vec3
	Distance float32
	Height   float32
	Yaw      float32
	Speed    float32 // radians per second
	FovY     float32 // degrees
}

func newOrbitCamera() *orbitCamera {
	return &orbitCamera{
		Target:   mgl32.Vec3{0, 3, 0},
		Distance: 14,
		Height:   4,
		Speed:    0.2,
		FovY:     60,
	}
}

func (c *orbitCamera) update(dt float32) {
	c.Yaw += c.Speed * dt
}

func (c *orbitCamera) eye() mgl32.Vec3 {
	return mgl32.Vec3{
		c.Target.X() + c.Distance*float32(math.Sin(float64(c.Yaw))),
		c.Target.Y() + c.Height,
		c.Target.Z() + c.Distance*float32(math.Cos(float64(c.Yaw))),
	}
}

func (c *orbitCamera) params(aspect, t float32) core.Params {
	view := mgl32.LookAtV(c.eye(), c.Target, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, 0.1, 500)
	return core.NewParams(view, proj, t)
}
