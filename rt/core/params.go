package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ParamsSize is the uniform block size in bytes (padded to 16).
const ParamsSize = 112

// Params is the per-frame uniform block of the particle shader.
//
//	struct Params {
//	  view_proj: mat4x4<f32>,    -- 64
//	  camera_right: vec4<f32>,   -- 80
//	  camera_up: vec4<f32>,      -- 96
//	  time: vec4<f32>,           -- 112 (x = current time)
//	}
type Params struct {
	ViewProj    mgl32.Mat4
	CameraRight mgl32.Vec4
	CameraUp    mgl32.Vec4
	Time        float32
	_           [3]float32
}

// NewParams derives the billboard axes from the view matrix rows.
func NewParams(view, proj mgl32.Mat4, t float32) Params {
	right := view.Row(0)
	up := view.Row(1)
	return Params{
		ViewProj:    proj.Mul4(view),
		CameraRight: mgl32.Vec4{right.X(), right.Y(), right.Z(), 0},
		CameraUp:    mgl32.Vec4{up.X(), up.Y(), up.Z(), 0},
		Time:        t,
	}
}
