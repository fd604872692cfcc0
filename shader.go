package particles

import (
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/particles/rt/core"
	"github.com/gekko3d/particles/rt/shaders"
)

// Shader identifies how particles are drawn: core.Particle records bound as a
// per-instance vertex buffer, one camera-facing quad per instance, and a
// core.Params uniform at group 0, binding 0. It carries no state.
type Shader struct{}

func (Shader) Label() string { return "ParticleShader" }

func (Shader) WGSL() string { return shaders.ParticlesWGSL }

// VerticesPerInstance is the number of vertices drawn per particle (two triangles).
func (Shader) VerticesPerInstance() uint32 { return 6 }

// ParamsSize is the size of the uniform block in bytes.
func (Shader) ParamsSize() uint64 { return core.ParamsSize }

// InstanceLayout describes core.Particle as instance-rate vertex attributes.
func (Shader) InstanceLayout() wgpu.VertexBufferLayout {
	var p core.Particle
	return wgpu.VertexBufferLayout{
		ArrayStride: uint64(unsafe.Sizeof(p)),
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32, Offset: uint64(unsafe.Offsetof(p.SpawnTime)), ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32, Offset: uint64(unsafe.Offsetof(p.LifeDuration)), ShaderLocation: 1},
			{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(p.StartPos)), ShaderLocation: 2},
			{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(p.Velocity)), ShaderLocation: 3},
			{Format: wgpu.VertexFormatFloat32x4, Offset: uint64(unsafe.Offsetof(p.Color)), ShaderLocation: 4},
			{Format: wgpu.VertexFormatFloat32, Offset: uint64(unsafe.Offsetof(p.Size)), ShaderLocation: 5},
			{Format: wgpu.VertexFormatFloat32, Offset: uint64(unsafe.Offsetof(p.Friction)), ShaderLocation: 6},
		},
	}
}
