package particles

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/particles/rt/core"
	"github.com/stretchr/testify/assert"
)

func TestShader_InstanceLayout(t *testing.T) {
	sys, _ := newTestSystem(t, 1, 1)
	shader := sys.Shader()
	assert.Equal(t, Shader{}, shader, "the token is stateless")

	layout := shader.InstanceLayout()
	assert.Equal(t, uint64(56), layout.ArrayStride)
	assert.Equal(t, wgpu.VertexStepModeInstance, layout.StepMode)
	assert.Len(t, layout.Attributes, 7)

	for i, attr := range layout.Attributes {
		assert.Equal(t, uint32(i), attr.ShaderLocation)
		assert.Less(t, attr.Offset, layout.ArrayStride)
	}
	assert.Equal(t, wgpu.VertexFormatFloat32x4, layout.Attributes[4].Format)
}

func TestShader_Contract(t *testing.T) {
	var shader Shader
	assert.Equal(t, uint32(6), shader.VerticesPerInstance())
	assert.Equal(t, uint64(core.ParamsSize), shader.ParamsSize())
	assert.Contains(t, shader.WGSL(), "fn vs_main")
	assert.Contains(t, shader.WGSL(), "fn fs_main")
}
