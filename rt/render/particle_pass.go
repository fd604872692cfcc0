package render

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/particles"
	"github.com/gekko3d/particles/rt/core"
	"github.com/gekko3d/particles/rt/gpu"
)

// ParticlePass draws the buffers of a particle System as instanced billboards.
type ParticlePass struct {
	Pipeline  *wgpu.RenderPipeline
	BindGroup *wgpu.BindGroup
	ParamsBuf *wgpu.Buffer
	Device    *wgpu.Device
	Shader    particles.Shader

	// Per-frame counters from the last Draw.
	Drawn   int
	Skipped int
}

func NewParticlePass(device *wgpu.Device, format wgpu.TextureFormat, shader particles.Shader) (*ParticlePass, error) {
	shaderModule, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          shader.Label(),
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: shader.WGSL()},
	})
	if err != nil {
		return nil, fmt.Errorf("particle shader: %w", err)
	}
	defer shaderModule.Release()

	bgl, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "ParticleParamsBGL",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					MinBindingSize:   shader.ParamsSize(),
					HasDynamicOffset: false,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("particle bind group layout: %w", err)
	}
	defer bgl.Release()

	pipelineLayout, err := device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "ParticlePipelineLayout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bgl},
	})
	if err != nil {
		return nil, fmt.Errorf("particle pipeline layout: %w", err)
	}
	defer pipelineLayout.Release()

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "ParticlePipeline",
		Layout: pipelineLayout,
		Vertex: wgpu.VertexState{
			Module:     shaderModule,
			EntryPoint: "vs_main",
			Buffers:    []wgpu.VertexBufferLayout{shader.InstanceLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shaderModule,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    format,
					WriteMask: wgpu.ColorWriteMaskAll,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOne,
						},
						Alpha: wgpu.BlendComponent{
							Operation: wgpu.BlendOperationAdd,
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
						},
					},
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("particle pipeline: %w", err)
	}
	var built releaseStack
	built.push(pipeline)

	paramsBuf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ParticleParams",
		Size:  shader.ParamsSize(),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		built.release()
		return nil, fmt.Errorf("particle params buffer: %w", err)
	}
	built.push(paramsBuf)

	bindGroup, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "ParticleParamsBG",
		Layout: bgl,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  paramsBuf,
				Size:    shader.ParamsSize(),
			},
		},
	})
	if err != nil {
		built.release()
		return nil, fmt.Errorf("particle bind group: %w", err)
	}

	return &ParticlePass{
		Pipeline:  pipeline,
		BindGroup: bindGroup,
		ParamsBuf: paramsBuf,
		Device:    device,
		Shader:    shader,
	}, nil
}

// Update uploads this frame's camera and time.
func (p *ParticlePass) Update(queue *wgpu.Queue, params core.Params) {
	queue.WriteBuffer(p.ParamsBuf, 0, unsafe.Slice((*byte)(unsafe.Pointer(&params)), unsafe.Sizeof(params)))
}

// Draw issues one instanced draw per buffer that may still hold a particle
// visible at t. Buffers whose watermark is behind t are skipped.
// The system's buffers must come from a gpu.WgpuAllocator.
func (p *ParticlePass) Draw(pass *wgpu.RenderPassEncoder, sys *particles.System[core.Particle], t float32) {
	live := sys.LiveBuffers(t)
	p.Drawn = 0
	p.Skipped = sys.Len() - len(live)
	if len(live) == 0 {
		return
	}

	pass.SetPipeline(p.Pipeline)
	pass.SetBindGroup(0, p.BindGroup, nil)

	verts := p.Shader.VerticesPerInstance()
	for _, b := range live {
		storage, ok := b.Storage().(*gpu.WgpuStorage[core.Particle])
		if !ok || storage.Buffer() == nil {
			continue
		}
		buf := storage.Buffer()
		pass.SetVertexBuffer(0, buf, 0, buf.GetSize())
		pass.Draw(verts, uint32(b.Capacity()), 0, 0)
		p.Drawn++
	}
}

func (p *ParticlePass) Release() {
	if p.BindGroup != nil {
		p.BindGroup.Release()
	}
	if p.ParamsBuf != nil {
		p.ParamsBuf.Release()
	}
	if p.Pipeline != nil {
		p.Pipeline.Release()
	}
}
