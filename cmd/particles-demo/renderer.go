package main

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/gekko3d/particles"
	"github.com/gekko3d/particles/rt/core"
	"github.com/gekko3d/particles/rt/render"
)

type renderer struct {
	pass   *render.ParticlePass
	logger particles.Logger
}

func newRenderer(gs *gpuState, shader particles.Shader, logger particles.Logger) (*renderer, error) {
	pass, err := render.NewParticlePass(gs.device, gs.surfaceConfig.Format, shader)
	if err != nil {
		return nil, err
	}
	return &renderer{pass: pass, logger: logger}, nil
}

// fail reports a frame step that could not complete. The frame is dropped,
// the loop keeps going.
func (r *renderer) fail(step string, err error) {
	r.logger.Errorf("frame: %s failed: %v", step, err)
}

func (r *renderer) render(gs *gpuState, sys *particles.System[core.Particle], params core.Params, t float32) {
	nextTexture, err := gs.surface.GetCurrentTexture()
	if err != nil {
		r.fail("GetCurrentTexture", err)
		return
	}
	defer nextTexture.Release()

	view, err := nextTexture.CreateView(nil)
	if err != nil {
		r.fail("CreateView", err)
		return
	}
	defer view.Release()

	encoder, err := gs.device.CreateCommandEncoder(nil)
	if err != nil {
		r.fail("CreateCommandEncoder", err)
		return
	}

	r.pass.Update(gs.queue, params)

	rPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0.02, G: 0.02, B: 0.04, A: 1.0},
		}},
	})
	r.pass.Draw(rPass, sys, t)
	if err := rPass.End(); err != nil {
		r.fail("render pass End", err)
	}

	cmd, err := encoder.Finish(nil)
	if err != nil {
		r.fail("Finish", err)
		return
	}
	gs.queue.Submit(cmd)
	gs.surface.Present()
}

func (r *renderer) release() {
	r.pass.Release()
}
