package main

import (
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type gpuState struct {
	instance      *wgpu.Instance
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
}

func newGpuState(window *glfw.Window) (*gpuState, error) {
	instance := wgpu.CreateInstance(nil)
	// wraps GLFW window into a wgpu surface.
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))

	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return nil, err
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Particles Device",
	})
	if err != nil {
		return nil, err
	}

	width, height := window.GetFramebufferSize()
	caps := surface.GetCapabilities(adapter)
	config := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}
	surface.Configure(adapter, device, config)

	return &gpuState{
		instance:      instance,
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         device.GetQueue(),
		surfaceConfig: config,
	}, nil
}

func (s *gpuState) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	s.surfaceConfig.Width = uint32(w)
	s.surfaceConfig.Height = uint32(h)
	s.surface.Configure(s.adapter, s.device, s.surfaceConfig)
}

func (s *gpuState) aspect() float32 {
	if s.surfaceConfig.Height == 0 {
		return 1
	}
	return float32(s.surfaceConfig.Width) / float32(s.surfaceConfig.Height)
}

func (s *gpuState) release() {
	s.device.Release()
	s.adapter.Release()
	s.surface.Release()
	s.instance.Release()
}
