package main

import (
	"flag"
	"runtime"

	"github.com/gekko3d/particles"
	"github.com/gekko3d/particles/rt/core"
	"github.com/gekko3d/particles/rt/gpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	perBuffer := flag.Int("per-buffer", 10000, "Particles per ring buffer")
	numBuffers := flag.Int("buffers", 10, "Number of ring buffers")
	rate := flag.Float64("rate", 20000, "Particles spawned per second")
	width := flag.Int("width", 1280, "Window width")
	height := flag.Int("height", 720, "Window height")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger := particles.NewDefaultLogger("particles-demo", *debug)

	config := particles.Config{
		ParticlesPerBuffer: *perBuffer,
		NumBuffers:         *numBuffers,
		Label:              "fountain",
	}
	if err := config.Validate(); err != nil {
		logger.Errorf("%v", err)
		return
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	window, err := glfw.CreateWindow(*width, *height, "Particles", nil, nil)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	gs, err := newGpuState(window)
	if err != nil {
		panic(err)
	}
	defer gs.release()

	alloc, err := gpu.NewWgpuAllocator[core.Particle](gs.device)
	if err != nil {
		panic(err)
	}
	sys, err := particles.NewSystem[core.Particle](alloc, config, logger)
	if err != nil {
		panic(err)
	}
	defer sys.Release()

	r, err := newRenderer(gs, sys.Shader(), logger)
	if err != nil {
		panic(err)
	}
	defer r.release()

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gs.resize(width, height)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	em := newFountain(float32(*rate))
	cam := newOrbitCamera()
	last := float32(glfw.GetTime())
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := float32(glfw.GetTime())
		dt := now - last
		last = now

		if batch := em.emit(now, dt); len(batch) > 0 {
			sys.Spawn(batch)
		}
		cam.update(dt)
		r.render(gs, sys, cam.params(gs.aspect(), now), now)

		if logger.DebugEnabled() && r.pass.Skipped > 0 {
			logger.Debugf("skipped %d dead buffers, drew %d", r.pass.Skipped, r.pass.Drawn)
		}
	}

	st := sys.Stats()
	logger.Infof("spawned %d particles in %d uploads, ring wrapped %d times", st.Spawned, st.Uploads, st.Wraps)
}
