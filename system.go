package particles

import (
	"fmt"

	"github.com/gekko3d/particles/rt/gpu"
	"github.com/google/uuid"
)

// Cursor is the next slot to be written: a buffer index and an offset into it.
// Between calls, 0 <= Buffer < NumBuffers and 0 <= Offset < ParticlesPerBuffer.
type Cursor struct {
	Buffer int
	Offset int
}

// Stats counts work done by Spawn since creation.
type Stats struct {
	Spawned uint64 // particle records written
	Uploads uint64 // WriteRange calls issued
	Wraps   uint64 // times the cursor moved from the last buffer back to the first
}

// System stores particles in a ring of fixed-size GPU buffers.
//
// Spawn writes batches at the cursor, splitting them at buffer boundaries and
// wrapping around at the end of the ring. Old particles are overwritten with
// no check for whether they are still visible; callers size the ring so that
// particles have expired by the time the cursor comes back to them.
//
// A System is not safe for concurrent use.
type System[V Vertex] struct {
	id       uuid.UUID
	config   Config
	buffers  []*Buffer[V]
	cursor   Cursor
	stats    Stats
	logger   Logger
	released bool
}

// NewSystem allocates config.NumBuffers buffers of config.ParticlesPerBuffer
// records each. It panics if either size is not positive; use Config.Validate
// to check beforehand. If the backend fails, the buffers allocated so far are
// released and a *CreationError is returned.
func NewSystem[V Vertex](alloc gpu.Allocator[V], config Config, logger Logger) (*System[V], error) {
	if err := config.Validate(); err != nil {
		panic(err)
	}
	id := uuid.New()
	short := id.String()[:8]
	logger = newSystemLogger(logger, config.label(), short)

	s := &System[V]{
		id:      id,
		config:  config,
		buffers: make([]*Buffer[V], 0, config.NumBuffers),
		logger:  logger,
	}

	for i := 0; i < config.NumBuffers; i++ {
		label := fmt.Sprintf("%s/%s/buffer-%d", config.label(), short, i)
		storage, err := alloc.Allocate(label, config.ParticlesPerBuffer)
		if err == nil && storage.Len() != config.ParticlesPerBuffer {
			storage.Release()
			err = fmt.Errorf("backend returned %d slots, want %d", storage.Len(), config.ParticlesPerBuffer)
		}
		if err != nil {
			s.Release()
			logger.Errorf("buffer %d: %v", i, err)
			return nil, &CreationError{Label: config.label(), Buffer: i, Err: err}
		}
		s.buffers = append(s.buffers, &Buffer[V]{index: i, storage: storage})
	}

	logger.Infof("%d buffers x %d particles", config.NumBuffers, config.ParticlesPerBuffer)
	return s, nil
}

// ID identifies this System in GPU buffer labels and logs.
func (s *System[V]) ID() uuid.UUID { return s.id }

func (s *System[V]) Config() Config { return s.config }

func (s *System[V]) Cursor() Cursor { return s.cursor }

func (s *System[V]) Stats() Stats { return s.stats }

// Capacity is the total number of slots in the ring.
func (s *System[V]) Capacity() int { return s.config.Capacity() }

// Len is the number of buffers in the ring.
func (s *System[V]) Len() int { return len(s.buffers) }

// Buffers returns the ring in index order. The slice must not be modified.
func (s *System[V]) Buffers() []*Buffer[V] { return s.buffers }

// LiveBuffers returns the buffers that may still hold a particle visible at t.
// Buffers left out are guaranteed to contain only expired particles.
func (s *System[V]) LiveBuffers(t float32) []*Buffer[V] {
	live := make([]*Buffer[V], 0, len(s.buffers))
	for _, b := range s.buffers {
		if b.Alive(t) {
			live = append(live, b)
		}
	}
	return live
}

// Shader returns the draw contract for the built-in particle record layout.
func (s *System[V]) Shader() Shader { return Shader{} }

// Spawn writes particles into the ring starting at the cursor. Each buffer
// touched receives one contiguous upload. A batch larger than the ring wraps
// around and overwrites what it wrote earlier in the same call.
func (s *System[V]) Spawn(particles []V) {
	if len(particles) == 0 {
		return
	}
	if s.released {
		panic("particles: Spawn on released system")
	}
	if len(particles) > s.Capacity() {
		s.logger.Warnf("batch of %d exceeds ring capacity %d; overwriting", len(particles), s.Capacity())
	}

	for len(particles) > 0 {
		s.checkCursor()

		capacity := s.config.ParticlesPerBuffer - s.cursor.Offset
		n := min(len(particles), capacity)

		s.buffers[s.cursor.Buffer].write(s.cursor.Offset, particles[:n])
		s.stats.Uploads++
		s.stats.Spawned += uint64(n)

		s.advance(n, capacity)
		particles = particles[n:]
	}
}

// advance moves the cursor past n written slots. capacity is what was left in
// the current buffer before the write.
func (s *System[V]) advance(n, capacity int) {
	if n < capacity {
		s.cursor.Offset += n
		return
	}
	next := (s.cursor.Buffer + 1) % len(s.buffers)
	if next == 0 {
		s.stats.Wraps++
		s.logger.Debugf("ring wrapped (%d)", s.stats.Wraps)
	}
	s.cursor = Cursor{Buffer: next, Offset: 0}
}

func (s *System[V]) checkCursor() {
	c := s.cursor
	if c.Buffer < 0 || c.Buffer >= len(s.buffers) || c.Offset < 0 || c.Offset >= s.config.ParticlesPerBuffer {
		panic(fmt.Sprintf("particles: cursor %+v out of range (%d buffers x %d)",
			c, len(s.buffers), s.config.ParticlesPerBuffer))
	}
}

// Release frees every GPU buffer. The System must not be spawned into after.
func (s *System[V]) Release() {
	for _, b := range s.buffers {
		b.storage.Release()
	}
	s.released = true
}
