package particles

import (
	"github.com/gekko3d/particles/rt/gpu"
)

// Buffer is one segment of the ring: a fixed-size device array plus the
// latest expiry of any particle ever written into it.
type Buffer[V Vertex] struct {
	index   int
	storage gpu.Storage[V]

	// maxDeathTime only grows. Overwriting a slot with a shorter-lived
	// particle does not lower it, so it is an upper bound on liveness.
	maxDeathTime float32
}

func (b *Buffer[V]) Index() int { return b.index }

// Capacity is the number of particle slots, fixed at creation.
func (b *Buffer[V]) Capacity() int { return b.storage.Len() }

// MaxDeathTime is the largest expiry written into this buffer so far,
// or 0 if nothing has been written.
func (b *Buffer[V]) MaxDeathTime() float32 { return b.maxDeathTime }

// Alive reports whether the buffer may hold a particle visible at t.
// A false result is exact: every particle in the buffer has expired.
// A true result is not a guarantee that anything is still visible.
func (b *Buffer[V]) Alive(t float32) bool { return !(t > b.maxDeathTime) }

// Storage is the backend allocation holding the records, for draw submission.
func (b *Buffer[V]) Storage() gpu.Storage[V] { return b.storage }

// write uploads particles at offset as one transfer and raises the watermark.
// NaN expiries are ignored; the watermark never becomes NaN.
func (b *Buffer[V]) write(offset int, particles []V) {
	b.storage.WriteRange(offset, particles)

	for _, p := range particles {
		if e := Expiry(p); e > b.maxDeathTime {
			b.maxDeathTime = e
		}
	}
}
