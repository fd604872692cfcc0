package gpu

import "errors"

// ErrOutOfMemory is returned by allocators that run out of device memory.
var ErrOutOfMemory = errors.New("gpu: out of device memory")

// Storage is a fixed-size, device-resident array of records of type V.
// It is never resized once allocated.
type Storage[V any] interface {
	// Len is the number of record slots.
	Len() int
	// WriteRange uploads data into slots [offset, offset+len(data)) as a
	// single transfer. The range must lie within Len.
	WriteRange(offset int, data []V)
	// Release frees the device allocation. The storage must not be used after.
	Release()
}

// Allocator creates Storage blocks on a graphics backend.
type Allocator[V any] interface {
	Allocate(label string, n int) (Storage[V], error)
}
