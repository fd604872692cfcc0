package gpu

import "fmt"

// Upload records one WriteRange call on a MemoryStorage.
type Upload struct {
	Offset int
	Count  int
}

// MemoryStorage keeps records in host memory. It backs headless runs and tests,
// and remembers every upload it received.
type MemoryStorage[V any] struct {
	Label    string
	Records  []V
	Uploads  []Upload
	Released bool
}

func (s *MemoryStorage[V]) Len() int { return len(s.Records) }

func (s *MemoryStorage[V]) WriteRange(offset int, data []V) {
	if s.Released {
		panic(fmt.Sprintf("gpu: write to released storage %q", s.Label))
	}
	if offset < 0 || offset+len(data) > len(s.Records) {
		panic(fmt.Sprintf("gpu: write [%d,%d) out of range for %q (len %d)",
			offset, offset+len(data), s.Label, len(s.Records)))
	}
	copy(s.Records[offset:], data)
	s.Uploads = append(s.Uploads, Upload{Offset: offset, Count: len(data)})
}

func (s *MemoryStorage[V]) Release() {
	s.Released = true
}

// MemoryAllocator hands out MemoryStorage blocks.
// When MaxAllocations is positive, allocations past that count fail with
// ErrOutOfMemory, which lets callers exercise their failure paths.
type MemoryAllocator[V any] struct {
	MaxAllocations int

	Allocated []*MemoryStorage[V]
}

func NewMemoryAllocator[V any]() *MemoryAllocator[V] {
	return &MemoryAllocator[V]{}
}

func (a *MemoryAllocator[V]) Allocate(label string, n int) (Storage[V], error) {
	if n <= 0 {
		return nil, fmt.Errorf("gpu: cannot allocate %q with %d records", label, n)
	}
	if a.MaxAllocations > 0 && len(a.Allocated) >= a.MaxAllocations {
		return nil, fmt.Errorf("allocate %q: %w", label, ErrOutOfMemory)
	}
	s := &MemoryStorage[V]{
		Label:   label,
		Records: make([]V, n),
	}
	a.Allocated = append(a.Allocated, s)
	return s, nil
}

// Uploads returns the total number of WriteRange calls across all storages.
func (a *MemoryAllocator[V]) Uploads() int {
	total := 0
	for _, s := range a.Allocated {
		total += len(s.Uploads)
	}
	return total
}
