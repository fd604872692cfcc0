package gpu

import (
	"fmt"
	"unsafe"

	"github.com/cogentcore/webgpu/wgpu"
)

// WgpuStorage is a vertex buffer holding a fixed number of V records.
// V must be a plain value type (no pointers, slices or strings) whose memory
// layout matches what the shader expects.
type WgpuStorage[V any] struct {
	buf    *wgpu.Buffer
	queue  *wgpu.Queue
	n      int
	stride int
}

func (s *WgpuStorage[V]) Len() int { return s.n }

// Buffer exposes the underlying vertex buffer for draw submission.
func (s *WgpuStorage[V]) Buffer() *wgpu.Buffer { return s.buf }

// Stride is the size of one record in bytes.
func (s *WgpuStorage[V]) Stride() int { return s.stride }

func (s *WgpuStorage[V]) WriteRange(offset int, data []V) {
	if len(data) == 0 {
		return
	}
	if offset < 0 || offset+len(data) > s.n {
		panic(fmt.Sprintf("gpu: write [%d,%d) out of range (len %d)", offset, offset+len(data), s.n))
	}
	size := len(data) * s.stride
	bytes := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), size)
	s.queue.WriteBuffer(s.buf, uint64(offset*s.stride), bytes)
}

func (s *WgpuStorage[V]) Release() {
	if s.buf != nil {
		s.buf.Release()
		s.buf = nil
	}
}

// WgpuAllocator creates vertex buffers on a wgpu device.
type WgpuAllocator[V any] struct {
	Device *wgpu.Device
	// Usage is OR-ed with Vertex|CopyDst.
	Usage wgpu.BufferUsage

	stride int
}

// NewWgpuAllocator checks that V can be copied into a vertex buffer.
// Queue writes must be 4-byte aligned, so the record size must be too.
func NewWgpuAllocator[V any](device *wgpu.Device) (*WgpuAllocator[V], error) {
	var zero V
	stride := int(unsafe.Sizeof(zero))
	if stride == 0 || stride%4 != 0 {
		return nil, fmt.Errorf("gpu: record size %d is not a positive multiple of 4", stride)
	}
	return &WgpuAllocator[V]{Device: device, stride: stride}, nil
}

func (a *WgpuAllocator[V]) Allocate(label string, n int) (Storage[V], error) {
	if n <= 0 {
		return nil, fmt.Errorf("gpu: cannot allocate %q with %d records", label, n)
	}
	buf, err := a.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            label,
		Size:             uint64(n * a.stride),
		Usage:            a.Usage | wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
		MappedAtCreation: false,
	})
	if err != nil {
		return nil, fmt.Errorf("create buffer %q: %w", label, err)
	}
	return &WgpuStorage[V]{
		buf:    buf,
		queue:  a.Device.GetQueue(),
		n:      n,
		stride: a.stride,
	}, nil
}
