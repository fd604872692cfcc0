package gpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAllocator_WriteRange(t *testing.T) {
	a := NewMemoryAllocator[int]()

	st, err := a.Allocate("ring-0", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, st.Len())

	st.WriteRange(1, []int{7, 8})
	st.WriteRange(3, []int{9})

	ms := a.Allocated[0]
	assert.Equal(t, []int{0, 7, 8, 9}, ms.Records)
	assert.Equal(t, []Upload{{Offset: 1, Count: 2}, {Offset: 3, Count: 1}}, ms.Uploads)
	assert.Equal(t, 2, a.Uploads())
}

func TestMemoryAllocator_Bounds(t *testing.T) {
	a := NewMemoryAllocator[int]()
	st, err := a.Allocate("ring-0", 2)
	require.NoError(t, err)

	assert.Panics(t, func() { st.WriteRange(1, []int{1, 2}) })
	assert.Panics(t, func() { st.WriteRange(-1, []int{1}) })

	st.Release()
	assert.Panics(t, func() { st.WriteRange(0, []int{1}) })

	_, err = a.Allocate("empty", 0)
	assert.Error(t, err)
}

func TestMemoryAllocator_MaxAllocations(t *testing.T) {
	a := &MemoryAllocator[int]{MaxAllocations: 1}

	_, err := a.Allocate("a", 1)
	require.NoError(t, err)

	_, err = a.Allocate("b", 1)
	assert.True(t, errors.Is(err, ErrOutOfMemory))
	assert.Len(t, a.Allocated, 1)
}
