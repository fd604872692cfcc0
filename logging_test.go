package particles

import (
	"bytes"
	"testing"

	"github.com/gekko3d/particles/rt/gpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLogger(&out, &errOut, "fx", false)

	l.Debugf("hidden %d", 1)
	assert.Empty(t, out.String())

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 2)
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("boom")

	assert.Contains(t, out.String(), "[fx] DEBUG: shown 2")
	assert.Contains(t, out.String(), "[fx] INFO: info")
	assert.Contains(t, errOut.String(), "[fx] WARN: warn")
	assert.Contains(t, errOut.String(), "[fx] ERROR: boom")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.SetDebug(true)
	assert.False(t, l.DebugEnabled())
}

func TestSystemLogger_TagsLinesWithLabelAndID(t *testing.T) {
	var out, errOut bytes.Buffer
	base := NewLogger(&out, &errOut, "fx", true)

	alloc := gpu.NewMemoryAllocator[testParticle]()
	sys, err := NewSystem[testParticle](alloc, Config{ParticlesPerBuffer: 2, NumBuffers: 1, Label: "sparks"}, base)
	require.NoError(t, err)

	tag := "sparks/" + sys.ID().String()[:8] + ": "
	assert.Contains(t, out.String(), "[fx] INFO: "+tag+"1 buffers x 2 particles")

	sys.Spawn(batch(0, 3, 0, 1))
	assert.Contains(t, out.String(), "[fx] DEBUG: "+tag+"ring wrapped (1)")
	assert.Contains(t, errOut.String(), "[fx] WARN: "+tag+"batch of 3 exceeds ring capacity 2")
}
