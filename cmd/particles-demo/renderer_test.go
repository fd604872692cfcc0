package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gekko3d/particles"
	"github.com/stretchr/testify/assert"
)

func TestRenderer_FailLogsThroughLogger(t *testing.T) {
	var out, errOut bytes.Buffer
	r := &renderer{logger: particles.NewLogger(&out, &errOut, "particles-demo", false)}

	r.fail("GetCurrentTexture", errors.New("surface lost"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "[particles-demo] ERROR: frame: GetCurrentTexture failed: surface lost")
}
