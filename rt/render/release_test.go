package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResource struct {
	name string
	log  *[]string
}

func (f *fakeResource) Release() { *f.log = append(*f.log, f.name) }

func TestReleaseStack_ReleasesNewestFirst(t *testing.T) {
	var log []string
	var built releaseStack
	built.push(&fakeResource{name: "pipeline", log: &log})
	built.push(&fakeResource{name: "params", log: &log})

	built.release()

	assert.Equal(t, []string{"params", "pipeline"}, log)
	assert.Empty(t, built)

	built.release()
	assert.Len(t, log, 2, "a drained stack releases nothing twice")
}
