package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	m := debugLabels("RESEQ;MEDIAN_ERR")
	assert.True(t, m[RESEQ])
	assert.True(t, m[MEDIAN_ERR])
	assert.False(t, m[MEDIAN])
	assert.Equal(t, 0, len(debugLabels("")))
}

func TestWillBePrinted(t *testing.T) {
	SetLabels("WORKER")
	assert.True(t, WillBePrinted(WORKER))
	assert.True(t, WillBePrinted(ALWAYS))
	assert.False(t, WillBePrinted(ACCUM))
	SetLabels("")
	assert.False(t, WillBePrinted(WORKER))
}
