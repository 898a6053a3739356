package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestQueueFIFO(t *testing.T) {
	t.Parallel()

	var q requestQueue

	_, ok := q.tryPop()
	assert.False(t, ok)

	q.push(Request{Path: "a.mp4"})
	q.push(ReturnToIdle())
	q.push(Request{Path: "b.mp4"})
	assert.Equal(t, 3, q.len())

	r, ok := q.tryPop()
	assert.True(t, ok)
	assert.Equal(t, "a.mp4", r.Path)

	r, ok = q.tryPop()
	assert.True(t, ok)
	assert.True(t, r.ToIdle)

	r, ok = q.tryPop()
	assert.True(t, ok)
	assert.Equal(t, "b.mp4", r.Path)

	_, ok = q.tryPop()
	assert.False(t, ok)
	assert.Zero(t, q.len())
}
