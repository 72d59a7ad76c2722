package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idleQueue stands in for the GTK idle queue.
type idleQueue struct {
	tasks []func()
}

func (q *idleQueue) post(fn func()) { q.tasks = append(q.tasks, fn) }

func (q *idleQueue) drain() {
	tasks := q.tasks
	q.tasks = nil
	for _, fn := range tasks {
		fn()
	}
}

func TestCoalescer_LatestCountWins(t *testing.T) {
	q := &idleQueue{}
	c := NewCoalescer(q.post)

	shown := -1
	for count := 1; count <= 5; count++ {
		c.Post("badge", func() { shown = count })
	}

	require.Len(t, q.tasks, 1, "a burst should occupy one idle slot")
	q.drain()
	assert.Equal(t, 5, shown)
}

func TestCoalescer_SeparateKeys(t *testing.T) {
	q := &idleQueue{}
	c := NewCoalescer(q.post)

	var got []string
	c.Post("badge", func() { got = append(got, "badge") })
	c.Post("title", func() { got = append(got, "title") })
	c.Post("badge", func() { got = append(got, "badge2") })

	require.Len(t, q.tasks, 2)
	q.drain()
	assert.Equal(t, []string{"badge2", "title"}, got)
}

func TestCoalescer_KeyFreeAfterFlush(t *testing.T) {
	q := &idleQueue{}
	c := NewCoalescer(q.post)

	runs := 0
	c.Post("badge", func() { runs++ })
	q.drain()
	c.Post("badge", func() { runs++ })

	require.Len(t, q.tasks, 1)
	q.drain()
	assert.Equal(t, 2, runs)
}

func TestCoalescer_Destroy(t *testing.T) {
	q := &idleQueue{}
	c := NewCoalescer(q.post)

	ran := false
	c.Post("badge", func() { ran = true })
	c.Destroy()
	q.drain()
	assert.False(t, ran, "queued work must not run after Destroy")

	c.Post("badge", func() { ran = true })
	assert.Empty(t, q.tasks)
}

func TestCoalescer_IgnoresInvalidPosts(t *testing.T) {
	q := &idleQueue{}
	c := NewCoalescer(q.post)

	c.Post("", func() {})
	c.Post("badge", nil)

	assert.Empty(t, q.tasks)
}

func TestNewCoalescer_NilPost(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}
