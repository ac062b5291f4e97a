package querycache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGetInvalidate(t *testing.T) {
	c := New(8, time.Minute)

	_, ok := c.Get("blogs")
	assert.False(t, ok)

	c.Set("blogs", []int{1, 2})
	v, ok := c.Get("blogs")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	c.Invalidate("blogs")
	_, ok = c.Get("blogs")
	assert.False(t, ok)
}

func TestEntriesGoStale(t *testing.T) {
	c := New(8, 20*time.Millisecond)
	c.Set("blog:1", "x")

	assert.Eventually(t, func() bool {
		_, ok := c.Get("blog:1")
		return !ok
	}, time.Second, 10*time.Millisecond)
}
