package convcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestDisabledCacheAlwaysMisses(t *testing.T) {
	c := New(0)
	c.Put(Key(0.1, 10), "0.1")
	_, ok := c.Get(Key(0.1, 10))
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestPutThenGet(t *testing.T) {
	c := New(4)
	k := Key(0.1, 10)
	c.Put(k, "0.1")

	v, ok := c.Get(k)
	require.True(t, ok)
	assert.Equal(t, "0.1", v)
}

func TestKeyDistinguishesRadix(t *testing.T) {
	assert.NotEqual(t, Key(1.0, 10), Key(1.0, 16))
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	k1, k2, k3 := Key(1, 10), Key(2, 10), Key(3, 10)

	c.Put(k1, "1")
	c.Put(k2, "2")
	c.Put(k3, "3") // evicts k1, the least recently touched

	_, ok := c.Get(k1)
	assert.False(t, ok)

	v2, ok := c.Get(k2)
	require.True(t, ok)
	assert.Equal(t, "2", v2)

	v3, ok := c.Get(k3)
	require.True(t, ok)
	assert.Equal(t, "3", v3)
	assert.Equal(t, 2, c.Len())
}

func TestTouchingAnEntryProtectsItFromEviction(t *testing.T) {
	c := New(2)
	k1, k2, k3 := Key(1, 10), Key(2, 10), Key(3, 10)

	c.Put(k1, "1")
	c.Put(k2, "2")
	c.Get(k1) // now k2 is the least recently used
	c.Put(k3, "3")

	_, ok := c.Get(k2)
	assert.False(t, ok)

	_, ok = c.Get(k1)
	assert.True(t, ok)
}

func TestConcurrentAccessIsRaceFree(t *testing.T) {
	c := New(64)
	var g errgroup.Group
	for i := 0; i < 128; i++ {
		i := i
		g.Go(func() error {
			k := Key(float64(i), 10)
			c.Put(k, "x")
			c.Get(k)
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
