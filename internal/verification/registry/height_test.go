package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedHeight(t *testing.T) {
	assert.Equal(t, uint64(100), FixedHeight(100).BlockHeight())
}

func TestWallClockHeight(t *testing.T) {
	genesis := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewWallClockHeight(genesis, 10*time.Minute)

	at := func(d time.Duration) uint64 {
		h.Now = func() time.Time { return genesis.Add(d) }
		return h.BlockHeight()
	}

	assert.Equal(t, uint64(0), at(-time.Hour))
	assert.Equal(t, uint64(0), at(0))
	assert.Equal(t, uint64(0), at(9*time.Minute))
	assert.Equal(t, uint64(1), at(10*time.Minute))
	assert.Equal(t, uint64(144), at(24*time.Hour))

	h.Interval = 0
	assert.Equal(t, uint64(0), h.BlockHeight())
}
