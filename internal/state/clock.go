package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// revisionClock counts scene mutations.
type revisionClock struct {
	counter uint64
}

func (c *revisionClock) Tick() uint64 {
	return atomic.AddUint64(&c.counter, 1)
}

func (c *revisionClock) Now() uint64 {
	return atomic.LoadUint64(&c.counter)
}

func newStickerID() string {
	return uuid.NewString()
}
