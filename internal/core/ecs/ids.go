package ecs

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDAllocator hands out process-unique ids for entities and disposable
// components. prefix is "E" for entities and "C" for components.
type IDAllocator interface {
	NewID(prefix string) string
}

// SequentialIDs produces "E1", "C2", ... from a single counter shared by
// every prefix. It is deterministic, which makes renderer output diffable.
type SequentialIDs struct {
	next atomic.Uint64
}

func NewSequentialIDs() *SequentialIDs {
	return &SequentialIDs{}
}

func (s *SequentialIDs) NewID(prefix string) string {
	return prefix + strconv.FormatUint(s.next.Add(1), 10)
}

// UUIDs produces "<prefix><uuid>" ids.
type UUIDs struct{}

func (UUIDs) NewID(prefix string) string {
	return prefix + uuid.NewString()
}
