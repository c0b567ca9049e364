package core

import (
	"sync"

	"github.com/google/uuid"
)

// entityLocks is an in-process advisory lock per entity ID. It keeps a
// scan or CV from being processed twice concurrently inside one
// daemon; the database status guard covers everything else.
type entityLocks struct {
	mu   sync.Mutex
	held map[uuid.UUID]struct{}
}

func newEntityLocks() *entityLocks {
	return &entityLocks{held: make(map[uuid.UUID]struct{})}
}

// TryAcquire takes the lock for id, reporting false when already held.
func (l *entityLocks) TryAcquire(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[id]; ok {
		return false
	}
	l.held[id] = struct{}{}
	return true
}

func (l *entityLocks) Release(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, id)
}
