package service

import (
	"slices"
	"sync"
)

// roomLocks hands out one mutex per room.
type roomLocks struct {
	mu    sync.Mutex
	rooms map[string]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{rooms: map[string]*sync.Mutex{}}
}

func (l *roomLocks) get(roomID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.rooms[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.rooms[roomID] = m
	}

	return m
}

// lock acquires the given rooms in ascending ID order and returns the matching unlock.
func (l *roomLocks) lock(roomIDs ...string) (unlock func()) {
	ids := slices.Compact(slices.Sorted(slices.Values(roomIDs)))

	held := make([]*sync.Mutex, 0, len(ids))
	for _, id := range ids {
		m := l.get(id)
		m.Lock()

		held = append(held, m)
	}

	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
