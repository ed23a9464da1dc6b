package service

import "sync"

// billLocks serializes mutations per bill. Entries are reference counted
// and dropped once no goroutine holds or waits for them.
type billLocks struct {
	mu    sync.Mutex
	locks map[string]*billLock
}

type billLock struct {
	mu   sync.Mutex
	refs int
}

func newBillLocks() *billLocks {
	return &billLocks{locks: make(map[string]*billLock)}
}

// Lock blocks until the bill is free and returns the matching unlock func.
func (l *billLocks) Lock(billID string) func() {
	l.mu.Lock()
	lk, ok := l.locks[billID]
	if !ok {
		lk = &billLock{}
		l.locks[billID] = lk
	}
	lk.refs++
	l.mu.Unlock()

	lk.mu.Lock()
	return func() {
		lk.mu.Unlock()
		l.mu.Lock()
		lk.refs--
		if lk.refs == 0 {
			delete(l.locks, billID)
		}
		l.mu.Unlock()
	}
}
