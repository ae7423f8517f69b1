// Package keylock provides per-key reader/writer locks.
// Entries are reference counted and dropped once no goroutine holds or waits on them.
package keylock

import "sync"

type entry struct {
	mu   sync.RWMutex
	refs int
}

// Locks is a registry of RWMutexes keyed by K. The zero value is ready to use.
type Locks[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*entry
}

func (l *Locks[K]) acquire(key K) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.entries == nil {
		l.entries = make(map[K]*entry)
	}
	e, ok := l.entries[key]
	if !ok {
		e = &entry{}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *Locks[K]) release(key K, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

// Lock takes the exclusive lock for key and returns its unlock func.
func (l *Locks[K]) Lock(key K) (unlock func()) {
	e := l.acquire(key)
	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.release(key, e)
	}
}

// RLock takes the shared lock for key and returns its unlock func.
func (l *Locks[K]) RLock(key K) (unlock func()) {
	e := l.acquire(key)
	e.mu.RLock()
	return func() {
		e.mu.RUnlock()
		l.release(key, e)
	}
}

// Len reports how many keys currently have holders or waiters.
func (l *Locks[K]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
