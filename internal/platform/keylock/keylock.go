// Package keylock provides named mutexes for serializing read-modify-write
// cycles against individual storage keys.
package keylock

import "sync"

// KeyedMutex hands out one mutex per key. Entries live for the lifetime of
// the process; the key space here is usernames, which is bounded by the
// account list.
type KeyedMutex struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func New() *KeyedMutex {
	return &KeyedMutex{m: make(map[string]*sync.Mutex)}
}

// Lock locks the mutex for key and returns its unlock function.
func (km *KeyedMutex) Lock(key string) func() {
	km.mu.Lock()
	l, ok := km.m[key]
	if !ok {
		l = &sync.Mutex{}
		km.m[key] = l
	}
	km.mu.Unlock()

	l.Lock()
	return l.Unlock
}
