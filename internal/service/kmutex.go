package service

import "sync"

// keyedMutex hands out one mutex per key. Used to serialize the member
// lookup-then-create sequence per customer email.
type keyedMutex struct {
	mu   sync.Mutex
	keys map[string]*sync.Mutex
}

func (k *keyedMutex) lock(key string) (unlock func()) {
	k.mu.Lock()
	if k.keys == nil {
		k.keys = make(map[string]*sync.Mutex)
	}
	m, ok := k.keys[key]
	if !ok {
		m = &sync.Mutex{}
		k.keys[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
