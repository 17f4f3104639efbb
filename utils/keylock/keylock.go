package keylock

import "sync"

// KeyLock provides mutual exclusion per string key. The sync engine locks a
// product's etsy id around every status transition so a concurrent pull and
// push cannot interleave mid-update on the same product.
type KeyLock struct {
	locks sync.Map // key -> *sync.Mutex
}

func New() *KeyLock {
	return &KeyLock{}
}

func (k *KeyLock) Lock(key string) {
	mu, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
}

func (k *KeyLock) Unlock(key string) {
	mu, ok := k.locks.Load(key)
	if !ok {
		return
	}
	mu.(*sync.Mutex).Unlock()
}
