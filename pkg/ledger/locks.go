package ledger

import "sync"

// keyedMutex serializes mutating operations per debt ID, so two concurrent
// payments cannot both compute from the same stale outstanding amount. The
// store's version condition remains the backstop for other processes.
type keyedMutex struct {
	locks sync.Map // debt ID -> *sync.Mutex
}

// lock acquires the mutex for key and returns its release func.
func (k *keyedMutex) lock(key string) func() {
	v, _ := k.locks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
