package execution

import "sync"

// orderLocks serializes mutations per manufacturing order. Every work order
// mutation runs under its owning order's lock, which is what makes the
// read-modify-write of the state machine and the cascade a single critical
// section without a global lock across orders.
type orderLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newOrderLocks() *orderLocks {
	return &orderLocks{locks: make(map[string]*sync.Mutex)}
}

// forOrder returns the mutex for one order, creating it on first use.
// Locks are never evicted; one mutex per touched order is cheap.
func (l *orderLocks) forOrder(orderID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[orderID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[orderID] = lock
	}
	return lock
}
