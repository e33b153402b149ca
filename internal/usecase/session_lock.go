package usecase

import "sync"

// sessionLocks hands out one mutex per game ID. An entry lives only while a
// request holds or waits for it.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{
		locks: make(map[string]*sessionLock),
	}
}

// lock - blocks until the session is free and returns the release func.
func (that *sessionLocks) lock(id string) func() {
	that.mu.Lock()
	session, ok := that.locks[id]
	if !ok {
		session = &sessionLock{}
		that.locks[id] = session
	}
	session.refs++
	that.mu.Unlock()

	session.Lock()

	return func() {
		session.Unlock()

		that.mu.Lock()
		defer that.mu.Unlock()

		session.refs--
		if session.refs == 0 {
			delete(that.locks, id)
		}
	}
}

func (that *sessionLocks) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.locks)
}
