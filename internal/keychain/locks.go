package keychain

import "sync"

// accountLocks hands out one mutex per account. Entries are dropped once no goroutine holds or waits on them.
type accountLocks struct {
	mu    sync.Mutex
	locks map[string]*accountLock
}

type accountLock struct {
	sync.Mutex
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[string]*accountLock)}
}

// lock blocks until the account is free and returns the matching unlock func.
func (l *accountLocks) lock(account string) func() {
	l.mu.Lock()
	al, ok := l.locks[account]
	if !ok {
		al = &accountLock{}
		l.locks[account] = al
	}
	al.refs++
	l.mu.Unlock()

	al.Lock()

	return func() {
		al.Unlock()

		l.mu.Lock()
		al.refs--
		if al.refs == 0 {
			delete(l.locks, account)
		}
		l.mu.Unlock()
	}
}

func (l *accountLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
