// Package scrolllock suppresses page scrolling while an overlay is open.
//
// Owners acquire the lock with their own token and must release it on every
// exit path. The page checks Locked before handling scroll input.
package scrolllock

// Lock tracks which owners currently hold the page scroll.
type Lock struct {
	holders map[string]struct{}
}

// New returns an unlocked Lock.
func New() *Lock {
	return &Lock{holders: make(map[string]struct{})}
}

// Acquire marks token as holding the lock. Acquiring twice is harmless.
func (l *Lock) Acquire(token string) {
	if l == nil {
		return
	}
	l.holders[token] = struct{}{}
}

// Release drops token's hold. Unknown tokens are ignored.
func (l *Lock) Release(token string) {
	if l == nil {
		return
	}
	delete(l.holders, token)
}

// Locked reports whether any owner holds the lock.
func (l *Lock) Locked() bool {
	return l != nil && len(l.holders) > 0
}
