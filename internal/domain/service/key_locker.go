package service

import "context"

// KeyLocker provides mutual exclusion per string key.
type KeyLocker interface {
	// Lock blocks until key is held or ctx is done. The returned func releases the key.
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
