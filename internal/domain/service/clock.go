package service

import "time"

// Clock is the time source for acceptance timestamps and window cutoffs.
type Clock interface {
	Now() time.Time
}
