package storage

import "time"

// Clock abstracts time so TTL and fallback-delay boundaries are testable.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
