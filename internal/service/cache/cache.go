package cache

import "time"

// BytesCache is a minimal cache API storing rendered response bytes with TTL.
// Keys for generated data must embed the clock reading (minute bucket) so a
// hit can never serve a stale window.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
