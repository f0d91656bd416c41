package seq

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// EnableCache memoises up to size preprocessed fetches keyed by physical
// index. Only effective while on-the-fly preprocessing is enabled; every
// mutation purges the cache.
func (s *Sequence[T]) EnableCache(size int) error {
	c, err := lru.New[int, []T](size)
	if err != nil {
		return fmt.Errorf("enable cache: %v: %w", err, ErrInvalidArgument)
	}
	s.cache = c
	return nil
}

// DisableCache drops the fetch cache.
func (s *Sequence[T]) DisableCache() { s.cache = nil }

// CacheLen reports the number of cached fetches; 0 when disabled.
func (s *Sequence[T]) CacheLen() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// purgeCache invalidates every cached fetch; called by every mutation.
func (s *Sequence[T]) purgeCache() {
	if s.cache != nil {
		s.cache.Purge()
	}
}
