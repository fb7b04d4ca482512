package triangle

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// store is the internal memo table: Index → element, holding only interior
// left-half coordinates (boundary and right-half values are derivable in
// O(1) and never stored). Entries are pure functions of the coordinate and
// the immutable base, so a stored value is permanently valid.
type store[T any] interface {
	load(Index) (T, bool)
	put(Index, T)
	size() int
}

// mapStore is the default single-goroutine store.
type mapStore[T any] struct {
	m map[Index]T
}

func newMapStore[T any]() *mapStore[T] {
	return &mapStore[T]{m: make(map[Index]T)}
}

func (s *mapStore[T]) load(i Index) (T, bool) {
	v, ok := s.m[i]

	return v, ok
}

func (s *mapStore[T]) put(i Index, v T) {
	s.m[i] = v
}

func (s *mapStore[T]) size() int {
	return len(s.m)
}

// cacheShards is the fixed shard count of shardedStore. Sixteen shards keep
// lock contention low for typical fill workloads without oversizing the
// structure.
const cacheShards = 16

// cacheShard is one lock-guarded slice of the concurrent store.
type cacheShard[T any] struct {
	mu sync.RWMutex
	m  map[Index]T
}

// shardedStore is the concurrent store behind WithConcurrentCache: a fixed
// set of RWMutex-guarded maps, with the shard chosen by xxhash of the
// packed coordinate.
type shardedStore[T any] struct {
	shards [cacheShards]cacheShard[T]
}

func newShardedStore[T any]() *shardedStore[T] {
	s := &shardedStore[T]{}
	for i := range s.shards {
		s.shards[i].m = make(map[Index]T)
	}

	return s
}

// shardFor hashes the coordinate into one of the shards.
func (s *shardedStore[T]) shardFor(i Index) *cacheShard[T] {
	var key [16]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(i.Row))
	binary.LittleEndian.PutUint64(key[8:], uint64(i.Col))

	return &s.shards[xxhash.Sum64(key[:])%cacheShards]
}

func (s *shardedStore[T]) load(i Index) (T, bool) {
	sh := s.shardFor(i)
	sh.mu.RLock()
	v, ok := sh.m[i]
	sh.mu.RUnlock()

	return v, ok
}

func (s *shardedStore[T]) put(i Index, v T) {
	sh := s.shardFor(i)
	sh.mu.Lock()
	sh.m[i] = v
	sh.mu.Unlock()
}

func (s *shardedStore[T]) size() int {
	n := 0
	for i := range s.shards {
		s.shards[i].mu.RLock()
		n += len(s.shards[i].m)
		s.shards[i].mu.RUnlock()
	}

	return n
}
