package store

import (
	"strconv"
	"sync"
	"time"
)

// Keyed is anything with a stable identifier.
type Keyed interface {
	Key() string
}

// Store is a normalized in-memory copy of a remote list, keyed by id.
// It is only ever replaced wholesale from a fresh fetch; there is no
// local merge.
type Store[T Keyed] struct {
	mu        sync.RWMutex
	items     map[string]T
	order     []string
	fetchedAt time.Time
	now       func() time.Time
}

// New constructs an empty Store.
func New[T Keyed]() *Store[T] {
	return &Store[T]{items: make(map[string]T), now: time.Now}
}

// unkeyedPrefix marks items stored by position because they had no id.
const unkeyedPrefix = "\x00pos:"

// Replace swaps the contents for items. Later duplicates of an id win but
// keep the position of the first occurrence. Items without an id are kept
// by position and are not reachable through Get.
func (s *Store[T]) Replace(items []T) {
	next := make(map[string]T, len(items))
	order := make([]string, 0, len(items))
	for i, it := range items {
		k := it.Key()
		if k == "" {
			k = unkeyedPrefix + strconv.Itoa(i)
		}
		if _, seen := next[k]; !seen {
			order = append(order, k)
		}
		next[k] = it
	}
	s.mu.Lock()
	s.items = next
	s.order = order
	s.fetchedAt = s.now()
	s.mu.Unlock()
}

// List returns items in arrival order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.items[k])
	}
	return out
}

func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// FetchedAt is the time of the last Replace; zero if never loaded.
func (s *Store[T]) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// Loaded reports whether Replace has been called at least once.
func (s *Store[T]) Loaded() bool { return !s.FetchedAt().IsZero() }
