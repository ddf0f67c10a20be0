package taskfactory

import (
	"fmt"
	"runtime"
	"sync"
	"weak"

	"golang.org/x/sync/singleflight"

	"github.com/botzz826/gradle/internal/core/domain"
)

// InfoStore memoizes scan results per live task type.
//
// Entries are keyed weakly: the cache never keeps a type alive, and a
// runtime cleanup evicts the entry once the type is collected. Concurrent
// first-time lookups of the same type share a single scan. Scan failures
// are handed to every waiting caller and are not cached, so a later lookup
// scans again.
type InfoStore struct {
	scanner *Scanner

	group singleflight.Group

	mu    sync.RWMutex
	infos map[weak.Pointer[domain.Type]]*domain.TaskClassInfo
}

// NewInfoStore creates an empty InfoStore resolving types through the
// given scanner.
func NewInfoStore(scanner *Scanner) *InfoStore {
	return &InfoStore{
		scanner: scanner,
		infos:   make(map[weak.Pointer[domain.Type]]*domain.TaskClassInfo),
	}
}

// Get returns the action metadata for the given type, scanning at most
// once per live type.
func (s *InfoStore) Get(t *domain.Type) (*domain.TaskClassInfo, error) {
	if t == nil {
		return nil, domain.ErrNilTaskType
	}

	key := weak.Make(t)

	s.mu.RLock()
	info, ok := s.infos[key]
	s.mu.RUnlock()
	if ok {
		return info, nil
	}

	// The flight key is the type's address. The strong reference held by
	// this call keeps it stable until the flight completes.
	result, err, _ := s.group.Do(fmt.Sprintf("%p", t), func() (any, error) {
		s.mu.RLock()
		cached, hit := s.infos[key]
		s.mu.RUnlock()
		if hit {
			return cached, nil
		}

		scanned, err := s.scanner.Scan(t)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.infos[key] = scanned
		s.mu.Unlock()

		runtime.AddCleanup(t, s.evict, key)
		return scanned, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.TaskClassInfo), nil
}

// evict drops the entry of a collected type.
func (s *InfoStore) evict(key weak.Pointer[domain.Type]) {
	s.mu.Lock()
	delete(s.infos, key)
	s.mu.Unlock()
}

// Purge drops every memoized entry, forcing fresh scans. Useful when type
// registrations are replaced wholesale, e.g. on a daemon reload.
func (s *InfoStore) Purge() {
	s.mu.Lock()
	s.infos = make(map[weak.Pointer[domain.Type]]*domain.TaskClassInfo)
	s.mu.Unlock()
}

// Size reports the number of memoized entries, including entries whose
// types are collected but not yet cleaned up.
func (s *InfoStore) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.infos)
}
