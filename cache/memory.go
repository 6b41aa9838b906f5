package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Memory is an in-process Store. Expired entries are evicted lazily on read.
type Memory struct {
	m    *sync.Mutex
	data map[string]entry
	now  func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		m:    new(sync.Mutex),
		data: map[string]entry{},
		now:  time.Now,
	}
}

func (s *Memory) Get(_ context.Context, key string) (string, bool) {
	s.m.Lock()
	defer s.m.Unlock()
	e, ok := s.data[key]
	if !ok {
		return "", false
	}
	if s.now().After(e.expiresAt) {
		delete(s.data, key)
		return "", false
	}
	return e.value, true
}

func (s *Memory) Set(_ context.Context, key string, value string, ttl time.Duration) {
	s.m.Lock()
	defer s.m.Unlock()
	s.data[key] = entry{value: value, expiresAt: s.now().Add(ttl)}
}
