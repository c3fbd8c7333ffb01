package cache

import (
	"sync"
	"time"

	"github.com/DanRulev/kotoba.git/internal/host"
)

// Session is one player's host plus the time it was last touched.
type Session struct {
	mu       sync.Mutex
	host     *host.Host
	lastSeen time.Time
	now      func() time.Time
}

// Do runs fn with exclusive access to the session's host.
func (s *Session) Do(fn func(h *host.Host)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
	fn(s.host)
}

func (s *Session) touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = s.now()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type Cache struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// clock is the time source handed to sessions. It reads c.now on every call
// so sessions and Sweep agree on the time.
func (c *Cache) clock() time.Time {
	return c.now()
}

func NewCache() *Cache {
	return &Cache{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// GetOrCreate returns the session for key, building its host with create on
// first use. A hit counts as activity, so a sweep cannot drop a session a
// caller has just fetched.
func (c *Cache) GetOrCreate(key string, create func() (*host.Host, error)) (*Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.sessions[key]; ok {
		s.touch()
		return s, nil
	}

	h, err := create()
	if err != nil {
		return nil, err
	}

	s := &Session{host: h, lastSeen: c.now(), now: c.clock}
	c.sessions[key] = s
	return s, nil
}

func (c *Cache) Get(key string) (*Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, exists := c.sessions[key]
	return s, exists
}

func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, key)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sessions)
}

// Sweep drops sessions idle for longer than ttl and returns how many went.
func (c *Cache) Sweep(ttl time.Duration) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-ttl)
	removed := 0
	for key, s := range c.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(c.sessions, key)
			removed++
		}
	}
	return removed
}
