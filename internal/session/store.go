// Package session manages segmenters for concurrent hosts.
//
// A script.Segmenter is single-owner. A Store gives every open script (an
// editor tab, a watched file) its own segmenter and serialises access to it.
package session

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/leapstack-labs/sqlseg/pkg/script"
)

// Session is one open script with its own segmenter.
type Session struct {
	ID   string
	Name string

	mu      sync.Mutex
	seg     *script.Segmenter
	version int
}

// Do runs fn with exclusive access to the session's segmenter.
func (s *Session) Do(fn func(*script.Segmenter)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.seg)
}

// Update replaces the script text and bumps the version.
func (s *Session) Update(text string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seg.SetScript(text)
	s.version++
	return s.version
}

// Version returns how many times the script was set.
func (s *Session) Version() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.version
}

// Segments returns the current statements of the session's script.
func (s *Session) Segments() []script.Segment {
	var segs []script.Segment
	s.Do(func(seg *script.Segmenter) {
		segs = seg.Segments()
	})
	return segs
}

// Store holds open sessions keyed by ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	names    map[string]string // name -> ID

	opts []script.Option
}

// NewStore creates an empty store. Every session's segmenter is built with opts.
func NewStore(opts ...script.Option) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		names:    make(map[string]string),
		opts:     opts,
	}
}

// Open returns the session for name, creating it if needed, and sets its
// script text.
func (s *Store) Open(name, text string) *Session {
	s.mu.Lock()
	sess, ok := s.lookupLocked(name)
	if !ok {
		sess = &Session{
			ID:   uuid.NewString(),
			Name: name,
			seg:  script.New(s.opts...),
		}
		s.sessions[sess.ID] = sess
		s.names[name] = sess.ID
	}
	s.mu.Unlock()

	sess.Update(text)
	return sess
}

func (s *Store) lookupLocked(name string) (*Session, bool) {
	id, ok := s.names[name]
	if !ok {
		return nil, false
	}
	sess, ok := s.sessions[id]
	return sess, ok
}

// Get retrieves a session by ID.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	return sess, ok
}

// Find retrieves a session by name.
func (s *Store) Find(name string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lookupLocked(name)
}

// Close removes a session. It reports whether the session existed.
func (s *Store) Close(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	delete(s.sessions, id)
	delete(s.names, sess.Name)
	return true
}

// Names returns the names of all open sessions, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.names))
	for name := range s.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of open sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
