package lib

import "sync"

// StrHasher gives a unique int64 to each unique string, starting at 1 and counting up
// in the order the strings are first seen. It doesn't actually hash the strings, it
// stores a map of [string]int64, so the IDs are stable for a given insertion order.
type StrHasher struct {
	mu      *sync.Mutex
	ids     map[string]int64
	names   []string
	counter int64
}

func NewStrHasher() *StrHasher {
	return &StrHasher{
		mu:      &sync.Mutex{},
		ids:     make(map[string]int64),
		counter: 0,
	}
}

// Hash returns a unique int64 for each unique string.
func (s *StrHasher) Hash(str string) (id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ok bool
	if id, ok = s.ids[str]; !ok {
		id = s.counter + 1
		s.counter = id
		s.ids[str] = id
		s.names = append(s.names, str)
	}
	return id
}

// Lookup returns the ID for str without assigning a new one.
func (s *StrHasher) Lookup(str string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.ids[str]
	return id, ok
}

// Name is the inverse of Hash, it returns "" for IDs that were never handed out.
func (s *StrHasher) Name(id int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id < 1 || id > int64(len(s.names)) {
		return ""
	}
	return s.names[id-1]
}

// Len returns how many unique strings have been seen.
func (s *StrHasher) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.names)
}
