package mock

import "sync"

// Store is an in-memory key-value store with injectable failures.
type Store struct {
	data   map[string][]byte
	mutex  sync.RWMutex
	writes int

	// GetErr and SetErr, when set, are returned by every Get or Set call.
	GetErr error
	SetErr error
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (s *Store) Get(key string) ([]byte, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.GetErr != nil {
		return nil, false, s.GetErr
	}
	value, exists := s.data[key]
	if !exists {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set stores a copy of value under key.
func (s *Store) Set(key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.SetErr != nil {
		return s.SetErr
	}
	s.data[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// Writes returns the number of successful Set calls.
func (s *Store) Writes() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.writes
}

// Clear removes every key.
func (s *Store) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data = make(map[string][]byte)
	s.writes = 0
}
