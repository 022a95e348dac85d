// Package notify carries backend error messages to whatever surface wants
// to show them. A single listener is supported; registering a new one
// replaces the old.
package notify

import "sync"

// Sink is a last-wins single-listener notification channel. Publishing
// with no listener registered is a silent no-op.
type Sink struct {
	mu sync.Mutex
	fn func(message string)
}

// New creates an empty sink
func New() *Sink {
	return &Sink{}
}

// Register installs the listener, replacing any previous one
func (s *Sink) Register(fn func(message string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fn = fn
}

// Publish delivers a message to the current listener, if any
func (s *Sink) Publish(message string) {
	s.mu.Lock()
	fn := s.fn
	s.mu.Unlock()

	if fn != nil {
		fn(message)
	}
}
