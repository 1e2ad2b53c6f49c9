package auth

import (
	"context"
	"sync"
)

// Session holds the process-wide current identity. It is set on sign-in,
// cleared on sign-out and observable through Subscribe.
type Session struct {
	// notifyMu orders notifications the same way as the changes they report.
	notifyMu    sync.Mutex
	mu          sync.RWMutex
	current     *Identity
	nextID      int
	subscribers map[int]func(*Identity)
}

// NewSession returns a session with nobody signed in.
func NewSession() *Session {
	return &Session{subscribers: make(map[int]func(*Identity))}
}

// SignIn makes id the current identity and notifies subscribers.
func (s *Session) SignIn(id Identity) {
	s.set(&id)
}

// SignOut clears the current identity and notifies subscribers.
func (s *Session) SignOut() {
	s.set(nil)
}

// Current returns a copy of the current identity, or nil.
func (s *Session) Current() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyIdentity(s.current)
}

// Identity implements Resolver. An identity attached to ctx takes precedence
// over the session's own.
func (s *Session) Identity(ctx context.Context) (Identity, error) {
	if id, ok := FromContext(ctx); ok {
		return id, nil
	}
	if cur := s.Current(); cur != nil {
		return *cur, nil
	}
	return Identity{}, ErrUnauthorized
}

// Subscribe registers fn to be called with every identity change. fn is
// called once immediately with the current value. The returned function
// removes the subscription. fn must not sign in or out.
func (s *Session) Subscribe(fn func(*Identity)) (cancel func()) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	key := s.nextID
	s.nextID++
	s.subscribers[key] = fn
	current := copyIdentity(s.current)
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.subscribers, key)
		s.mu.Unlock()
	}
}

func (s *Session) set(id *Identity) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	s.current = id
	subs := make([]func(*Identity), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(copyIdentity(id))
	}
}

func copyIdentity(id *Identity) *Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
