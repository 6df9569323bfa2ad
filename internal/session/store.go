package session

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/izaj/izaj-golang/internal/kv"
)

// Storage keys used in both scopes.
const (
	tokenKey    = "token"
	identityKey = "user"
)

// State is the session state machine: Anonymous or Authenticated.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// Store owns the single current identity and decides which of the two
// storage scopes holds what:
//
//   - The identity record is written to BOTH scopes on login, so either
//     one can rehydrate display data after a restart.
//   - The auth token lives in exactly ONE scope: the durable scope when
//     the user asked to be remembered, the ephemeral scope otherwise.
//
// The asymmetry is deliberate. It means an identity can still be present
// after its token is gone, so identity presence must never be treated as
// proof of a valid token.
type Store struct {
	mu        sync.Mutex
	durable   kv.Store
	ephemeral kv.Store
	current   *Identity
	watchers  []func(*Identity)
}

// NewStore builds a session store over the two scopes. Call Rehydrate
// before serving to pick up an identity left by a previous run.
func NewStore(durable, ephemeral kv.Store) *Store {
	return &Store{durable: durable, ephemeral: ephemeral}
}

// Login records a successful authentication. All storage writes complete
// before the in-memory state flips to Authenticated, so a reader on the
// same tick never sees an authenticated state without backing data. On a
// write failure the previous state is left intact.
func (s *Store) Login(ctx context.Context, identity Identity, token string, rememberMe bool) error {
	s.mu.Lock()

	raw, err := json.Marshal(identity)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	// Identity goes to both scopes regardless of rememberMe.
	if err := s.durable.Set(ctx, identityKey, string(raw)); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.ephemeral.Set(ctx, identityKey, string(raw)); err != nil {
		s.mu.Unlock()
		return err
	}

	// The token is single-homed.
	primary, secondary := s.ephemeral, s.durable
	if rememberMe {
		primary, secondary = s.durable, s.ephemeral
	}
	if err := primary.Set(ctx, tokenKey, token); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := secondary.Delete(ctx, tokenKey); err != nil {
		s.mu.Unlock()
		return err
	}

	s.current = &identity
	s.notifyLocked()
	return nil
}

// Logout clears the token and identity from both scopes and resets the
// in-memory identity. A later Rehydrate finds nothing.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()

	for _, scope := range []kv.Store{s.durable, s.ephemeral} {
		if err := scope.Delete(ctx, tokenKey); err != nil {
			s.mu.Unlock()
			return err
		}
		if err := scope.Delete(ctx, identityKey); err != nil {
			s.mu.Unlock()
			return err
		}
	}

	s.current = nil
	s.notifyLocked()
	return nil
}

// Rehydrate restores the identity on process start: durable scope first,
// then ephemeral. A read error or corrupt record is logged and treated
// as absence, so a bad scope can never crash startup. Rehydration is
// display-only: it does not verify that a token is still present or
// valid.
func (s *Store) Rehydrate(ctx context.Context) State {
	s.mu.Lock()

	for _, scope := range []kv.Store{s.durable, s.ephemeral} {
		raw, ok, err := scope.Get(ctx, identityKey)
		if err != nil {
			log.Printf("session: reading stored identity: %v", err)
			continue
		}
		if !ok {
			continue
		}

		var identity Identity
		if err := json.Unmarshal([]byte(raw), &identity); err != nil {
			log.Printf("session: corrupt stored identity, starting anonymous: %v", err)
			continue
		}

		s.current = &identity
		s.notifyLocked()
		return Authenticated
	}

	s.current = nil
	s.mu.Unlock()
	return Anonymous
}

// Current returns a copy of the current identity, or nil when anonymous.
func (s *Store) Current() *Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	identity := *s.current
	return &identity
}

// State reports the in-memory state machine position.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Anonymous
	}
	return Authenticated
}

// Token returns the stored auth token, checking the durable scope first.
// Absence means the session is not truly authorized, whatever the
// identity says.
func (s *Store) Token(ctx context.Context) (string, bool) {
	for _, scope := range []kv.Store{s.durable, s.ephemeral} {
		token, ok, err := scope.Get(ctx, tokenKey)
		if err != nil {
			log.Printf("session: reading stored token: %v", err)
			continue
		}
		if ok {
			return token, true
		}
	}
	return "", false
}

// Subscribe registers a watcher called whenever the current identity
// changes (login, logout, rehydrate). The route guard uses this to
// re-evaluate without a manual navigation.
func (s *Store) Subscribe(fn func(*Identity)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// notifyLocked is called with s.mu held. It snapshots the watcher list
// and current identity, releases the lock, then runs the watchers, so a
// watcher is free to read back into the store.
func (s *Store) notifyLocked() {
	watchers := make([]func(*Identity), len(s.watchers))
	copy(watchers, s.watchers)

	var snapshot *Identity
	if s.current != nil {
		identity := *s.current
		snapshot = &identity
	}
	s.mu.Unlock()

	for _, fn := range watchers {
		fn(snapshot)
	}
}
