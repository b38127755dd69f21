package storage

import (
	"context"
	"sync"

	"github.com/vacp2p/hashgraph-like-consensus/cerr"
	"github.com/vacp2p/hashgraph-like-consensus/scopeconfig"
	"github.com/vacp2p/hashgraph-like-consensus/session"
)

// InMemory is the default, non-persistent Storage backend: a scope ->
// proposal-id -> session map plus a scope -> config map, both guarded by
// a single mutex. It satisfies the atomicity contract by holding that
// mutex across the full extent of any mutator invocation.
type InMemory[Scope comparable] struct {
	mu       sync.Mutex
	sessions map[Scope]map[uint32]*session.Session
	configs  map[Scope]scopeconfig.ScopeConfig
}

// NewInMemory constructs an empty in-memory registry.
func NewInMemory[Scope comparable]() *InMemory[Scope] {
	return &InMemory[Scope]{
		sessions: make(map[Scope]map[uint32]*session.Session),
		configs:  make(map[Scope]scopeconfig.ScopeConfig),
	}
}

func (s *InMemory[Scope]) SaveSession(_ context.Context, scope Scope, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	scopeSessions, ok := s.sessions[scope]
	if !ok {
		scopeSessions = make(map[uint32]*session.Session)
		s.sessions[scope] = scopeSessions
	}
	scopeSessions[sess.Proposal.ProposalID] = sess
	return nil
}

func (s *InMemory[Scope]) GetSession(_ context.Context, scope Scope, proposalID uint32) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	scopeSessions, ok := s.sessions[scope]
	if !ok {
		return nil, cerr.ErrSessionNotFound
	}
	sess, ok := scopeSessions[proposalID]
	if !ok {
		return nil, cerr.ErrSessionNotFound
	}
	return sess, nil
}

func (s *InMemory[Scope]) RemoveSession(_ context.Context, scope Scope, proposalID uint32) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	scopeSessions, ok := s.sessions[scope]
	if !ok {
		return nil, nil
	}
	sess, ok := scopeSessions[proposalID]
	if !ok {
		return nil, nil
	}
	delete(scopeSessions, proposalID)
	return sess, nil
}

func (s *InMemory[Scope]) ListScopeSessions(_ context.Context, scope Scope) ([]*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	scopeSessions, ok := s.sessions[scope]
	if !ok {
		return nil, nil
	}
	out := make([]*session.Session, 0, len(scopeSessions))
	for _, sess := range scopeSessions {
		out = append(out, sess)
	}
	return out, nil
}

func (s *InMemory[Scope]) ReplaceScopeSessions(_ context.Context, scope Scope, sessions []*session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	newMap := make(map[uint32]*session.Session, len(sessions))
	for _, sess := range sessions {
		newMap[sess.Proposal.ProposalID] = sess
	}
	s.sessions[scope] = newMap
	return nil
}

func (s *InMemory[Scope]) ListScopes(_ context.Context) ([]Scope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Scope, 0, len(s.sessions))
	for scope := range s.sessions {
		out = append(out, scope)
	}
	return out, nil
}

// UpdateSession holds the registry's single lock across the mutator
// call, so it observes and commits the session mutation as one
// indivisible step relative to any other UpdateSession/AddVote on the
// same (scope, id).
func (s *InMemory[Scope]) UpdateSession(_ context.Context, scope Scope, proposalID uint32, mutator SessionMutator[session.Transition]) (session.Transition, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scopeSessions, ok := s.sessions[scope]
	if !ok {
		return session.Transition{}, cerr.ErrSessionNotFound
	}
	sess, ok := scopeSessions[proposalID]
	if !ok {
		return session.Transition{}, cerr.ErrSessionNotFound
	}
	return mutator(sess)
}

func (s *InMemory[Scope]) UpdateScopeSessions(_ context.Context, scope Scope, mutator ScopeSessionsMutator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	scopeSessions, ok := s.sessions[scope]
	if !ok {
		scopeSessions = make(map[uint32]*session.Session)
	}

	sessions := make([]*session.Session, 0, len(scopeSessions))
	for _, sess := range scopeSessions {
		sessions = append(sessions, sess)
	}

	replacement, err := mutator(sessions)
	if err != nil {
		return err
	}

	newMap := make(map[uint32]*session.Session, len(replacement))
	for _, sess := range replacement {
		newMap[sess.Proposal.ProposalID] = sess
	}
	s.sessions[scope] = newMap
	return nil
}

func (s *InMemory[Scope]) GetScopeConfig(_ context.Context, scope Scope) (scopeconfig.ScopeConfig, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg, ok := s.configs[scope]
	return cfg, ok, nil
}

func (s *InMemory[Scope]) SetScopeConfig(_ context.Context, scope Scope, cfg scopeconfig.ScopeConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[scope] = cfg
	return nil
}

func (s *InMemory[Scope]) UpdateScopeConfig(_ context.Context, scope Scope, mutator func(*scopeconfig.ScopeConfig) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.configs[scope]
	if err := mutator(&cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.configs[scope] = cfg
	return nil
}

var _ Storage[string] = (*InMemory[string])(nil)
