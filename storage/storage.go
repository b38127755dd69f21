// Package storage defines the session registry abstraction (§4.5): a
// per-scope map of proposal-id -> Session plus a per-scope config map,
// with an atomicity contract on the mutator-based update operations.
package storage

import (
	"context"

	"github.com/vacp2p/hashgraph-like-consensus/scopeconfig"
	"github.com/vacp2p/hashgraph-like-consensus/session"
)

// SessionMutator observes and mutates a session as one indivisible step
// relative to other session-level operations on the same (scope, id).
type SessionMutator[R any] func(*session.Session) (R, error)

// ScopeSessionsMutator observes a scope's full session list and returns
// its replacement as one indivisible step (e.g. reordered, truncated).
type ScopeSessionsMutator func([]*session.Session) ([]*session.Session, error)

//go:generate mockgen -destination=storagemock/mock.go -package=storagemock . Storage

// Storage is the session registry contract every service facade is
// built against. Implementations must honor the atomicity contract
// documented on UpdateSession and UpdateScopeSessions.
type Storage[Scope comparable] interface {
	SaveSession(ctx context.Context, scope Scope, s *session.Session) error
	GetSession(ctx context.Context, scope Scope, proposalID uint32) (*session.Session, error)
	RemoveSession(ctx context.Context, scope Scope, proposalID uint32) (*session.Session, error)
	ListScopeSessions(ctx context.Context, scope Scope) ([]*session.Session, error)
	ReplaceScopeSessions(ctx context.Context, scope Scope, sessions []*session.Session) error
	ListScopes(ctx context.Context) ([]Scope, error)

	// UpdateSession invokes mutator against the session at (scope, id)
	// holding an exclusive lock across the call, so no other mutator on
	// the same key can interleave. Returns ErrSessionNotFound if absent.
	UpdateSession(ctx context.Context, scope Scope, proposalID uint32, mutator SessionMutator[session.Transition]) (session.Transition, error)

	// UpdateScopeSessions invokes mutator against the full session list
	// for scope as one indivisible step.
	UpdateScopeSessions(ctx context.Context, scope Scope, mutator ScopeSessionsMutator) error

	GetScopeConfig(ctx context.Context, scope Scope) (scopeconfig.ScopeConfig, bool, error)
	SetScopeConfig(ctx context.Context, scope Scope, cfg scopeconfig.ScopeConfig) error
	UpdateScopeConfig(ctx context.Context, scope Scope, mutator func(*scopeconfig.ScopeConfig) error) error
}
