package consensus

import (
	"context"

	"github.com/vacp2p/hashgraph-like-consensus/session"
)

// ScopeStats summarizes the sessions currently tracked under a scope, for
// monitoring and dashboards.
type ScopeStats struct {
	TotalSessions    int
	ActiveSessions   int
	FailedSessions   int
	ConsensusReached int
}

// ScopeStats returns counts of total, active, failed, and
// consensus-reached sessions in scope. An unknown or empty scope returns
// a zero-valued ScopeStats, not an error.
func (s *Service[Scope]) ScopeStats(ctx context.Context, scope Scope) (ScopeStats, error) {
	sessions, err := s.storage.ListScopeSessions(ctx, scope)
	if err != nil {
		return ScopeStats{}, err
	}

	stats := ScopeStats{TotalSessions: len(sessions)}
	for _, sess := range sessions {
		switch sess.State {
		case session.Active:
			stats.ActiveSessions++
		case session.ConsensusReached:
			stats.ConsensusReached++
		case session.Failed:
			stats.FailedSessions++
		}
	}
	return stats, nil
}
