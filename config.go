package consensus

import (
	"context"
	"time"

	"github.com/vacp2p/hashgraph-like-consensus/scopeconfig"
	"github.com/vacp2p/hashgraph-like-consensus/session"
	"github.com/vacp2p/hashgraph-like-consensus/wire"
)

func scopeConfigToSessionConfig(cfg scopeconfig.ScopeConfig) session.Config {
	maxRounds, useGossipsubRounds := cfg.RoundPolicy()
	return session.Config{
		ConsensusThreshold: cfg.DefaultConsensusThreshold,
		ConsensusTimeout:   cfg.DefaultTimeout,
		MaxRounds:          maxRounds,
		UseGossipsubRounds: useGossipsubRounds,
		LivenessCriteria:   cfg.DefaultLivenessYes,
	}
}

// resolveConfig implements §4.6's resolution order: explicit override >
// scope config > global default. When proposal is non-nil, its
// expiration_timestamp - timestamp overrides the resolved timeout, and
// its liveness_criteria_yes overrides the resolved liveness bias, so the
// timeout task and the expiration gate always agree.
func (s *Service[Scope]) resolveConfig(ctx context.Context, scope Scope, override *session.Config, proposal *wire.Proposal) (session.Config, error) {
	var base session.Config
	switch {
	case override != nil:
		base = *override
	default:
		cfg, ok, err := s.storage.GetScopeConfig(ctx, scope)
		if err != nil {
			return session.Config{}, err
		}
		if ok {
			base = scopeConfigToSessionConfig(cfg)
		} else {
			base = scopeConfigToSessionConfig(scopeconfig.Default())
		}
	}

	if proposal == nil {
		return base, nil
	}

	timeout := base.ConsensusTimeout
	if proposal.ExpirationTimestamp > proposal.Timestamp {
		timeout = time.Duration(proposal.ExpirationTimestamp-proposal.Timestamp) * time.Second
	}

	return session.Config{
		ConsensusThreshold: base.ConsensusThreshold,
		ConsensusTimeout:   timeout,
		MaxRounds:          base.MaxRounds,
		UseGossipsubRounds: base.UseGossipsubRounds,
		LivenessCriteria:   proposal.LivenessCriteriaYes,
	}, nil
}
