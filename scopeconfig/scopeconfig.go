// Package scopeconfig defines the per-scope default configuration (§4.6):
// network type, consensus threshold, timeout, liveness bias, and round
// cap override, plus the builder used to construct and validate one.
package scopeconfig

import (
	"time"

	"github.com/vacp2p/hashgraph-like-consensus/cerr"
	"github.com/vacp2p/hashgraph-like-consensus/validate"
)

// NetworkType selects the round-advancement policy for sessions created
// under a scope.
type NetworkType int

const (
	// Gossipsub advances round 1 -> 2 on the first accepted vote and caps
	// at max_rounds (default 2).
	Gossipsub NetworkType = iota
	// P2P increments round once per accepted vote, capped at max_rounds
	// if non-zero, else a dynamic ceil(n*threshold).
	P2P
)

// ScopeConfig holds the defaults applied to proposals created (or
// ingested) under a scope, absent an explicit per-proposal override.
type ScopeConfig struct {
	NetworkType               NetworkType
	DefaultConsensusThreshold float64
	DefaultTimeout            time.Duration
	DefaultLivenessYes        bool
	// MaxRoundsOverride, when non-nil, overrides the network type's
	// default round cap. A value of 0 is only legal for P2P, where it
	// signals dynamic round-cap calculation.
	MaxRoundsOverride *uint32
}

// Default returns the global default: Gossipsub, threshold 2/3, 60s
// timeout, liveness-YES, no round override.
func Default() ScopeConfig {
	return ScopeConfig{
		NetworkType:               Gossipsub,
		DefaultConsensusThreshold: 2.0 / 3.0,
		DefaultTimeout:            60 * time.Second,
		DefaultLivenessYes:        true,
		MaxRoundsOverride:         nil,
	}
}

// FromNetworkType returns the global default with only the network type
// substituted.
func FromNetworkType(nt NetworkType) ScopeConfig {
	cfg := Default()
	cfg.NetworkType = nt
	return cfg
}

// Validate enforces §4.6: threshold in [0,1], timeout > 0, and a zero
// MaxRoundsOverride only for P2P.
func (c ScopeConfig) Validate() error {
	if err := validate.Threshold(c.DefaultConsensusThreshold); err != nil {
		return err
	}
	if err := validate.Timeout(c.DefaultTimeout); err != nil {
		return err
	}
	if c.MaxRoundsOverride != nil && *c.MaxRoundsOverride == 0 && c.NetworkType == Gossipsub {
		return cerr.ErrInvalidScopeConfig
	}
	return nil
}

// RoundPolicy returns the (maxRounds, useGossipsubRounds) pair a
// ConsensusConfig needs, derived from the network type and override.
func (c ScopeConfig) RoundPolicy() (maxRounds uint32, useGossipsubRounds bool) {
	switch c.NetworkType {
	case Gossipsub:
		if c.MaxRoundsOverride != nil {
			return *c.MaxRoundsOverride, true
		}
		return 2, true
	default: // P2P
		if c.MaxRoundsOverride != nil {
			return *c.MaxRoundsOverride, false
		}
		return 0, false
	}
}
