package consensus

import (
	"context"
	"time"

	"github.com/vacp2p/hashgraph-like-consensus/scopeconfig"
)

// ScopeConfigBuilder is a fluent, storage-backed wrapper around
// scopeconfig.Builder: Initialize/Update persist the built config through
// the owning Service's Storage.
type ScopeConfigBuilder[Scope comparable] struct {
	service *Service[Scope]
	scope   Scope
	builder *scopeconfig.Builder
}

// ConfigureScope starts a config builder for scope, seeded from its
// existing configuration if one is already stored, or the global default
// otherwise.
func (s *Service[Scope]) ConfigureScope(ctx context.Context, scope Scope) (*ScopeConfigBuilder[Scope], error) {
	cfg, ok, err := s.storage.GetScopeConfig(ctx, scope)
	if err != nil {
		return nil, err
	}

	builder := scopeconfig.NewBuilder()
	if ok {
		builder = scopeconfig.FromExisting(cfg)
	}

	return &ScopeConfigBuilder[Scope]{service: s, scope: scope, builder: builder}, nil
}

func (b *ScopeConfigBuilder[Scope]) WithNetworkType(nt scopeconfig.NetworkType) *ScopeConfigBuilder[Scope] {
	b.builder.WithNetworkType(nt)
	return b
}

func (b *ScopeConfigBuilder[Scope]) WithThreshold(threshold float64) *ScopeConfigBuilder[Scope] {
	b.builder.WithThreshold(threshold)
	return b
}

func (b *ScopeConfigBuilder[Scope]) WithTimeout(timeout time.Duration) *ScopeConfigBuilder[Scope] {
	b.builder.WithTimeout(timeout)
	return b
}

func (b *ScopeConfigBuilder[Scope]) WithLivenessCriteria(livenessYes bool) *ScopeConfigBuilder[Scope] {
	b.builder.WithLivenessCriteria(livenessYes)
	return b
}

func (b *ScopeConfigBuilder[Scope]) WithMaxRounds(maxRounds *uint32) *ScopeConfigBuilder[Scope] {
	b.builder.WithMaxRounds(maxRounds)
	return b
}

func (b *ScopeConfigBuilder[Scope]) StrictConsensus() *ScopeConfigBuilder[Scope] {
	b.builder.StrictConsensus()
	return b
}

func (b *ScopeConfigBuilder[Scope]) FastConsensus() *ScopeConfigBuilder[Scope] {
	b.builder.FastConsensus()
	return b
}

// GetConfig returns the builder's current (possibly unvalidated,
// unpersisted) state.
func (b *ScopeConfigBuilder[Scope]) GetConfig() scopeconfig.ScopeConfig {
	return b.builder.GetConfig()
}

// Initialize validates and persists the built config as scope's
// configuration, overwriting any existing one.
func (b *ScopeConfigBuilder[Scope]) Initialize(ctx context.Context) (scopeconfig.ScopeConfig, error) {
	cfg, err := b.builder.Build()
	if err != nil {
		return scopeconfig.ScopeConfig{}, err
	}
	if err := b.service.storage.SetScopeConfig(ctx, b.scope, cfg); err != nil {
		return scopeconfig.ScopeConfig{}, err
	}
	return cfg, nil
}

// Update is an alias for Initialize; both replace the scope's stored
// configuration wholesale rather than merging fields.
func (b *ScopeConfigBuilder[Scope]) Update(ctx context.Context) (scopeconfig.ScopeConfig, error) {
	return b.Initialize(ctx)
}
