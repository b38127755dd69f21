package scopeconfig

import "time"

// Builder is a fluent constructor for ScopeConfig, mirroring the
// preset/override style the consensus crate exposes to callers who want
// something more self-documenting than struct literals.
type Builder struct {
	config ScopeConfig
}

// NewBuilder starts from the global default.
func NewBuilder() *Builder {
	return &Builder{config: Default()}
}

// FromExisting starts a builder from an existing ScopeConfig, useful for
// partial updates.
func FromExisting(c ScopeConfig) *Builder {
	return &Builder{config: c}
}

func (b *Builder) WithNetworkType(nt NetworkType) *Builder {
	b.config.NetworkType = nt
	return b
}

func (b *Builder) WithThreshold(threshold float64) *Builder {
	b.config.DefaultConsensusThreshold = threshold
	return b
}

func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.config.DefaultTimeout = timeout
	return b
}

func (b *Builder) WithLivenessCriteria(livenessYes bool) *Builder {
	b.config.DefaultLivenessYes = livenessYes
	return b
}

func (b *Builder) WithMaxRounds(maxRounds *uint32) *Builder {
	b.config.MaxRoundsOverride = maxRounds
	return b
}

func (b *Builder) WithConfig(c ScopeConfig) *Builder {
	b.config = c
	return b
}

// P2PPreset resets to P2P with common defaults.
func (b *Builder) P2PPreset() *Builder {
	b.config = FromNetworkType(P2P)
	return b
}

// GossipsubPreset resets to Gossipsub with common defaults.
func (b *Builder) GossipsubPreset() *Builder {
	b.config = FromNetworkType(Gossipsub)
	return b
}

// StrictConsensus raises the threshold to 0.9.
func (b *Builder) StrictConsensus() *Builder {
	b.config.DefaultConsensusThreshold = 0.9
	return b
}

// FastConsensus lowers the threshold to 0.6 and the timeout to 30s.
func (b *Builder) FastConsensus() *Builder {
	b.config.DefaultConsensusThreshold = 0.6
	b.config.DefaultTimeout = 30 * time.Second
	return b
}

// Validate runs ScopeConfig.Validate on the builder's current state.
func (b *Builder) Validate() error {
	return b.config.Validate()
}

// Build validates and returns the built ScopeConfig.
func (b *Builder) Build() (ScopeConfig, error) {
	if err := b.Validate(); err != nil {
		return ScopeConfig{}, err
	}
	return b.config, nil
}

// GetConfig returns the builder's current (possibly invalid) state.
func (b *Builder) GetConfig() ScopeConfig {
	return b.config
}
