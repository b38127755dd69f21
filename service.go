package consensus

import (
	"bytes"
	"context"
	"math"
	"sort"
	"time"

	"github.com/luxfi/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/vacp2p/hashgraph-like-consensus/cerr"
	"github.com/vacp2p/hashgraph-like-consensus/clock"
	"github.com/vacp2p/hashgraph-like-consensus/events"
	"github.com/vacp2p/hashgraph-like-consensus/session"
	"github.com/vacp2p/hashgraph-like-consensus/signer"
	"github.com/vacp2p/hashgraph-like-consensus/storage"
	"github.com/vacp2p/hashgraph-like-consensus/wire"
)

const defaultMaxSessionsPerScope = 10

// Service is the main entry point: it wires a session Storage registry
// and an event Bus together with the round/tally logic in package
// session to expose proposal creation, voting, ingestion, and timeout
// handling.
type Service[Scope comparable] struct {
	storage             storage.Storage[Scope]
	bus                 events.Bus[Scope]
	maxSessionsPerScope int
	clock               clock.Clock
	log                 log.Logger
	metrics             *serviceMetrics
}

// Option configures a Service at construction time.
type Option[Scope comparable] func(*Service[Scope])

// WithClock overrides the time source, for deterministic tests.
func WithClock[Scope comparable](c clock.Clock) Option[Scope] {
	return func(s *Service[Scope]) { s.clock = c }
}

// WithLogger overrides the structured logger, which otherwise defaults
// to a no-op.
func WithLogger[Scope comparable](logger log.Logger) Option[Scope] {
	return func(s *Service[Scope]) { s.log = logger }
}

// WithMaxSessionsPerScope overrides the per-scope bounded cache size
// (default 10, per §5's bounded cache policy).
func WithMaxSessionsPerScope[Scope comparable](n int) Option[Scope] {
	return func(s *Service[Scope]) { s.maxSessionsPerScope = n }
}

// New builds a Service from explicit Storage and Bus implementations.
// reg may be nil to skip metrics registration (e.g. in tests).
func New[Scope comparable](store storage.Storage[Scope], bus events.Bus[Scope], reg prometheus.Registerer, opts ...Option[Scope]) (*Service[Scope], error) {
	metrics, err := newServiceMetrics(reg)
	if err != nil {
		return nil, err
	}

	s := &Service[Scope]{
		storage:             store,
		bus:                 bus,
		maxSessionsPerScope: defaultMaxSessionsPerScope,
		clock:               clock.System,
		log:                 log.NewNoOpLogger(),
		metrics:             metrics,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// NewDefault builds a ready-to-use Service backed by the in-memory
// Storage and the in-process broadcast Bus — the easiest way to get
// started, mirroring the teacher's DefaultConsensusService.
func NewDefault[Scope comparable](opts ...Option[Scope]) (*Service[Scope], error) {
	return New[Scope](storage.NewInMemory[Scope](), events.NewBroadcast[Scope](0), nil, opts...)
}

// SubscribeToEvents returns a receive-only channel of lifecycle events
// across all scopes.
func (s *Service[Scope]) SubscribeToEvents() <-chan events.Scoped[Scope] {
	return s.bus.Subscribe()
}

// CreateProposal creates a vote-free proposal using the scope's resolved
// configuration. Callers are expected to cast their own vote afterward;
// proposal creation never embeds one (see DESIGN.md's open-question
// resolution).
func (s *Service[Scope]) CreateProposal(ctx context.Context, scope Scope, req CreateProposalRequest) (*wire.Proposal, error) {
	return s.CreateProposalWithConfig(ctx, scope, req, nil)
}

// CreateProposalWithConfig is CreateProposal with an explicit config
// override that takes precedence over the scope's configuration.
func (s *Service[Scope]) CreateProposalWithConfig(ctx context.Context, scope Scope, req CreateProposalRequest, override *session.Config) (*wire.Proposal, error) {
	now, err := s.clock()
	if err != nil {
		return nil, err
	}

	proposal, err := req.toProposal(now)
	if err != nil {
		return nil, err
	}

	cfg, err := s.resolveConfig(ctx, scope, override, proposal)
	if err != nil {
		return nil, err
	}

	sess, _, err := session.FromProposal(proposal, cfg, now)
	if err != nil {
		return nil, err
	}

	if err := s.storage.SaveSession(ctx, scope, sess); err != nil {
		return nil, err
	}
	if err := s.trimScopeSessions(ctx, scope); err != nil {
		return nil, err
	}

	s.metrics.sessionsCreated.Inc()
	s.log.Info("proposal created", log.Uint32("proposal_id", proposal.ProposalID))
	s.spawnTimeoutTask(scope, proposal.ProposalID, cfg.ConsensusTimeout)

	return proposal.Clone(), nil
}

// CastVote signs and applies a vote from signer on proposalID in scope.
// Fails with UserAlreadyVoted if signer's address has already voted.
//
// The tip-read, build, and insert steps all run inside the storage's
// per-session mutator so that concurrent CastVote calls for the same
// owner race on a single exclusive lock rather than on unsynchronized
// reads of the in-flight proposal state.
func (s *Service[Scope]) CastVote(ctx context.Context, scope Scope, proposalID uint32, choice bool, sgnr signer.Signer) (*wire.Vote, error) {
	now, err := s.clock()
	if err != nil {
		return nil, err
	}

	var vote *wire.Vote
	transition, err := s.storage.UpdateSession(ctx, scope, proposalID, func(sess *session.Session) (session.Transition, error) {
		if now >= sess.Proposal.ExpirationTimestamp {
			return session.Transition{}, cerr.ErrVoteExpired
		}

		address := sgnr.Address()
		if _, voted := sess.Votes[string(address.Bytes())]; voted {
			return session.Transition{}, cerr.ErrUserAlreadyVoted
		}

		built, buildErr := s.buildVote(ctx, sess.Proposal, choice, sgnr, now)
		if buildErr != nil {
			return session.Transition{}, buildErr
		}
		vote = built
		return sess.AddVote(*built, now)
	})
	if err != nil {
		s.metrics.votesRejected.Inc()
		return nil, err
	}

	s.metrics.votesAccepted.Inc()
	s.handleTransition(scope, proposalID, transition)
	return vote, nil
}

// CastVoteAndGetProposal casts a vote and returns the updated proposal
// snapshot, convenient for a creator who wants to relay it to peers.
func (s *Service[Scope]) CastVoteAndGetProposal(ctx context.Context, scope Scope, proposalID uint32, choice bool, sgnr signer.Signer) (*wire.Proposal, error) {
	if _, err := s.CastVote(ctx, scope, proposalID, choice, sgnr); err != nil {
		return nil, err
	}
	return s.GetProposal(ctx, scope, proposalID)
}

// ProcessIncomingProposal validates and stores a proposal received from
// a peer, including any votes it already carries. Fails with
// ProposalAlreadyExist if a session for this id already exists.
func (s *Service[Scope]) ProcessIncomingProposal(ctx context.Context, scope Scope, proposal *wire.Proposal) error {
	if _, err := s.storage.GetSession(ctx, scope, proposal.ProposalID); err == nil {
		return cerr.ErrProposalAlreadyExist
	}

	now, err := s.clock()
	if err != nil {
		return err
	}

	cfg, err := s.resolveConfig(ctx, scope, nil, proposal)
	if err != nil {
		return err
	}

	sess, transition, err := session.FromProposal(proposal, cfg, now)
	if err != nil {
		return err
	}

	if err := s.storage.SaveSession(ctx, scope, sess); err != nil {
		return err
	}
	if err := s.trimScopeSessions(ctx, scope); err != nil {
		return err
	}

	s.metrics.sessionsCreated.Inc()
	s.handleTransition(scope, proposal.ProposalID, transition)
	s.spawnTimeoutTask(scope, proposal.ProposalID, cfg.ConsensusTimeout)
	return nil
}

// ProcessIncomingVote validates and applies a vote received from a
// peer.
func (s *Service[Scope]) ProcessIncomingVote(ctx context.Context, scope Scope, vote wire.Vote) error {
	now, err := s.clock()
	if err != nil {
		return err
	}

	transition, err := s.storage.UpdateSession(ctx, scope, vote.ProposalID, func(sess *session.Session) (session.Transition, error) {
		return sess.AddVote(vote, now)
	})
	if err != nil {
		s.metrics.votesRejected.Inc()
		return err
	}

	s.metrics.votesAccepted.Inc()
	s.handleTransition(scope, vote.ProposalID, transition)
	return nil
}

// GetProposal returns the current proposal snapshot for (scope, id).
func (s *Service[Scope]) GetProposal(ctx context.Context, scope Scope, proposalID uint32) (*wire.Proposal, error) {
	sess, err := s.storage.GetSession(ctx, scope, proposalID)
	if err != nil {
		return nil, err
	}
	return sess.Proposal.Clone(), nil
}

// GetProposalPayload returns the payload bytes for (scope, id).
func (s *Service[Scope]) GetProposalPayload(ctx context.Context, scope Scope, proposalID uint32) ([]byte, error) {
	sess, err := s.storage.GetSession(ctx, scope, proposalID)
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), sess.Proposal.Payload...), nil
}

// GetConsensusResult returns the decided outcome for (scope, id), or
// ErrConsensusNotReached / ErrConsensusFailed.
func (s *Service[Scope]) GetConsensusResult(ctx context.Context, scope Scope, proposalID uint32) (bool, error) {
	sess, err := s.storage.GetSession(ctx, scope, proposalID)
	if err != nil {
		return false, err
	}
	return sess.ConsensusResult()
}

// GetActiveProposals returns every still-active proposal in scope, or
// nil if none are active.
func (s *Service[Scope]) GetActiveProposals(ctx context.Context, scope Scope) ([]*wire.Proposal, error) {
	sessions, err := s.storage.ListScopeSessions(ctx, scope)
	if err != nil {
		return nil, err
	}
	var out []*wire.Proposal
	for _, sess := range sessions {
		if sess.IsActive() {
			out = append(out, sess.Proposal.Clone())
		}
	}
	return out, nil
}

// GetReachedProposals returns a map from proposal id to decided result
// for every proposal in scope that has reached consensus, or nil if
// none have.
func (s *Service[Scope]) GetReachedProposals(ctx context.Context, scope Scope) (map[uint32]bool, error) {
	sessions, err := s.storage.ListScopeSessions(ctx, scope)
	if err != nil {
		return nil, err
	}
	var out map[uint32]bool
	for _, sess := range sessions {
		if result, err := sess.ConsensusResult(); err == nil {
			if out == nil {
				out = make(map[uint32]bool)
			}
			out[sess.Proposal.ProposalID] = result
		}
	}
	return out, nil
}

// HasSufficientVotesForProposal reports whether the current vote count
// meets the required threshold for the proposal's committee size.
func (s *Service[Scope]) HasSufficientVotesForProposal(ctx context.Context, scope Scope, proposalID uint32) (bool, error) {
	sess, err := s.storage.GetSession(ctx, scope, proposalID)
	if err != nil {
		return false, err
	}
	return hasSufficientVotes(uint32(len(sess.Votes)), sess.Proposal.ExpectedVotersCount, sess.Config.ConsensusThreshold), nil
}

// HandleConsensusTimeout is invoked by the spawned timeout task (or
// manually) once a proposal's resolved timeout elapses. If consensus was
// already reached it returns that result unchanged; otherwise it
// re-tallies the current votes, deciding if possible or transitioning to
// Failed and returning ErrInsufficientVotesAtTimeout.
func (s *Service[Scope]) HandleConsensusTimeout(ctx context.Context, scope Scope, proposalID uint32) (bool, error) {
	transition, err := s.storage.UpdateSession(ctx, scope, proposalID, func(sess *session.Session) (session.Transition, error) {
		return sess.Timeout(), nil
	})
	if err != nil {
		return false, err
	}

	if transition.State == session.ConsensusReached {
		s.metrics.consensusReached.Inc()
		s.bus.Publish(scope, events.ConsensusReached{ProposalID: proposalID, Result: transition.Result})
		return transition.Result, nil
	}

	s.metrics.consensusFailed.Inc()
	s.bus.Publish(scope, events.ConsensusFailed{ProposalID: proposalID})
	return false, cerr.ErrInsufficientVotesAtTimeout
}

// buildVote signs a new vote from the owner against the proposal's
// current tip. parent_hash links to the owner's own previous vote (for
// resubmission semantics only; duplicates are rejected upstream) and
// received_hash links to the immediately previous vote from any owner.
func (s *Service[Scope]) buildVote(ctx context.Context, proposal *wire.Proposal, choice bool, sgnr signer.Signer, now uint64) (*wire.Vote, error) {
	address := sgnr.Address().Bytes()

	var parentHash, receivedHash []byte
	if n := len(proposal.Votes); n > 0 {
		receivedHash = proposal.Votes[n-1].VoteHash
	}
	for i := len(proposal.Votes) - 1; i >= 0; i-- {
		if bytes.Equal(proposal.Votes[i].VoteOwner, address) {
			parentHash = proposal.Votes[i].VoteHash
			break
		}
	}

	voteID, err := generateProposalID()
	if err != nil {
		return nil, err
	}

	v := &wire.Vote{
		VoteID:       voteID,
		VoteOwner:    address,
		ProposalID:   proposal.ProposalID,
		Timestamp:    now,
		Vote:         choice,
		ParentHash:   parentHash,
		ReceivedHash: receivedHash,
	}
	hash := wire.ComputeHash(v)
	v.VoteHash = hash[:]

	sig, err := sgnr.SignMessage(ctx, wire.CanonicalBytes(v))
	if err != nil {
		return nil, err
	}
	v.Signature = sig[:]
	return v, nil
}

func (s *Service[Scope]) trimScopeSessions(ctx context.Context, scope Scope) error {
	return s.storage.UpdateScopeSessions(ctx, scope, func(sessions []*session.Session) ([]*session.Session, error) {
		if len(sessions) <= s.maxSessionsPerScope {
			return sessions, nil
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].CreatedAt > sessions[j].CreatedAt
		})
		return sessions[:s.maxSessionsPerScope], nil
	})
}

func (s *Service[Scope]) spawnTimeoutTask(scope Scope, proposalID uint32, timeout time.Duration) {
	go func() {
		time.Sleep(timeout)

		ctx := context.Background()
		if _, err := s.GetConsensusResult(ctx, scope, proposalID); err == nil {
			return
		}

		if result, err := s.HandleConsensusTimeout(ctx, scope, proposalID); err == nil {
			s.log.Info("automatic timeout applied",
				log.Uint32("proposal_id", proposalID),
				log.String("result", resultLabel(result)),
			)
		}
	}()
}

func (s *Service[Scope]) handleTransition(scope Scope, proposalID uint32, transition session.Transition) {
	if transition.State != session.ConsensusReached {
		return
	}
	s.metrics.consensusReached.Inc()
	s.bus.Publish(scope, events.ConsensusReached{ProposalID: proposalID, Result: transition.Result})
}

func hasSufficientVotes(totalVotes, expectedVoters uint32, threshold float64) bool {
	required := requiredVotesForSufficiency(expectedVoters, threshold)
	return totalVotes >= required
}

func requiredVotesForSufficiency(expectedVoters uint32, threshold float64) uint32 {
	if expectedVoters <= 2 {
		return expectedVoters
	}
	return uint32(math.Ceil(float64(expectedVoters) * threshold))
}

func resultLabel(result bool) string {
	if result {
		return "yes"
	}
	return "no"
}
