// Package session implements the per-proposal consensus state machine
// (§4.4): the Active -> {ConsensusReached, Failed} transition, the vote
// insertion algorithm, and the round-limit policy that gossipsub and
// p2p networks apply differently.
package session

import (
	"math"
	"time"

	"github.com/vacp2p/hashgraph-like-consensus/cerr"
	"github.com/vacp2p/hashgraph-like-consensus/set"
	"github.com/vacp2p/hashgraph-like-consensus/tally"
	"github.com/vacp2p/hashgraph-like-consensus/validate"
	"github.com/vacp2p/hashgraph-like-consensus/wire"
)

// Config is the per-session runtime configuration resolved from a
// ScopeConfig (or an explicit override) at proposal creation/ingest time.
type Config struct {
	ConsensusThreshold float64
	ConsensusTimeout   time.Duration
	// MaxRounds caps the round policy below. For P2P with
	// UseGossipsubRounds false and MaxRounds 0, the cap is computed
	// dynamically as ceil(n*ConsensusThreshold).
	MaxRounds          uint32
	UseGossipsubRounds bool
	LivenessCriteria   bool
}

func (c Config) maxRoundLimit(expectedVoters uint32) uint32 {
	if c.UseGossipsubRounds {
		return c.MaxRounds
	}
	if c.MaxRounds != 0 {
		return c.MaxRounds
	}
	return uint32(math.Ceil(float64(expectedVoters) * c.ConsensusThreshold))
}

// State is the session's lifecycle state (§4.4). The zero value is
// Active.
type State int

const (
	Active State = iota
	ConsensusReached
	Failed
)

// Transition is the outcome of an operation that may change session
// state.
type Transition struct {
	State  State
	Result bool // valid only when State == ConsensusReached
}

var StillActive = Transition{State: Active}

func reached(result bool) Transition {
	return Transition{State: ConsensusReached, Result: result}
}

var failedTransition = Transition{State: Failed}

// Session is a single proposal's consensus state: its current snapshot,
// lifecycle state, per-owner vote index, and runtime config.
type Session struct {
	Proposal  *wire.Proposal
	State     State
	Result    bool
	Votes     map[string]wire.Vote // vote_owner -> Vote
	CreatedAt uint64
	Config    Config
}

// New creates a session from an already-clean proposal (no votes) with
// no validation performed; used by CreateProposal where the proposal is
// known-clean.
func New(proposal *wire.Proposal, config Config, now uint64) *Session {
	return &Session{
		Proposal:  proposal,
		State:     Active,
		Votes:     make(map[string]wire.Vote),
		CreatedAt: now,
		Config:    config,
	}
}

// FromProposal validates an incoming wire proposal and constructs a
// session with its embedded votes already processed, per §4.4.
func FromProposal(proposal *wire.Proposal, config Config, now uint64) (*Session, Transition, error) {
	if err := validate.Proposal(proposal, now); err != nil {
		return nil, Transition{}, err
	}

	existingVotes := proposal.Votes
	clean := proposal.Clone()
	clean.Votes = nil
	clean.Round = 1

	s := New(clean, config, now)
	transition, err := s.InitializeWithVotes(existingVotes, proposal.ExpirationTimestamp, proposal.Timestamp, now)
	if err != nil {
		return nil, Transition{}, err
	}
	return s, transition, nil
}

// AddVote inserts a single vote into an Active session, validating it
// exactly as InitializeWithVotes does (hash, signature, and its position
// in the existing chain) before applying the round-limit check,
// duplicate-owner check, and a tally step. Per §4.4, calling this on a
// ConsensusReached session is a no-op that returns the existing result;
// calling it on a Failed session returns ErrSessionNotActive.
func (s *Session) AddVote(v wire.Vote, now uint64) (Transition, error) {
	switch s.State {
	case ConsensusReached:
		return reached(s.Result), nil
	case Failed:
		return Transition{}, cerr.ErrSessionNotActive
	}

	if now >= s.Proposal.ExpirationTimestamp {
		return Transition{}, cerr.ErrVoteExpired
	}

	if err := validate.Vote(&v, s.Proposal.ExpirationTimestamp, s.Proposal.Timestamp, now); err != nil {
		return Transition{}, err
	}

	if _, exists := s.Votes[string(v.VoteOwner)]; exists {
		return Transition{}, cerr.ErrDuplicateVote
	}

	candidate := make([]wire.Vote, len(s.Proposal.Votes)+1)
	copy(candidate, s.Proposal.Votes)
	candidate[len(candidate)-1] = v
	if err := validate.VoteChain(candidate); err != nil {
		return Transition{}, err
	}

	if err := s.checkRoundLimit(1); err != nil {
		return Transition{}, err
	}

	s.Votes[string(v.VoteOwner)] = v
	s.Proposal.Votes = append(s.Proposal.Votes, v)

	s.updateRound(1)
	return s.checkConsensus(), nil
}

// InitializeWithVotes validates and commits a batch of votes atomically:
// duplicate owners, vote-chain ordering, and per-vote validity are all
// checked before any vote is applied. Used when a session is constructed
// from an incoming wire proposal.
func (s *Session) InitializeWithVotes(votes []wire.Vote, expirationTimestamp, creationTime, now uint64) (Transition, error) {
	if s.State != Active {
		return Transition{}, cerr.ErrSessionNotActive
	}
	if now >= expirationTimestamp {
		return Transition{}, cerr.ErrVoteExpired
	}
	if len(votes) == 0 {
		return StillActive, nil
	}

	seen := make(set.Set[string], len(votes))
	for _, v := range votes {
		key := string(v.VoteOwner)
		if seen.Contains(key) {
			return Transition{}, cerr.ErrDuplicateVote
		}
		seen.Add(key)
	}

	if err := validate.VoteChain(votes); err != nil {
		return Transition{}, err
	}
	for i := range votes {
		if err := validate.Vote(&votes[i], expirationTimestamp, creationTime, now); err != nil {
			return Transition{}, err
		}
	}

	if err := s.checkRoundLimit(len(votes)); err != nil {
		return Transition{}, err
	}
	s.updateRound(len(votes))

	for _, v := range votes {
		s.Votes[string(v.VoteOwner)] = v
		s.Proposal.Votes = append(s.Proposal.Votes, v)
	}

	return s.checkConsensus(), nil
}

// checkRoundLimit computes the projected round for adding voteCount
// votes and fails (transitioning to Failed) if it would exceed the
// policy limit.
func (s *Session) checkRoundLimit(voteCount int) error {
	var projected uint32
	if s.Config.UseGossipsubRounds {
		if s.Proposal.Round == 2 || (s.Proposal.Round == 1 && voteCount > 0) {
			projected = 2
		} else {
			projected = s.Proposal.Round
		}
	} else {
		currentVotes := uint32(0)
		if s.Proposal.Round > 1 {
			currentVotes = s.Proposal.Round - 1
		}
		projected = currentVotes + uint32(voteCount)
	}

	if projected > s.Config.maxRoundLimit(s.Proposal.ExpectedVotersCount) {
		s.State = Failed
		return cerr.ErrMaxRoundsExceeded
	}
	return nil
}

// updateRound advances the proposal's round after voteCount votes have
// been accepted, per the configured round policy.
func (s *Session) updateRound(voteCount int) {
	if s.Config.UseGossipsubRounds {
		if s.Proposal.Round == 1 && voteCount > 0 {
			s.Proposal.Round = 2
		}
		return
	}
	s.Proposal.Round += uint32(voteCount)
}

// checkConsensus runs the tally over the current vote set and applies a
// terminal transition if a decision was reached.
func (s *Session) checkConsensus() Transition {
	yes, no := 0, 0
	for _, v := range s.Votes {
		if v.Vote {
			yes++
		} else {
			no++
		}
	}

	result := tally.Decide(yes, no, s.Proposal.ExpectedVotersCount, s.Config.ConsensusThreshold, s.Proposal.LivenessCriteriaYes)
	if result != nil {
		s.State = ConsensusReached
		s.Result = *result
		return reached(*result)
	}
	s.State = Active
	return StillActive
}

// Fail forces a terminal Failed transition, used by the timeout handler
// when the tally is still None at expiration.
func (s *Session) Fail() Transition {
	s.State = Failed
	return failedTransition
}

// Timeout implements the handle_consensus_timeout algorithm: if already
// ConsensusReached, returns that result unchanged; else re-tallies the
// current vote set, deciding if possible or else transitioning to
// Failed.
func (s *Session) Timeout() Transition {
	if s.State == ConsensusReached {
		return reached(s.Result)
	}
	transition := s.checkConsensus()
	if transition.State == Active {
		return s.Fail()
	}
	return transition
}

// IsActive reports whether the session still accepts votes.
func (s *Session) IsActive() bool {
	return s.State == Active
}

// ConsensusResult returns the decided outcome, or ErrConsensusNotReached
// / ErrConsensusFailed if the session has not reached a YES/NO decision.
func (s *Session) ConsensusResult() (bool, error) {
	switch s.State {
	case ConsensusReached:
		return s.Result, nil
	case Failed:
		return false, cerr.ErrConsensusFailed
	default:
		return false, cerr.ErrConsensusNotReached
	}
}
