package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vacp2p/hashgraph-like-consensus/cerr"
	"github.com/vacp2p/hashgraph-like-consensus/signer"
	"github.com/vacp2p/hashgraph-like-consensus/wire"
)

func newProposal(owner []byte, expectedVoters uint32, now uint64) *wire.Proposal {
	return &wire.Proposal{
		Name:                "Test",
		ProposalID:          1,
		ProposalOwner:       owner,
		ExpectedVotersCount: expectedVoters,
		Round:               1,
		Timestamp:           now,
		ExpirationTimestamp: now + 60,
		LivenessCriteriaYes: false,
	}
}

func buildVote(t *testing.T, p *wire.Proposal, choice bool, owner *signer.Local, voteID uint32, now uint64) wire.Vote {
	t.Helper()
	v := wire.Vote{
		VoteID:     voteID,
		VoteOwner:  owner.Address().Bytes(),
		ProposalID: p.ProposalID,
		Timestamp:  now,
		Vote:       choice,
	}
	if len(p.Votes) > 0 {
		v.ReceivedHash = p.Votes[len(p.Votes)-1].VoteHash
	}
	hash := wire.ComputeHash(&v)
	v.VoteHash = hash[:]
	sig, err := owner.SignMessage(nil, wire.CanonicalBytes(&v))
	require.NoError(t, err)
	v.Signature = sig[:]
	return v
}

func gossipsubConfig() Config {
	return Config{
		ConsensusThreshold: 2.0 / 3.0,
		ConsensusTimeout:   60,
		MaxRounds:          2,
		UseGossipsubRounds: true,
		LivenessCriteria:   true,
	}
}

func p2pConfig() Config {
	return Config{
		ConsensusThreshold: 2.0 / 3.0,
		ConsensusTimeout:   60,
		MaxRounds:          0,
		UseGossipsubRounds: false,
		LivenessCriteria:   true,
	}
}

func TestEnforceMaxRoundsGossipsub(t *testing.T) {
	signer1, err := signer.NewLocal()
	require.NoError(t, err)
	signer2, err := signer.NewLocal()
	require.NoError(t, err)
	signer3, err := signer.NewLocal()
	require.NoError(t, err)
	signer4, err := signer.NewLocal()
	require.NoError(t, err)

	now := uint64(1000)
	proposal := newProposal(signer1.Address().Bytes(), 4, now)
	s := New(proposal, gossipsubConfig(), now)

	vote1 := buildVote(t, s.Proposal, true, signer1, 1, now)
	_, err = s.AddVote(vote1, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, s.Proposal.Round)

	vote2 := buildVote(t, s.Proposal, false, signer2, 2, now)
	_, err = s.AddVote(vote2, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, s.Proposal.Round)

	vote3 := buildVote(t, s.Proposal, true, signer3, 3, now)
	_, err = s.AddVote(vote3, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, s.Proposal.Round)

	vote4 := buildVote(t, s.Proposal, true, signer4, 4, now)
	_, err = s.AddVote(vote4, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, s.Proposal.Round)
	require.Len(t, s.Votes, 4)
}

func TestEnforceMaxRoundsP2P(t *testing.T) {
	signer1, err := signer.NewLocal()
	require.NoError(t, err)
	signer2, err := signer.NewLocal()
	require.NoError(t, err)
	signer3, err := signer.NewLocal()
	require.NoError(t, err)
	signer4, err := signer.NewLocal()
	require.NoError(t, err)
	signer5, err := signer.NewLocal()
	require.NoError(t, err)

	now := uint64(1000)
	proposal := newProposal(signer1.Address().Bytes(), 5, now)
	s := New(proposal, p2pConfig(), now)

	vote1 := buildVote(t, s.Proposal, true, signer1, 1, now)
	_, err = s.AddVote(vote1, now)
	require.NoError(t, err)
	require.EqualValues(t, 2, s.Proposal.Round)
	require.Len(t, s.Votes, 1)

	vote2 := buildVote(t, s.Proposal, false, signer2, 2, now)
	_, err = s.AddVote(vote2, now)
	require.NoError(t, err)
	require.EqualValues(t, 3, s.Proposal.Round)
	require.Len(t, s.Votes, 2)

	vote3 := buildVote(t, s.Proposal, true, signer3, 3, now)
	_, err = s.AddVote(vote3, now)
	require.NoError(t, err)
	require.EqualValues(t, 4, s.Proposal.Round)
	require.Len(t, s.Votes, 3)

	vote4 := buildVote(t, s.Proposal, true, signer4, 4, now)
	_, err = s.AddVote(vote4, now)
	require.NoError(t, err)
	require.EqualValues(t, 5, s.Proposal.Round)
	require.Len(t, s.Votes, 4)

	vote5 := buildVote(t, s.Proposal, true, signer5, 5, now)
	_, err = s.AddVote(vote5, now)
	require.ErrorIs(t, err, cerr.ErrMaxRoundsExceeded)
}

func TestAddVoteOnConsensusReachedIsNoOp(t *testing.T) {
	signer1, err := signer.NewLocal()
	require.NoError(t, err)
	signer2, err := signer.NewLocal()
	require.NoError(t, err)

	now := uint64(1000)
	proposal := newProposal(signer1.Address().Bytes(), 2, now)
	s := New(proposal, gossipsubConfig(), now)

	vote1 := buildVote(t, s.Proposal, true, signer1, 1, now)
	_, err = s.AddVote(vote1, now)
	require.NoError(t, err)

	vote2 := buildVote(t, s.Proposal, true, signer2, 2, now)
	transition, err := s.AddVote(vote2, now)
	require.NoError(t, err)
	require.Equal(t, ConsensusReached, transition.State)
	require.True(t, transition.Result)

	signer3, err := signer.NewLocal()
	require.NoError(t, err)
	vote3 := buildVote(t, s.Proposal, false, signer3, 3, now)
	transition, err = s.AddVote(vote3, now)
	require.NoError(t, err)
	require.Equal(t, ConsensusReached, transition.State)
	require.True(t, transition.Result)
}

func TestAddVoteAfterFailedReturnsSessionNotActive(t *testing.T) {
	signer1, err := signer.NewLocal()
	require.NoError(t, err)
	signer2, err := signer.NewLocal()
	require.NoError(t, err)
	signer3, err := signer.NewLocal()
	require.NoError(t, err)

	now := uint64(1000)
	proposal := newProposal(signer1.Address().Bytes(), 4, now)
	cfg := gossipsubConfig()
	maxRounds := uint32(1)
	cfg.MaxRounds = maxRounds
	s := New(proposal, cfg, now)

	vote1 := buildVote(t, s.Proposal, true, signer1, 1, now)
	_, err = s.AddVote(vote1, now)
	require.ErrorIs(t, err, cerr.ErrMaxRoundsExceeded)
	require.Equal(t, Failed, s.State)

	vote2 := buildVote(t, s.Proposal, true, signer2, 2, now)
	_, err = s.AddVote(vote2, now)
	require.ErrorIs(t, err, cerr.ErrSessionNotActive)

	_ = signer3
}

func TestTimeoutIsIdempotentOnConsensusReached(t *testing.T) {
	signer1, err := signer.NewLocal()
	require.NoError(t, err)

	now := uint64(1000)
	proposal := newProposal(signer1.Address().Bytes(), 1, now)
	s := New(proposal, gossipsubConfig(), now)

	vote1 := buildVote(t, s.Proposal, true, signer1, 1, now)
	transition, err := s.AddVote(vote1, now)
	require.NoError(t, err)
	require.Equal(t, ConsensusReached, transition.State)
	require.True(t, transition.Result)

	first := s.Timeout()
	require.Equal(t, ConsensusReached, first.State)
	require.True(t, first.Result)

	second := s.Timeout()
	require.Equal(t, first, second)
}

func TestTimeoutIsIdempotentOnFailed(t *testing.T) {
	signer1, err := signer.NewLocal()
	require.NoError(t, err)

	now := uint64(1000)
	proposal := newProposal(signer1.Address().Bytes(), 4, now)
	s := New(proposal, gossipsubConfig(), now)

	vote1 := buildVote(t, s.Proposal, true, signer1, 1, now)
	transition, err := s.AddVote(vote1, now)
	require.NoError(t, err)
	require.Equal(t, StillActive, transition)

	first := s.Timeout()
	require.Equal(t, Failed, first.State)

	second := s.Timeout()
	require.Equal(t, first, second)
}

func TestAddVoteExpired(t *testing.T) {
	signer1, err := signer.NewLocal()
	require.NoError(t, err)

	now := uint64(1000)
	proposal := newProposal(signer1.Address().Bytes(), 2, now)
	s := New(proposal, gossipsubConfig(), now)

	vote1 := buildVote(t, s.Proposal, true, signer1, 1, now)
	_, err = s.AddVote(vote1, now+3600)
	require.ErrorIs(t, err, cerr.ErrVoteExpired)
}

func TestAddVoteDuplicateOwner(t *testing.T) {
	signer1, err := signer.NewLocal()
	require.NoError(t, err)
	signer2, err := signer.NewLocal()
	require.NoError(t, err)

	now := uint64(1000)
	proposal := newProposal(signer1.Address().Bytes(), 3, now)
	s := New(proposal, gossipsubConfig(), now)

	vote1 := buildVote(t, s.Proposal, true, signer1, 1, now)
	_, err = s.AddVote(vote1, now)
	require.NoError(t, err)

	dup := buildVote(t, s.Proposal, false, signer1, 2, now)
	_, err = s.AddVote(dup, now)
	require.ErrorIs(t, err, cerr.ErrDuplicateVote)

	_ = signer2
}
