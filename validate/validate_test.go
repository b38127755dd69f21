package validate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vacp2p/hashgraph-like-consensus/cerr"
	"github.com/vacp2p/hashgraph-like-consensus/signer"
	"github.com/vacp2p/hashgraph-like-consensus/wire"
)

func signedVote(t *testing.T, owner *signer.Local, proposalID uint32, ts uint64, choice bool, parent, received []byte) *wire.Vote {
	t.Helper()
	v := &wire.Vote{
		VoteID:       1,
		VoteOwner:    owner.Address().Bytes(),
		ProposalID:   proposalID,
		Timestamp:    ts,
		Vote:         choice,
		ParentHash:   parent,
		ReceivedHash: received,
	}
	hash := wire.ComputeHash(v)
	v.VoteHash = hash[:]
	sig, err := owner.SignMessage(nil, wire.CanonicalBytes(v))
	require.NoError(t, err)
	v.Signature = sig[:]
	return v
}

func TestVoteAcceptsWellFormedVote(t *testing.T) {
	owner, err := signer.NewLocal()
	require.NoError(t, err)
	v := signedVote(t, owner, 1, 1000, true, nil, nil)
	require.NoError(t, Vote(v, 2000, 900, 1500))
}

func TestVoteRejectsEmptyOwner(t *testing.T) {
	owner, err := signer.NewLocal()
	require.NoError(t, err)
	v := signedVote(t, owner, 1, 1000, true, nil, nil)
	v.VoteOwner = nil
	require.ErrorIs(t, Vote(v, 2000, 900, 1500), cerr.ErrEmptyVoteOwner)
}

func TestVoteRejectsTamperedHash(t *testing.T) {
	owner, err := signer.NewLocal()
	require.NoError(t, err)
	v := signedVote(t, owner, 1, 1000, true, nil, nil)
	v.VoteHash[0] ^= 0xff
	require.ErrorIs(t, Vote(v, 2000, 900, 1500), cerr.ErrInvalidVoteHash)
}

func TestVoteRejectsMismatchedSignatureLength(t *testing.T) {
	owner, err := signer.NewLocal()
	require.NoError(t, err)
	v := signedVote(t, owner, 1, 1000, true, nil, nil)
	v.Signature = v.Signature[:10]
	require.ErrorIs(t, Vote(v, 2000, 900, 1500), cerr.ErrMismatchedSignatureLength)
}

func TestVoteRejectsWrongSigner(t *testing.T) {
	owner, err := signer.NewLocal()
	require.NoError(t, err)
	other, err := signer.NewLocal()
	require.NoError(t, err)
	v := signedVote(t, owner, 1, 1000, true, nil, nil)
	v.VoteOwner = other.Address().Bytes()
	hash := wire.ComputeHash(v)
	v.VoteHash = hash[:]
	require.ErrorIs(t, Vote(v, 2000, 900, 1500), cerr.ErrInvalidVoteSignature)
}

func TestVoteRejectsTimestampOlderThanCreation(t *testing.T) {
	owner, err := signer.NewLocal()
	require.NoError(t, err)
	v := signedVote(t, owner, 1, 800, true, nil, nil)
	require.ErrorIs(t, Vote(v, 2000, 900, 1500), cerr.ErrTimestampOlderThanCreation)
}

func TestVoteRejectsExpiredVote(t *testing.T) {
	owner, err := signer.NewLocal()
	require.NoError(t, err)
	v := signedVote(t, owner, 1, 2500, true, nil, nil)
	require.ErrorIs(t, Vote(v, 2000, 900, 1500), cerr.ErrVoteExpired)
}

func TestVoteChainAcceptsEmptyAndSingleton(t *testing.T) {
	require.NoError(t, VoteChain(nil))

	owner, err := signer.NewLocal()
	require.NoError(t, err)
	v := signedVote(t, owner, 1, 1000, true, nil, nil)
	require.NoError(t, VoteChain([]wire.Vote{*v}))
}

func TestVoteChainAcceptsValidReceivedHashChain(t *testing.T) {
	a, err := signer.NewLocal()
	require.NoError(t, err)
	b, err := signer.NewLocal()
	require.NoError(t, err)

	v1 := signedVote(t, a, 1, 1000, true, nil, nil)
	v2 := signedVote(t, b, 1, 1001, false, nil, v1.VoteHash)

	require.NoError(t, VoteChain([]wire.Vote{*v1, *v2}))
}

func TestVoteChainRejectsReceivedHashMismatch(t *testing.T) {
	a, err := signer.NewLocal()
	require.NoError(t, err)
	b, err := signer.NewLocal()
	require.NoError(t, err)

	v1 := signedVote(t, a, 1, 1000, true, nil, nil)
	v2 := signedVote(t, b, 1, 1001, false, nil, []byte{1, 2, 3, 4})

	require.ErrorIs(t, VoteChain([]wire.Vote{*v1, *v2}), cerr.ErrReceivedHashMismatch)
}

func TestVoteChainAllowsEmptyReceivedHashAfterFirst(t *testing.T) {
	a, err := signer.NewLocal()
	require.NoError(t, err)
	b, err := signer.NewLocal()
	require.NoError(t, err)

	v1 := signedVote(t, a, 1, 1000, true, nil, nil)
	v2 := signedVote(t, b, 1, 1001, false, nil, nil)

	require.NoError(t, VoteChain([]wire.Vote{*v1, *v2}))
}

func TestVoteChainAcceptsValidParentHashChain(t *testing.T) {
	a, err := signer.NewLocal()
	require.NoError(t, err)

	v1 := signedVote(t, a, 1, 1000, true, nil, nil)
	v2 := signedVote(t, a, 1, 1001, true, v1.VoteHash, nil)

	require.NoError(t, VoteChain([]wire.Vote{*v1, *v2}))
}

func TestVoteChainRejectsParentHashFromDifferentOwner(t *testing.T) {
	a, err := signer.NewLocal()
	require.NoError(t, err)
	b, err := signer.NewLocal()
	require.NoError(t, err)

	v1 := signedVote(t, a, 1, 1000, true, nil, nil)
	v2 := signedVote(t, b, 1, 1001, true, v1.VoteHash, nil)

	require.ErrorIs(t, VoteChain([]wire.Vote{*v1, *v2}), cerr.ErrParentHashMismatch)
}

func TestProposalRejectsExpired(t *testing.T) {
	p := &wire.Proposal{ProposalID: 1, ExpirationTimestamp: 1000}
	require.ErrorIs(t, Proposal(p, 1000), cerr.ErrProposalExpired)
}

func TestProposalRejectsVoteProposalIDMismatch(t *testing.T) {
	owner, err := signer.NewLocal()
	require.NoError(t, err)
	v := signedVote(t, owner, 99, 1000, true, nil, nil)
	p := &wire.Proposal{
		ProposalID:          1,
		Timestamp:           900,
		ExpirationTimestamp: 2000,
		Votes:               []wire.Vote{*v},
	}
	require.ErrorIs(t, Proposal(p, 1500), cerr.ErrVoteProposalIDMismatch)
}

func TestThresholdBounds(t *testing.T) {
	require.NoError(t, Threshold(0))
	require.NoError(t, Threshold(1))
	require.ErrorIs(t, Threshold(-0.1), cerr.ErrInvalidThreshold)
	require.ErrorIs(t, Threshold(1.1), cerr.ErrInvalidThreshold)
}

func TestTimeoutMustBePositive(t *testing.T) {
	require.ErrorIs(t, Timeout(0), cerr.ErrInvalidTimeout)
	require.NoError(t, Timeout(time.Second))
}

func TestExpectedVotersCountMustBeNonZero(t *testing.T) {
	require.ErrorIs(t, ExpectedVotersCount(0), cerr.ErrInvalidExpectedVotersCount)
	require.NoError(t, ExpectedVotersCount(1))
}
