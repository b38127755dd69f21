package consensus

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/vacp2p/hashgraph-like-consensus/cerr"
	"github.com/vacp2p/hashgraph-like-consensus/validate"
	"github.com/vacp2p/hashgraph-like-consensus/wire"
)

// CreateProposalRequest is the caller-facing description of a new
// proposal, validated before it is turned into a wire.Proposal.
type CreateProposalRequest struct {
	Name                string
	Payload             []byte
	ProposalOwner       []byte
	ExpectedVotersCount uint32
	// ExpirationSeconds is a TTL relative to creation time, not an
	// absolute timestamp; the proposal's ExpirationTimestamp is
	// creation time + ExpirationSeconds.
	ExpirationSeconds  uint64
	LivenessCriteriaYes bool
}

// NewCreateProposalRequest validates the request's scalar fields.
func NewCreateProposalRequest(name string, payload, proposalOwner []byte, expectedVotersCount uint32, expirationSeconds uint64, livenessCriteriaYes bool) (CreateProposalRequest, error) {
	if err := validate.ExpectedVotersCount(expectedVotersCount); err != nil {
		return CreateProposalRequest{}, err
	}
	if expirationSeconds == 0 {
		return CreateProposalRequest{}, cerr.ErrInvalidTimeout
	}
	if len(proposalOwner) == 0 {
		return CreateProposalRequest{}, cerr.ErrEmptyVoteOwner
	}
	return CreateProposalRequest{
		Name:                name,
		Payload:             payload,
		ProposalOwner:       proposalOwner,
		ExpectedVotersCount: expectedVotersCount,
		ExpirationSeconds:   expirationSeconds,
		LivenessCriteriaYes: livenessCriteriaYes,
	}, nil
}

// toProposal builds a vote-free wire.Proposal at round 1, stamping
// creation and expiration timestamps from now.
func (r CreateProposalRequest) toProposal(now uint64) (*wire.Proposal, error) {
	id, err := generateProposalID()
	if err != nil {
		return nil, err
	}
	return &wire.Proposal{
		Name:                r.Name,
		Payload:             r.Payload,
		ProposalID:          id,
		ProposalOwner:       r.ProposalOwner,
		ExpectedVotersCount: r.ExpectedVotersCount,
		Round:               1,
		Timestamp:           now,
		ExpirationTimestamp: now + r.ExpirationSeconds,
		LivenessCriteriaYes: r.LivenessCriteriaYes,
	}, nil
}

func generateProposalID() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
