// Package validate implements the pure validation functions from §4.2:
// single-vote validation, vote-chain validation, proposal validation, and
// the scalar config validators. None of these functions mutate state or
// perform I/O beyond the injected clock.
package validate

import (
	"time"

	"github.com/vacp2p/hashgraph-like-consensus/cerr"
	"github.com/vacp2p/hashgraph-like-consensus/signer"
	"github.com/vacp2p/hashgraph-like-consensus/wire"
)

// Vote validates a single vote against the proposal's expiration and
// creation time, per §4.2.
func Vote(v *wire.Vote, expirationTimestamp, creationTime, now uint64) error {
	if len(v.VoteOwner) == 0 {
		return cerr.ErrEmptyVoteOwner
	}
	if len(v.VoteHash) == 0 {
		return cerr.ErrEmptyVoteHash
	}
	expectedHash := wire.ComputeHash(v)
	if string(v.VoteHash) != string(expectedHash[:]) {
		return cerr.ErrInvalidVoteHash
	}
	if len(v.Signature) == 0 {
		return cerr.ErrEmptySignature
	}
	if len(v.Signature) != 65 {
		return cerr.ErrMismatchedSignatureLength
	}
	recovered, err := signer.Recover(v.Signature, wire.CanonicalBytes(v))
	if err != nil {
		return cerr.ErrInvalidVoteSignature
	}
	if string(recovered[:]) != string(v.VoteOwner) {
		return cerr.ErrInvalidVoteSignature
	}
	if v.Timestamp < creationTime {
		return cerr.ErrTimestampOlderThanCreation
	}
	if v.Timestamp > expirationTimestamp || now > expirationTimestamp {
		return cerr.ErrVoteExpired
	}
	return nil
}

type chainEntry struct {
	owner     string
	timestamp uint64
	index     int
}

// VoteChain validates the hashgraph ordering constraints over an ordered
// vote sequence, per §4.2. Trivially succeeds for <=1 vote.
func VoteChain(votes []wire.Vote) error {
	if len(votes) <= 1 {
		return nil
	}

	byHash := make(map[string]chainEntry, len(votes))
	for i, v := range votes {
		byHash[string(v.VoteHash)] = chainEntry{
			owner:     string(v.VoteOwner),
			timestamp: v.Timestamp,
			index:     i,
		}
	}

	for i, v := range votes {
		if i > 0 && len(v.ReceivedHash) > 0 {
			prev := votes[i-1]
			if string(v.ReceivedHash) != string(prev.VoteHash) || prev.Timestamp > v.Timestamp {
				return cerr.ErrReceivedHashMismatch
			}
		}

		if len(v.ParentHash) > 0 {
			entry, ok := byHash[string(v.ParentHash)]
			if !ok {
				return cerr.ErrParentHashMismatch
			}
			if entry.owner != string(v.VoteOwner) || entry.timestamp > v.Timestamp || entry.index >= i {
				return cerr.ErrParentHashMismatch
			}
		}
	}

	return nil
}

// Proposal validates a proposal envelope: expiration must lie in the
// future, every embedded vote must reference this proposal, each vote
// passes Vote, and the whole sequence passes VoteChain.
func Proposal(p *wire.Proposal, now uint64) error {
	if p.ExpirationTimestamp <= now {
		return cerr.ErrProposalExpired
	}
	for i := range p.Votes {
		if p.Votes[i].ProposalID != p.ProposalID {
			return cerr.ErrVoteProposalIDMismatch
		}
	}
	for i := range p.Votes {
		if err := Vote(&p.Votes[i], p.ExpirationTimestamp, p.Timestamp, now); err != nil {
			return err
		}
	}
	return VoteChain(p.Votes)
}

// Threshold requires 0 <= x <= 1.
func Threshold(x float64) error {
	if x < 0 || x > 1 {
		return cerr.ErrInvalidThreshold
	}
	return nil
}

// Timeout requires d > 0.
func Timeout(d time.Duration) error {
	if d <= 0 {
		return cerr.ErrInvalidTimeout
	}
	return nil
}

// ExpectedVotersCount requires n > 0.
func ExpectedVotersCount(n uint32) error {
	if n == 0 {
		return cerr.ErrInvalidExpectedVotersCount
	}
	return nil
}
