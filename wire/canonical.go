package wire

import (
	"crypto/sha256"
	"encoding/binary"
)

// CanonicalBytes produces the fixed field-ordered concatenation used for
// both hashing and signing a vote (§4.1, §6): vote_id (LE u32),
// vote_owner, proposal_id (LE u32), timestamp (LE u64), vote (1 byte),
// parent_hash, received_hash. vote_hash and signature are never part of
// this encoding.
func CanonicalBytes(v *Vote) []byte {
	buf := make([]byte, 0, 4+len(v.VoteOwner)+4+8+1+len(v.ParentHash)+len(v.ReceivedHash))

	var u32 [4]byte
	binary.LittleEndian.PutUint32(u32[:], v.VoteID)
	buf = append(buf, u32[:]...)

	buf = append(buf, v.VoteOwner...)

	binary.LittleEndian.PutUint32(u32[:], v.ProposalID)
	buf = append(buf, u32[:]...)

	var u64 [8]byte
	binary.LittleEndian.PutUint64(u64[:], v.Timestamp)
	buf = append(buf, u64[:]...)

	if v.Vote {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	buf = append(buf, v.ParentHash...)
	buf = append(buf, v.ReceivedHash...)
	return buf
}

// ComputeHash returns the SHA-256 fingerprint of v's canonical bytes.
func ComputeHash(v *Vote) [32]byte {
	return sha256.Sum256(CanonicalBytes(v))
}
