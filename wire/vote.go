// Package wire defines the wire-visible Vote and Proposal records (§3, §6
// of the spec), the canonical byte encoding used for hashing and signing
// a vote (§4.1), and the protobuf-compatible transport codec.
package wire

// Vote is a signed YES/NO record referencing prior votes by hash.
//
// Field numbers in comments mirror the protobuf schema in the spec's
// external-interfaces section; they are what the transport codec
// (Marshal/Unmarshal) encodes, not the canonical hash/sign bytes.
type Vote struct {
	VoteID       uint32 // 1
	VoteOwner    []byte // 2, 20-byte address
	ProposalID   uint32 // 3
	Timestamp    uint64 // 4, unix seconds
	Vote         bool   // 5, true = YES
	ParentHash   []byte // 6, 32 bytes or empty
	ReceivedHash []byte // 7, 32 bytes or empty
	VoteHash     []byte // 8, 32 bytes
	Signature    []byte // 9, 65 bytes
}

// Clone returns a deep copy of v.
func (v *Vote) Clone() *Vote {
	if v == nil {
		return nil
	}
	clone := *v
	clone.VoteOwner = append([]byte(nil), v.VoteOwner...)
	clone.ParentHash = append([]byte(nil), v.ParentHash...)
	clone.ReceivedHash = append([]byte(nil), v.ReceivedHash...)
	clone.VoteHash = append([]byte(nil), v.VoteHash...)
	clone.Signature = append([]byte(nil), v.Signature...)
	return &clone
}
