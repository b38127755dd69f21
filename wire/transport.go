package wire

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Marshal encodes v using the protobuf wire layout from §6. This is the
// transport codec, distinct from CanonicalBytes: it carries vote_hash
// and signature, and uses standard protobuf tag/varint/length-delimited
// framing rather than the raw concatenation used for hashing/signing.
func (v *Vote) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(v.VoteID))
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, v.VoteOwner)
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(v.ProposalID))
	b = protowire.AppendTag(b, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, v.Timestamp)
	b = protowire.AppendTag(b, 5, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(v.Vote))
	b = protowire.AppendTag(b, 6, protowire.BytesType)
	b = protowire.AppendBytes(b, v.ParentHash)
	b = protowire.AppendTag(b, 7, protowire.BytesType)
	b = protowire.AppendBytes(b, v.ReceivedHash)
	b = protowire.AppendTag(b, 8, protowire.BytesType)
	b = protowire.AppendBytes(b, v.VoteHash)
	b = protowire.AppendTag(b, 9, protowire.BytesType)
	b = protowire.AppendBytes(b, v.Signature)
	return b
}

// UnmarshalVote decodes a Vote from its protobuf wire encoding.
func UnmarshalVote(data []byte) (*Vote, error) {
	v := &Vote{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("wire: bad vote tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch num {
		case 1:
			val, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad vote_id: %w", protowire.ParseError(n))
			}
			v.VoteID = uint32(val)
			data = data[n:]
		case 2:
			val, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad vote_owner: %w", protowire.ParseError(n))
			}
			v.VoteOwner = append([]byte(nil), val...)
			data = data[n:]
		case 3:
			val, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad proposal_id: %w", protowire.ParseError(n))
			}
			v.ProposalID = uint32(val)
			data = data[n:]
		case 4:
			val, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad timestamp: %w", protowire.ParseError(n))
			}
			v.Timestamp = val
			data = data[n:]
		case 5:
			val, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad vote: %w", protowire.ParseError(n))
			}
			v.Vote = val != 0
			data = data[n:]
		case 6:
			val, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad parent_hash: %w", protowire.ParseError(n))
			}
			v.ParentHash = append([]byte(nil), val...)
			data = data[n:]
		case 7:
			val, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad received_hash: %w", protowire.ParseError(n))
			}
			v.ReceivedHash = append([]byte(nil), val...)
			data = data[n:]
		case 8:
			val, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad vote_hash: %w", protowire.ParseError(n))
			}
			v.VoteHash = append([]byte(nil), val...)
			data = data[n:]
		case 9:
			val, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad signature: %w", protowire.ParseError(n))
			}
			v.Signature = append([]byte(nil), val...)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad unknown field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return v, nil
}

// Marshal encodes p using the protobuf wire layout from §6.
func (p *Proposal) Marshal() []byte {
	var b []byte
	b = protowire.AppendTag(b, 1, protowire.BytesType)
	b = protowire.AppendString(b, p.Name)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendBytes(b, p.Payload)
	b = protowire.AppendTag(b, 3, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.ProposalID))
	b = protowire.AppendTag(b, 4, protowire.BytesType)
	b = protowire.AppendBytes(b, p.ProposalOwner)
	for i := range p.Votes {
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendBytes(b, p.Votes[i].Marshal())
	}
	b = protowire.AppendTag(b, 6, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.ExpectedVotersCount))
	b = protowire.AppendTag(b, 7, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(p.Round))
	b = protowire.AppendTag(b, 8, protowire.VarintType)
	b = protowire.AppendVarint(b, p.Timestamp)
	b = protowire.AppendTag(b, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, p.ExpirationTimestamp)
	b = protowire.AppendTag(b, 10, protowire.VarintType)
	b = protowire.AppendVarint(b, boolToVarint(p.LivenessCriteriaYes))
	return b
}

// UnmarshalProposal decodes a Proposal from its protobuf wire encoding.
func UnmarshalProposal(data []byte) (*Proposal, error) {
	p := &Proposal{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("wire: bad proposal tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch num {
		case 1:
			val, n := protowire.ConsumeString(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad name: %w", protowire.ParseError(n))
			}
			p.Name = val
			data = data[n:]
		case 2:
			val, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad payload: %w", protowire.ParseError(n))
			}
			p.Payload = append([]byte(nil), val...)
			data = data[n:]
		case 3:
			val, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad proposal_id: %w", protowire.ParseError(n))
			}
			p.ProposalID = uint32(val)
			data = data[n:]
		case 4:
			val, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad proposal_owner: %w", protowire.ParseError(n))
			}
			p.ProposalOwner = append([]byte(nil), val...)
			data = data[n:]
		case 5:
			val, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad votes entry: %w", protowire.ParseError(n))
			}
			vote, err := UnmarshalVote(val)
			if err != nil {
				return nil, err
			}
			p.Votes = append(p.Votes, *vote)
			data = data[n:]
		case 6:
			val, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad expected_voters_count: %w", protowire.ParseError(n))
			}
			p.ExpectedVotersCount = uint32(val)
			data = data[n:]
		case 7:
			val, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad round: %w", protowire.ParseError(n))
			}
			p.Round = uint32(val)
			data = data[n:]
		case 8:
			val, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad timestamp: %w", protowire.ParseError(n))
			}
			p.Timestamp = val
			data = data[n:]
		case 9:
			val, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad expiration_timestamp: %w", protowire.ParseError(n))
			}
			p.ExpirationTimestamp = val
			data = data[n:]
		case 10:
			val, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad liveness_criteria_yes: %w", protowire.ParseError(n))
			}
			p.LivenessCriteriaYes = val != 0
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("wire: bad unknown field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return p, nil
}

func boolToVarint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
