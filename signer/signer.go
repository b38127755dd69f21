// Package signer defines the external signing abstraction the consensus
// core consumes: address derivation, message signing, and signature-to-
// address recovery. The core never implements signing itself — only
// recovery, which it needs to verify a vote's signature independently.
package signer

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/vacp2p/hashgraph-like-consensus/cerr"
)

// Address is a 20-byte recoverable-signature address, matching the
// vote_owner / proposal_owner wire field width.
type Address [20]byte

// Bytes returns the address as a freshly allocated byte slice, suitable
// for use as a wire vote_owner / proposal_owner field.
func (a Address) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// Signature is a 65-byte recoverable secp256k1 signature (r || s || v).
type Signature [65]byte

// Signer is the capability the core consumes to sign a vote. Any type
// providing these two operations is acceptable; the core never inspects
// private key material.
type Signer interface {
	// Address returns the signer's public address.
	Address() Address
	// SignMessage signs msg and returns a 65-byte recoverable signature.
	// May perform I/O (e.g. a remote signer) and so takes a context.
	SignMessage(ctx context.Context, msg []byte) (Signature, error)
}

// Recover recovers the 20-byte address that produced sig over msg.
// Returns cerr.ErrMismatchedSignatureLength if sig isn't exactly 65
// bytes wide, or cerr.ErrInvalidVoteSignature if recovery fails.
func Recover(sig []byte, msg []byte) (Address, error) {
	if len(sig) != 65 {
		return Address{}, cerr.ErrMismatchedSignatureLength
	}
	hash := crypto.Keccak256(msg)
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return Address{}, cerr.ErrInvalidVoteSignature
	}
	return Address(crypto.PubkeyToAddress(*pub)), nil
}

// Local is a reference Signer backed by an in-process secp256k1 private
// key. It exists for tests and examples; production deployments are
// expected to supply their own Signer (e.g. backed by a remote KMS or
// hardware wallet).
type Local struct {
	key *ecdsa.PrivateKey
}

// NewLocal generates a fresh in-process signer.
func NewLocal() (*Local, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, err
	}
	return &Local{key: key}, nil
}

func (l *Local) Address() Address {
	return Address(crypto.PubkeyToAddress(l.key.PublicKey))
}

func (l *Local) SignMessage(_ context.Context, msg []byte) (Signature, error) {
	hash := crypto.Keccak256(msg)
	sig, err := crypto.Sign(hash, l.key)
	if err != nil {
		return Signature{}, err
	}
	var out Signature
	copy(out[:], sig)
	return out, nil
}
