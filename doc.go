// Package consensus implements a binary (YES/NO) hashgraph-style voting
// protocol: a proposal with a fixed committee size collects signed votes
// that reference their predecessors by hash, and a session decides YES,
// NO, or times out once enough votes (or silence) resolve the tally.
//
// Service is the facade most callers use; it wires together the session
// state machine (package session), the signed vote codec (packages wire
// and signer), the session registry (package storage), and the
// lifecycle event bus (package events). Scope is a type parameter so
// callers can namespace sessions by whatever key fits their deployment
// — a group id, a topic, a shard — without the core boxing it behind an
// interface.
package consensus
