// Package cerr defines the closed error taxonomy shared by every layer of
// the consensus core. Every operation either succeeds with its documented
// result or fails with exactly one of these sentinels (optionally wrapped
// with fmt.Errorf("...: %w", ...) for caller context).
package cerr

import "errors"

// Configuration validation errors, surfaced at construction/validation time.
var (
	ErrInvalidThreshold           = errors.New("cerr: consensus threshold must be between 0.0 and 1.0")
	ErrInvalidTimeout             = errors.New("cerr: timeout must be greater than 0")
	ErrInvalidExpectedVotersCount = errors.New("cerr: expected_voters_count must be greater than 0")
	ErrInvalidMaxRounds           = errors.New("cerr: max_rounds must be greater than 0")
	ErrInvalidScopeConfig         = errors.New("cerr: invalid scope configuration")
)

// Vote validation errors, surfaced while ingesting untrusted votes/proposals.
var (
	ErrEmptyVoteOwner              = errors.New("cerr: empty vote owner")
	ErrEmptyVoteHash               = errors.New("cerr: empty vote hash")
	ErrInvalidVoteHash             = errors.New("cerr: invalid vote hash")
	ErrEmptySignature              = errors.New("cerr: empty signature")
	ErrMismatchedSignatureLength   = errors.New("cerr: mismatched signature length")
	ErrInvalidVoteSignature        = errors.New("cerr: invalid vote signature")
	ErrVoteProposalIDMismatch      = errors.New("cerr: vote proposal_id mismatch")
	ErrReceivedHashMismatch        = errors.New("cerr: received_hash mismatch")
	ErrParentHashMismatch          = errors.New("cerr: parent_hash mismatch")
	ErrInvalidVoteTimestamp        = errors.New("cerr: invalid vote timestamp")
	ErrTimestampOlderThanCreation  = errors.New("cerr: vote timestamp is older than creation time")
)

// Liveness errors, time-based.
var (
	ErrVoteExpired     = errors.New("cerr: vote expired")
	ErrProposalExpired = errors.New("cerr: proposal expired")
)

// State-flow / sequencing errors.
var (
	ErrSessionNotActive          = errors.New("cerr: session not active")
	ErrSessionNotFound           = errors.New("cerr: session not found")
	ErrProposalAlreadyExist      = errors.New("cerr: proposal already exists")
	ErrScopeNotFound             = errors.New("cerr: scope not found")
	ErrConsensusNotReached       = errors.New("cerr: consensus not reached")
	ErrConsensusFailed           = errors.New("cerr: consensus failed")
	ErrUserAlreadyVoted          = errors.New("cerr: user already voted")
	ErrDuplicateVote             = errors.New("cerr: duplicate vote")
	ErrMaxRoundsExceeded         = errors.New("cerr: max rounds exceeded")
	ErrInsufficientVotesAtTimeout = errors.New("cerr: insufficient votes at timeout")
)

// Time source errors.
var (
	ErrClockBeforeEpoch = errors.New("cerr: clock reports a time before the unix epoch")
)
