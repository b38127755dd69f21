// Package clock provides the injectable time source used across the
// consensus core. Tests that need deterministic timestamps construct a
// Clock closure instead of relying on wall-clock time.
package clock

import (
	"time"

	"github.com/vacp2p/hashgraph-like-consensus/cerr"
)

// Clock returns the current unix time in seconds, or an error if the
// underlying time source cannot produce a sane value.
type Clock func() (uint64, error)

// System is the default Clock, backed by time.Now.
func System() (uint64, error) {
	now := time.Now().Unix()
	if now < 0 {
		return 0, cerr.ErrClockBeforeEpoch
	}
	return uint64(now), nil
}

// Fixed returns a Clock that always reports t, for deterministic tests.
func Fixed(t uint64) Clock {
	return func() (uint64, error) { return t, nil }
}
