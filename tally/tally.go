// Package tally implements the binary decision function from §4.3: given
// an accepted vote set, the expected committee size, the consensus
// threshold, and the liveness tie-break bias, decide YES, NO, or defer
// (None). The function is pure, deterministic, and commutative in vote
// order by construction: it only ever consumes aggregate counts.
package tally

import "math"

const twoThirdsEpsilon = 1e-9

// Decide applies §4.3 to the given vote tally and returns a pointer to
// the decided outcome, or nil if the session should remain Active.
func Decide(yesVotes, noVotes int, expectedVoters uint32, threshold float64, livenessYes bool) *bool {
	n := int(expectedVoters)
	total := yesVotes + noVotes

	if n <= 2 {
		if total < n {
			return nil
		}
		result := noVotes == 0
		return &result
	}

	required := requiredVotes(n, threshold)
	if total < required {
		return nil
	}

	silent := n - total
	yesWeight := yesVotes
	noWeight := noVotes
	if livenessYes {
		yesWeight += silent
	} else {
		noWeight += silent
	}

	if yesWeight >= required && yesWeight > noWeight {
		result := true
		return &result
	}
	if noWeight >= required && noWeight > yesWeight {
		result := false
		return &result
	}
	if total == n && yesWeight == noWeight {
		result := livenessYes
		return &result
	}
	return nil
}

func requiredVotes(n int, threshold float64) int {
	if math.Abs(threshold-2.0/3.0) < twoThirdsEpsilon {
		return int(math.Ceil(2 * float64(n) / 3))
	}
	return int(math.Ceil(float64(n) * threshold))
}
