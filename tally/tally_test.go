package tally

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecideSingleVoterUnanimity(t *testing.T) {
	require.Nil(t, Decide(0, 0, 1, 2.0/3.0, true))

	result := Decide(1, 0, 1, 2.0/3.0, true)
	require.NotNil(t, result)
	require.True(t, *result)

	result = Decide(0, 1, 1, 2.0/3.0, true)
	require.NotNil(t, result)
	require.False(t, *result)
}

func TestDecideTwoVotersRequiresUnanimity(t *testing.T) {
	require.Nil(t, Decide(1, 0, 2, 2.0/3.0, true))

	result := Decide(2, 0, 2, 2.0/3.0, true)
	require.NotNil(t, result)
	require.True(t, *result)

	result = Decide(1, 1, 2, 2.0/3.0, true)
	require.NotNil(t, result)
	require.False(t, *result)
}

func TestDecideThresholdBelowQuorum(t *testing.T) {
	// n=4, threshold 2/3 -> required = ceil(8/3) = 3
	require.Nil(t, Decide(1, 0, 4, 2.0/3.0, true))
	require.Nil(t, Decide(2, 0, 4, 2.0/3.0, true))
}

func TestDecideThresholdMetYes(t *testing.T) {
	result := Decide(3, 0, 4, 2.0/3.0, true)
	require.NotNil(t, result)
	require.True(t, *result)
}

func TestDecideThresholdMetNo(t *testing.T) {
	result := Decide(0, 3, 4, 2.0/3.0, true)
	require.NotNil(t, result)
	require.False(t, *result)
}

func TestDecideSilentPeersBreakTowardLivenessBias(t *testing.T) {
	// n=4, required=3. 2 yes, 1 no, 1 silent. Liveness-yes -> silent
	// counted as yes, yesWeight=3 meets required and beats noWeight.
	result := Decide(2, 1, 4, 2.0/3.0, true)
	require.NotNil(t, result)
	require.True(t, *result)

	// Same votes, liveness-no -> silent counted as no; neither side
	// reaches the 3-vote threshold, so no decision yet.
	require.Nil(t, Decide(2, 1, 4, 2.0/3.0, false))
}

func TestDecideTieAtFullParticipationUsesLivenessBias(t *testing.T) {
	resultYes := Decide(2, 2, 4, 2.0/3.0, true)
	require.NotNil(t, resultYes)
	require.True(t, *resultYes)

	resultNo := Decide(2, 2, 4, 2.0/3.0, false)
	require.NotNil(t, resultNo)
	require.False(t, *resultNo)
}

func TestDecideNoDecisionWhileVotesOutstandingAndNotTied(t *testing.T) {
	require.Nil(t, Decide(1, 1, 5, 2.0/3.0, true))
}

func TestRequiredVotesUsesCeilTwoThirdsSpecialCase(t *testing.T) {
	require.Equal(t, 3, requiredVotes(4, 2.0/3.0))
	require.Equal(t, 4, requiredVotes(5, 2.0/3.0))
	require.Equal(t, 4, requiredVotes(6, 2.0/3.0))
}

func TestRequiredVotesGenericThreshold(t *testing.T) {
	require.Equal(t, 5, requiredVotes(10, 0.5))
	require.Equal(t, 9, requiredVotes(10, 0.9))
}
