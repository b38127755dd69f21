package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := NewBroadcast[string](4)
	ch := bus.Subscribe()

	bus.Publish("scope-a", ConsensusReached{ProposalID: 1, Result: true})

	select {
	case msg := <-ch:
		require.Equal(t, "scope-a", msg.Scope)
		reached, ok := msg.Event.(ConsensusReached)
		require.True(t, ok)
		require.EqualValues(t, 1, reached.ProposalID)
		require.True(t, reached.Result)
	case <-time.After(time.Second):
		t.Fatal("expected to receive published event")
	}
}

func TestPublishFansOutToAllSubscribers(t *testing.T) {
	bus := NewBroadcast[string](4)
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()

	bus.Publish("scope-a", ConsensusFailed{ProposalID: 5})

	for _, ch := range []<-chan Scoped[string]{ch1, ch2} {
		select {
		case msg := <-ch:
			_, ok := msg.Event.(ConsensusFailed)
			require.True(t, ok)
		case <-time.After(time.Second):
			t.Fatal("expected both subscribers to receive the event")
		}
	}
}

func TestPublishDropsOnFullBufferWithoutBlocking(t *testing.T) {
	bus := NewBroadcast[string](1)
	ch := bus.Subscribe()

	done := make(chan struct{})
	go func() {
		bus.Publish("scope-a", ConsensusReached{ProposalID: 1})
		bus.Publish("scope-a", ConsensusReached{ProposalID: 2})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish must never block on a full subscriber buffer")
	}

	msg := <-ch
	reached := msg.Event.(ConsensusReached)
	require.EqualValues(t, 1, reached.ProposalID)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBroadcast[string](4)
	ch := bus.Subscribe()
	bus.Unsubscribe(ch)

	_, open := <-ch
	require.False(t, open)
}

func TestNewBroadcastDefaultsZeroBufferSize(t *testing.T) {
	bus := NewBroadcast[string](0)
	require.Equal(t, defaultSubscriberBuffer, bus.bufferSize)
}
