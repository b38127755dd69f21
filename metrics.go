package consensus

import "github.com/prometheus/client_golang/prometheus"

// serviceMetrics mirrors the teacher's metrics.NewAverager pattern: each
// counter is built and registered once at construction, then observed
// inline by the facade without further error handling.
type serviceMetrics struct {
	sessionsCreated  prometheus.Counter
	votesAccepted    prometheus.Counter
	votesRejected    prometheus.Counter
	consensusReached prometheus.Counter
	consensusFailed  prometheus.Counter
}

func newServiceMetrics(reg prometheus.Registerer) (*serviceMetrics, error) {
	m := &serviceMetrics{
		sessionsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "consensus_sessions_created_total",
			Help: "Total number of consensus sessions created or ingested.",
		}),
		votesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "consensus_votes_accepted_total",
			Help: "Total number of votes accepted into an active session.",
		}),
		votesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "consensus_votes_rejected_total",
			Help: "Total number of votes rejected by validation or sequencing checks.",
		}),
		consensusReached: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "consensus_sessions_reached_total",
			Help: "Total number of sessions that reached a YES/NO decision.",
		}),
		consensusFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "consensus_sessions_failed_total",
			Help: "Total number of sessions that transitioned to Failed.",
		}),
	}

	if reg == nil {
		return m, nil
	}

	collectors := []prometheus.Collector{
		m.sessionsCreated, m.votesAccepted, m.votesRejected, m.consensusReached, m.consensusFailed,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}
