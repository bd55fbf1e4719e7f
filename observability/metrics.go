package observability

import (
	gu "github.com/xraph/go-utils/metrics"
)

// Metrics holds metric instruments for the SDK, backed by any go-utils
// MetricFactory (use metrics.NewMetricsCollector("hookrelay") for standalone
// usage).
type Metrics struct {
	EventsReceivedTotal    gu.Counter
	SignatureFailuresTotal gu.Counter
	CallbackOutcomesTotal  gu.Counter
	OutcomeReportsTotal    gu.Counter
	CallbackDuration       gu.Histogram
}

// NewMetrics creates the SDK's metric instruments using the supplied factory.
func NewMetrics(factory gu.MetricFactory) *Metrics {
	return &Metrics{
		EventsReceivedTotal:    factory.Counter("hookrelay_events_received_total"),
		SignatureFailuresTotal: factory.Counter("hookrelay_signature_failures_total"),
		CallbackOutcomesTotal:  factory.Counter("hookrelay_callback_outcomes_total"),
		OutcomeReportsTotal:    factory.Counter("hookrelay_outcome_reports_total"),
		CallbackDuration:       factory.Histogram("hookrelay_callback_duration_seconds"),
	}
}

// RecordCallback records one callback invocation with its status and duration.
func (m *Metrics) RecordCallback(status string, durationSeconds float64) {
	m.CallbackOutcomesTotal.WithLabels(map[string]string{"status": status}).Inc()
	m.CallbackDuration.Observe(durationSeconds)
}

// RecordReport records the result of one outcome report attempt.
func (m *Metrics) RecordReport(delivered bool) {
	result := "ok"
	if !delivered {
		result = "error"
	}
	m.OutcomeReportsTotal.WithLabels(map[string]string{"result": result}).Inc()
}
