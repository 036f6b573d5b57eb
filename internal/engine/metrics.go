package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	Dispatches        atomic.Int64
	Successes         atomic.Int64
	Exhausted         atomic.Int64
	TransportFailures atomic.Int64
	RejectedFailures  atomic.Int64
	MalformedFailures atomic.Int64
	ClassifierLLM     atomic.Int64
	ClassifierLLMErrs atomic.Int64
}

func recordFailure(k FailureKind) {
	switch k {
	case FailureTransport:
		metrics.TransportFailures.Add(1)
	case FailureRejected:
		metrics.RejectedFailures.Add(1)
	case FailureMalformed:
		metrics.MalformedFailures.Add(1)
	}
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"dispatch_calls":         metrics.Dispatches.Load(),
		"provider_successes":     metrics.Successes.Load(),
		"dispatch_exhausted":     metrics.Exhausted.Load(),
		"attempt_transport_fail": metrics.TransportFailures.Load(),
		"attempt_rejected":       metrics.RejectedFailures.Load(),
		"attempt_malformed":      metrics.MalformedFailures.Load(),
		"classifier_llm_calls":   metrics.ClassifierLLM.Load(),
		"classifier_llm_errors":  metrics.ClassifierLLMErrs.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"dispatch_calls", "provider_successes", "dispatch_exhausted",
		"attempt_transport_fail", "attempt_rejected", "attempt_malformed",
		"classifier_llm_calls", "classifier_llm_errors",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
