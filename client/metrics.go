package client

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
)

// --------------------------------------------------------------------------
// Dispatch Instrumentation
// --------------------------------------------------------------------------

// The client exposes per-command counters and latency histograms through the
// default metrics set. Callers that want them published can serve
// metrics.WritePrometheus from their own endpoint; the library itself never
// opens one.

// requestsTotal counts dispatched commands, including failed ones
func requestsTotal(command string) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`redisc_requests_total{command=%q}`, command))
}

// errorsTotal counts commands that ended in a transport, server or protocol
// error
func errorsTotal(command string) *metrics.Counter {
	return metrics.GetOrCreateCounter(fmt.Sprintf(`redisc_request_errors_total{command=%q}`, command))
}

// requestDuration tracks the full dispatch latency including transport time
func requestDuration(command string) *metrics.Histogram {
	return metrics.GetOrCreateHistogram(fmt.Sprintf(`redisc_request_duration_seconds{command=%q}`, command))
}
