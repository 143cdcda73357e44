package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once
	pending      []prometheus.Collector
)

// register queues collectors at init time. Nothing touches the default
// registry until MustRegister runs, so importing this package stays free of
// side effects.
func register(cs ...prometheus.Collector) {
	pending = append(pending, cs...)
}

// MustRegister flushes every queued collector into the default registry.
// Only the first call registers; later calls are no-ops.
func MustRegister() {
	registerOnce.Do(func() {
		if len(pending) > 0 {
			prometheus.MustRegister(pending...)
		}
	})
}

// norm lowercases and trims label values so spelling variants collapse into
// one series.
func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
