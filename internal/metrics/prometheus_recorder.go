package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once             sync.Once
	registry         *prom.Registry
	assembleDuration prom.Histogram
	assemblies       *prom.CounterVec
	iconRenders      *prom.CounterVec
	configsWritten   *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{registry: reg}
	pr.once.Do(func() {
		pr.assembleDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docsite",
			Name:      "assemble_duration_seconds",
			Help:      "Duration of loading and assembling the site configuration",
			Buckets:   prom.DefBuckets,
		})
		pr.assemblies = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsite",
			Name:      "assemblies_total",
			Help:      "Configuration assemblies by outcome",
		}, []string{"outcome"})
		pr.iconRenders = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsite",
			Name:      "icon_renders_total",
			Help:      "Icon renders by component name",
		}, []string{"icon"})
		pr.configsWritten = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docsite",
			Name:      "builder_configs_written_total",
			Help:      "Builder configuration files written by format",
		}, []string{"format"})
		reg.MustRegister(pr.assembleDuration, pr.assemblies, pr.iconRenders, pr.configsWritten)
	})
	return pr
}

// Registry returns the registry the metrics were registered on.
func (p *PrometheusRecorder) Registry() *prom.Registry { return p.registry }

func (p *PrometheusRecorder) ObserveAssembleDuration(d time.Duration) {
	if p == nil || p.assembleDuration == nil {
		return
	}
	p.assembleDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncAssembly(outcome OutcomeLabel) {
	if p == nil || p.assemblies == nil {
		return
	}
	p.assemblies.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncIconRender(name string) {
	if p == nil || p.iconRenders == nil {
		return
	}
	p.iconRenders.WithLabelValues(name).Inc()
}

func (p *PrometheusRecorder) IncConfigWritten(format string) {
	if p == nil || p.configsWritten == nil {
		return
	}
	p.configsWritten.WithLabelValues(format).Inc()
}

// WriteTextfile writes the current metric values in the node_exporter
// textfile-collector format. Short-lived CLI runs use this instead of an HTTP endpoint.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	return prom.WriteToTextfile(path, p.registry)
}
