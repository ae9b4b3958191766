package metrics

import "time"

// OutcomeLabel enumerates assembly outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeInvalid OutcomeLabel = "invalid" // configuration rejected
	OutcomeError   OutcomeLabel = "error"   // could not be read or decoded
)

// Recorder defines observability hooks for configuration assembly and output.
// Implementations may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	ObserveAssembleDuration(d time.Duration)
	IncAssembly(outcome OutcomeLabel)
	IncIconRender(name string)
	IncConfigWritten(format string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveAssembleDuration(time.Duration) {}
func (NoopRecorder) IncAssembly(OutcomeLabel)              {}
func (NoopRecorder) IncIconRender(string)                  {}
func (NoopRecorder) IncConfigWritten(string)               {}
