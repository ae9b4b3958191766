// Package metrics provides observability hooks for site configuration assembly.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no call site needs a nil check:
//
//	loader := config.NewLoader(config.WithRecorder(metrics.NoopRecorder{}))
//
// The CLI swaps in a PrometheusRecorder when --metrics-file is given and writes
// the registry in textfile-collector format when the command finishes:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	defer rec.WriteTextfile("/var/lib/node_exporter/docsite.prom")
package metrics
