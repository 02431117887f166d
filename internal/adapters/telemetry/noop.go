// Package telemetry provides target progress reporting adapters.
package telemetry

// NoopReporter is a Reporter that discards all events. Used in tests and
// quiet mode.
type NoopReporter struct{}

// NewNoopReporter creates a NoopReporter.
func NewNoopReporter() *NoopReporter {
	return &NoopReporter{}
}

// TargetStarted does nothing.
func (r *NoopReporter) TargetStarted(string) {}

// TargetSkipped does nothing.
func (r *NoopReporter) TargetSkipped(string) {}

// TargetCompleted does nothing.
func (r *NoopReporter) TargetCompleted(string, error) {}

// Close does nothing.
func (r *NoopReporter) Close() error { return nil }
