package ports

// Reporter receives target lifecycle events from the scheduler. It renders
// progress; it never observes or alters execution.
type Reporter interface {
	// TargetStarted signals that a target's action is about to run.
	TargetStarted(name string)
	// TargetSkipped signals that a target's skip predicate fired.
	TargetSkipped(name string)
	// TargetCompleted signals that a target's action returned. err is nil on
	// success.
	TargetCompleted(name string, err error)
	// Close flushes the reporting session.
	Close() error
}
