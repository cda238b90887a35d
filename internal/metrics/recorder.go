package metrics

import "time"

// ResultLabel enumerates stage result categories for counters.
type ResultLabel string

const (
	ResultSuccess  ResultLabel = "success"
	ResultWarning  ResultLabel = "warning"
	ResultFailed   ResultLabel = "failed"
	ResultCanceled ResultLabel = "canceled"
)

// OutcomeLabel is the final status of a documentation run.
type OutcomeLabel string

const (
	OutcomeSuccess  OutcomeLabel = "success"
	OutcomeFailed   OutcomeLabel = "failed"
	OutcomeCanceled OutcomeLabel = "canceled"
)

// Recorder defines observability hooks for documentation runs and their stages.
type Recorder interface {
	ObserveStageDuration(stage string, d time.Duration)
	ObserveRunDuration(d time.Duration)
	IncStageResult(stage string, result ResultLabel)
	IncRunOutcome(outcome OutcomeLabel)
	SetFilesResolved(n int)
	SetFilesExcluded(n int)
	IncWatchTrigger(reason string) // reason: change|interval
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveStageDuration(string, time.Duration) {}
func (NoopRecorder) ObserveRunDuration(time.Duration)           {}
func (NoopRecorder) IncStageResult(string, ResultLabel)         {}
func (NoopRecorder) IncRunOutcome(OutcomeLabel)                 {}
func (NoopRecorder) SetFilesResolved(int)                       {}
func (NoopRecorder) SetFilesExcluded(int)                       {}
func (NoopRecorder) IncWatchTrigger(string)                     {}

// OutcomeFor maps a run error to its outcome label.
func OutcomeFor(err error, canceled bool) OutcomeLabel {
	switch {
	case err == nil:
		return OutcomeSuccess
	case canceled:
		return OutcomeCanceled
	default:
		return OutcomeFailed
	}
}
