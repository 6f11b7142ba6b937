package framework

// recordingTestLogger captures test lifecycle notifications keyed by test ID.
type recordingTestLogger struct {
	started  []string
	errors   map[string][]error
	finished map[string]CapturedOutput
	outcomes map[string]Outcome
	skips    map[string]string
}

func newRecordingTestLogger() *recordingTestLogger {
	return &recordingTestLogger{
		errors:   make(map[string][]error),
		finished: make(map[string]CapturedOutput),
		outcomes: make(map[string]Outcome),
		skips:    make(map[string]string),
	}
}

func (l *recordingTestLogger) TestStarted(id TestID) {
	l.started = append(l.started, id.String())
}

func (l *recordingTestLogger) TestError(id TestID, err error) {
	l.errors[id.String()] = append(l.errors[id.String()], err)
}

func (l *recordingTestLogger) TestFinished(id TestID, outcome Outcome, debugOutput CapturedOutput) {
	l.outcomes[id.String()] = outcome
	l.finished[id.String()] = debugOutput
}

func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.skips[id.String()] = reason
}
