package framework

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Summary holds the aggregate counts for a set of results. The counts always
// satisfy Total == Passed+Failed+Errored+Skipped.
type Summary struct {
	Total      int
	Passed     int
	Failed     int
	Errored    int
	Skipped    int
	StartedAt  time.Time
	FinishedAt time.Time
}

func (s *Summary) add(r TestResult) {
	s.Total++
	switch r.Outcome {
	case OutcomePassed:
		s.Passed++
	case OutcomeFailed:
		s.Failed++
	case OutcomeErrored:
		s.Errored++
	case OutcomeSkipped:
		s.Skipped++
	}
	if s.StartedAt.IsZero() || r.StartedAt.Before(s.StartedAt) {
		s.StartedAt = r.StartedAt
	}
	if r.FinishedAt.After(s.FinishedAt) {
		s.FinishedAt = r.FinishedAt
	}
}

// Elapsed is the wall time between the first result's start and the last
// result's finish, or zero when no cases ran.
func (s Summary) Elapsed() time.Duration {
	if s.Total == 0 {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}

// SuccessRate returns passed/total and whether any cases were recorded at
// all. A run with zero cases reports ok=false instead of dividing by zero.
func (s Summary) SuccessRate() (rate float64, ok bool) {
	if s.Total == 0 {
		return 0, false
	}
	return float64(s.Passed) / float64(s.Total), true
}

// SuiteReport is the final aggregate for one run, broken down by top-level
// suite. It is built once at the end of the run and never mutated.
type SuiteReport struct {
	RunID      string
	Overall    Summary
	SuiteOrder []string
	Suites     map[string]Summary
}

func NewSuiteReport(results Results) SuiteReport {
	report := SuiteReport{
		RunID:  results.RunID,
		Suites: make(map[string]Summary),
	}
	for _, r := range results.Tests {
		report.Overall.add(r)
		name := r.TestID.Suite()
		if _, seen := report.Suites[name]; !seen {
			report.SuiteOrder = append(report.SuiteOrder, name)
		}
		s := report.Suites[name]
		s.add(r)
		report.Suites[name] = s
	}
	return report
}

// Print renders the human-readable summary table plus a list of every case
// that did not pass.
func (r SuiteReport) Print(dest io.Writer, results Results) {
	t := table.NewWriter()
	t.SetOutputMirror(dest)
	t.SetTitle(fmt.Sprintf("QA Test Results (run %s)", r.RunID))
	t.AppendHeader(table.Row{"Suite", "Total", "Passed", "Failed", "Errored", "Skipped", "Duration"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Total", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Errored", Align: text.AlignRight},
		{Name: "Skipped", Align: text.AlignRight},
		{Name: "Duration", Align: text.AlignRight},
	})

	for _, name := range r.SuiteOrder {
		s := r.Suites[name]
		t.AppendRow(table.Row{
			name, s.Total, s.Passed, s.Failed, s.Errored, s.Skipped, formatDuration(s.Elapsed()),
		})
	}
	o := r.Overall
	t.AppendFooter(table.Row{
		"TOTAL", o.Total, o.Passed, o.Failed, o.Errored, o.Skipped, formatDuration(o.Elapsed()),
	})
	t.Render()

	if rate, ok := o.SuccessRate(); ok {
		fmt.Fprintf(dest, "Success rate: %.1f%% (%d/%d)\n", rate*100, o.Passed, o.Total)
	} else {
		fmt.Fprintln(dest, "No test cases were executed")
	}

	failures := results.Failures()
	if len(failures) > 0 {
		fmt.Fprintf(dest, "\n%d cases did not pass:\n", len(failures))
		for _, f := range failures {
			fmt.Fprintf(dest, "  %s [%s]: %s\n", strings.ToUpper(string(f.Outcome)), f.TestID, firstErrorLine(f))
		}
	}
}

func firstErrorLine(r TestResult) string {
	if len(r.Errors) == 0 {
		return ""
	}
	msg := r.Errors[0].Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return msg
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
