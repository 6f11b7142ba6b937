package framework

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// WriteJUnitFile persists the run's results as a JUnit-style XML file so CI
// systems can pick them up alongside the console report.
func WriteJUnitFile(path string, results Results) error {
	report := NewSuiteReport(results)

	var doc junitTestSuites
	for _, name := range report.SuiteOrder {
		s := report.Suites[name]
		suite := junitTestSuite{
			Name:     name,
			Tests:    s.Total,
			Failures: s.Failed,
			Errors:   s.Errored,
			Skipped:  s.Skipped,
			Time:     junitSeconds(s),
		}
		for _, r := range results.Tests {
			if r.TestID.Suite() != name {
				continue
			}
			c := junitTestCase{
				Name: r.TestID.String(),
				Time: fmt.Sprintf("%.3f", r.Duration().Seconds()),
			}
			switch r.Outcome {
			case OutcomeFailed:
				c.Failure = &junitMessage{Message: firstErrorLine(r), Body: joinErrors(r.Errors)}
			case OutcomeErrored:
				c.Error = &junitMessage{Message: firstErrorLine(r), Body: joinErrors(r.Errors)}
			case OutcomeSkipped:
				c.Skipped = &junitMessage{Message: r.SkipReason}
			}
			suite.Cases = append(suite.Cases, c)
		}
		doc.Suites = append(doc.Suites, suite)
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append([]byte(xml.Header), data...), 0o644)
}

func junitSeconds(s Summary) string {
	return fmt.Sprintf("%.3f", s.Elapsed().Seconds())
}

func joinErrors(errs []error) string {
	var ss []string
	for _, e := range errs {
		ss = append(ss, e.Error())
	}
	return strings.Join(ss, "\n")
}

type junitTestSuites struct {
	XMLName xml.Name         `xml:"testsuites"`
	Suites  []junitTestSuite `xml:"testsuite"`
}

type junitTestSuite struct {
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Errors   int             `xml:"errors,attr"`
	Skipped  int             `xml:"skipped,attr"`
	Time     string          `xml:"time,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name    string        `xml:"name,attr"`
	Time    string        `xml:"time,attr"`
	Failure *junitMessage `xml:"failure,omitempty"`
	Error   *junitMessage `xml:"error,omitempty"`
	Skipped *junitMessage `xml:"skipped,omitempty"`
}

type junitMessage struct {
	Message string `xml:"message,attr"`
	Body    string `xml:",chardata"`
}
