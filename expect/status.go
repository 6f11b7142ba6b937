// Package expect decides pass/fail for one HTTP response given a test case's
// declared expectation: a status code (or class) check followed by an optional
// structural contract on the JSON body. The two kinds of mismatch surface as
// distinct error types so a report can tell a wrong status from a malformed
// body.
package expect

import (
	"fmt"
	"strconv"
	"strings"
)

// StatusExpectation matches a response status against either an explicit set
// of acceptable codes or a whole code class (2xx, 4xx, 5xx).
type StatusExpectation struct {
	codes []int
	class int
}

// Status expects one of the given exact codes.
func Status(codes ...int) StatusExpectation {
	return StatusExpectation{codes: codes}
}

// StatusClass expects any code in the given class, e.g. StatusClass(2) for
// any 2xx response.
func StatusClass(class int) StatusExpectation {
	return StatusExpectation{class: class}
}

func (s StatusExpectation) Matches(code int) bool {
	if s.class != 0 {
		return code/100 == s.class
	}
	for _, c := range s.codes {
		if c == code {
			return true
		}
	}
	return false
}

func (s StatusExpectation) String() string {
	if s.class != 0 {
		return fmt.Sprintf("%dxx", s.class)
	}
	var ss []string
	for _, c := range s.codes {
		ss = append(ss, strconv.Itoa(c))
	}
	return strings.Join(ss, " or ")
}

// UnexpectedStatusError reports a response status outside the expectation.
// It is a definitive finding and is never retried.
type UnexpectedStatusError struct {
	Got  int
	Want string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("expected status %s, got %d", e.Want, e.Got)
}
