// Package webtests contains the web scenario suite. The scenarios are
// exercised at the HTTP level through the shared executor: form posts,
// redirects, cookies, and page content checks against a site laid out like
// the-internet.herokuapp.com. Driving a real browser is the job of an
// external driver and is out of scope for the harness.
package webtests

import "github.com/qaworks/qa-automation-harness/suite"

func Cases() []suite.Case {
	return []suite.Case{
		{Name: "login", Category: suite.CategoryWeb, Run: DoLoginTests},
		{Name: "pages", Category: suite.CategoryWeb, Run: DoPageTests},
		{Name: "status codes", Category: suite.CategoryWeb, Run: DoStatusCodeTests},
	}
}
