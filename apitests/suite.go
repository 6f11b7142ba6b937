// Package apitests contains the REST API test suite: functional CRUD checks,
// schema validation, authentication flows, negative-path cases, and a paced
// robustness check. The targets are configured at run start; by default they
// are the public JSONPlaceholder and ReqRes demo APIs.
package apitests

import "github.com/qaworks/qa-automation-harness/suite"

func Cases() []suite.Case {
	return []suite.Case{
		{Name: "posts CRUD", Category: suite.CategoryAPI, Run: DoPostTests},
		{Name: "posts negative paths", Category: suite.CategoryAPI, Run: DoPostNegativeTests},
		{Name: "users", Category: suite.CategoryAPI, Run: DoUserTests},
		{Name: "authentication", Category: suite.CategoryAPI, Run: DoAuthTests},
		{Name: "robustness", Category: suite.CategoryAPI, Run: DoRobustnessTests},
	}
}
