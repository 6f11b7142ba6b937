package webtests

import (
	"github.com/qaworks/qa-automation-harness/expect"
	"github.com/qaworks/qa-automation-harness/suite"
)

// DoStatusCodeTests exercises pages that deliberately answer with error
// statuses. The 404 is a definitive outcome and comes back on the first
// attempt; the 500 is retried per policy, and the final 500 is the expected
// result of the case rather than a failure.
func DoStatusCodeTests(t *suite.T) {
	web := t.Config().Web

	t.Run("missing page returns 404", func(t *suite.T) {
		resp := t.DoRequest(getPage(web.BaseURL, "/status_codes/404"))
		t.RequireResponse(resp, expect.Response{Status: expect.Status(404)})
	})

	t.Run("server error page returns 500", func(t *suite.T) {
		resp, err := t.DoRequestAllowingTransient(getPage(web.BaseURL, "/status_codes/500"))
		if err != nil {
			// retries exhausted on a page that always answers 500; the last
			// status still decides the case
			t.Debug("retries exhausted as expected: %s", err)
			t.RequireTransientStatus(err, 500)
			return
		}
		t.RequireResponse(resp, expect.Response{Status: expect.Status(500)})
	})
}
