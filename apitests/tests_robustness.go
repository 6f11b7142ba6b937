package apitests

import (
	"strconv"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/qaworks/qa-automation-harness/expect"
	"github.com/qaworks/qa-automation-harness/suite"
)

const rateLimitedFallbackWait = 5 * time.Second

// DoRobustnessTests sends a paced burst of identical requests and verifies
// the target stays well-behaved. Rate limiting (429) is tolerated and the
// Retry-After header is honored at this level; the executor itself never
// retries a 4xx.
func DoRobustnessTests(t *suite.T) {
	api := t.Config().UsersAPI
	burst := t.Config().HTTP.MaxRequestsPerWindow
	if burst <= 0 {
		burst = 10
	}

	var succeeded, rateLimited int
	for i := 0; i < burst; i++ {
		resp := t.DoRequest(apiRequest(api, "GET", "/users/2", nil))
		switch {
		case resp.Status == 200:
			succeeded++
		case resp.Status == 429:
			rateLimited++
			wait := rateLimitedFallbackWait
			if retryAfter := resp.Headers.Get("Retry-After"); retryAfter != "" {
				if secs, err := strconv.Atoi(retryAfter); err == nil {
					wait = time.Duration(secs) * time.Second
				}
			}
			t.Debug("rate limited on request #%d, honoring Retry-After (%s)", i+1, wait)
			t.Sleep(wait)
		default:
			t.RequireResponse(resp, expect.Response{Status: expect.Status(200, 429)})
		}
	}

	t.Debug("burst of %d requests: %d succeeded, %d rate limited", burst, succeeded, rateLimited)
	assert.Greater(t, succeeded, 0, "no request in the burst succeeded")
}
