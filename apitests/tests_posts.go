package apitests

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaworks/qa-automation-harness/expect"
	"github.com/qaworks/qa-automation-harness/suite"
)

// checkedEntries bounds how many entries of a list response get the full
// schema treatment, to keep run time proportional to the suite, not the data.
const checkedEntries = 10

var postSchema = expect.Schema{
	"userId": expect.Int,
	"id":     expect.Int,
	"title":  expect.String,
	"body":   expect.String,
}

var validPostPayload = map[string]interface{}{
	"userId": 1,
	"title":  "Test Post - QA Automation",
	"body":   "Post created by the QA automation harness",
}

func DoPostTests(t *suite.T) {
	api := t.Config().PostsAPI

	t.Run("list posts", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "GET", "/posts", nil))
		t.RequireResponse(resp, expect.Response{Status: expect.Status(200)})

		posts := parseJSONArray(t, resp.Body)
		require.Greater(t, posts.Count(), 0, "posts list was empty")
		for i := 0; i < posts.Count() && i < checkedEntries; i++ {
			if err := postSchema.ValidateValue(posts.GetByIndex(i)); err != nil {
				t.Errorf("post #%d: %s", i+1, err)
			}
		}
	})

	t.Run("create post", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "POST", "/posts", validPostPayload))
		t.RequireResponse(resp, expect.Response{
			Status: expect.Status(200, 201),
			Schema: expect.Schema{"id": expect.Int},
		})
	})

	t.Run("update post", func(t *suite.T) {
		payload := map[string]interface{}{
			"id":     1,
			"userId": 1,
			"title":  "Updated by QA harness",
			"body":   "Modified content",
		}
		resp := t.DoRequest(apiRequest(api, "PUT", "/posts/1", payload))
		t.RequireResponse(resp, expect.Response{Status: expect.Status(200), Schema: postSchema})
	})

	t.Run("delete post", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "DELETE", "/posts/1", nil))
		t.RequireResponse(resp, expect.Response{Status: expect.Status(200, 204)})
	})

	t.Run("entity relationships", func(t *suite.T) {
		posts := parseJSONArray(t, t.DoRequest(apiRequest(api, "GET", "/posts", nil)).Body)
		comments := parseJSONArray(t, t.DoRequest(apiRequest(api, "GET", "/comments", nil)).Body)
		users := parseJSONArray(t, t.DoRequest(apiRequest(api, "GET", "/users", nil)).Body)

		postIDs := idSet(posts, "id")
		assert.True(t, intersects(postIDs, idSet(comments, "postId")),
			"no comment references an existing post")
		assert.True(t, intersects(idSet(users, "id"), idSet(posts, "userId")),
			"no post references an existing user")
	})
}

func DoPostNegativeTests(t *suite.T) {
	api := t.Config().PostsAPI

	for _, check := range []struct {
		name    string
		method  string
		path    string
		payload interface{}
		exp     expect.Response
	}{
		{
			name:   "missing post returns 404",
			method: "GET", path: "/posts/9999",
			exp: expect.Response{Status: expect.Status(404)},
		},
		{
			name:   "update on collection is rejected",
			method: "PUT", path: "/posts",
			payload: validPostPayload,
			exp:     expect.Response{Status: expect.Status(404, 405)},
		},
		{
			// the demo API is a tolerant mock; a strict API would answer 400
			name:   "create with invalid field types",
			method: "POST", path: "/posts",
			payload: map[string]interface{}{
				"userId": "string_instead_of_int",
				"title":  12345,
				"body":   nil,
			},
			exp: expect.Response{Status: expect.Status(200, 201, 400)},
		},
	} {
		check := check
		t.Run(check.name, func(t *suite.T) {
			resp := t.DoRequest(apiRequest(api, check.method, check.path, check.payload))
			t.Debug("negative check %q: %s %s", check.name, check.method, check.path)
			t.RequireResponse(resp, check.exp)
		})
	}

	t.Run("definitive 4xx is not retried", func(t *suite.T) {
		// One request, one response; a retried 404 would show up as extra
		// attempts in the debug log and a much longer case duration.
		resp := t.DoRequest(apiRequest(api, "GET", fmt.Sprintf("/posts/%d", 99999), nil))
		t.RequireResponse(resp, expect.Response{Status: expect.StatusClass(4)})
	})
}
