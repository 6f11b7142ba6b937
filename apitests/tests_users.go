package apitests

import (
	"github.com/stretchr/testify/require"

	"github.com/qaworks/qa-automation-harness/expect"
	"github.com/qaworks/qa-automation-harness/suite"
)

var userSchema = expect.Schema{
	"id":         expect.Int,
	"email":      expect.String,
	"first_name": expect.String,
	"last_name":  expect.String,
}

var userPageSchema = expect.Schema{
	"page":        expect.Int,
	"per_page":    expect.Int,
	"total":       expect.Int,
	"total_pages": expect.Int,
	"data":        expect.Array,
}

var validUserPayload = map[string]interface{}{
	"name": "QA Tester",
	"job":  "Quality Assurance Engineer",
}

func DoUserTests(t *suite.T) {
	api := t.Config().UsersAPI

	t.Run("create user", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "POST", "/users", validUserPayload))
		t.RequireResponse(resp, expect.Response{
			Status: expect.Status(201),
			Schema: expect.Schema{"id": expect.String, "createdAt": expect.String},
		})
	})

	t.Run("list users", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "GET", "/users", nil))
		t.RequireResponse(resp, expect.Response{Status: expect.Status(200), Schema: userPageSchema})
	})

	t.Run("pagination", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "GET", "/users?page=2", nil))
		t.RequireResponse(resp, expect.Response{Status: expect.Status(200), Schema: userPageSchema})

		page := parseJSONObject(t, resp.Body)
		require.Equal(t, 2, page.GetByKey("page").IntValue(), "pagination did not move to page 2")

		users := page.GetByKey("data")
		require.Greater(t, users.Count(), 0, "page 2 contained no users")
		for i := 0; i < users.Count() && i < checkedEntries; i++ {
			if err := userSchema.ValidateValue(users.GetByIndex(i)); err != nil {
				t.Errorf("user #%d: %s", i+1, err)
			}
		}
	})

	t.Run("update user", func(t *suite.T) {
		payload := map[string]interface{}{
			"name": "QA Tester Updated",
			"job":  "Senior QA Engineer",
		}
		resp := t.DoRequest(apiRequest(api, "PUT", "/users/2", payload))
		t.RequireResponse(resp, expect.Response{
			Status: expect.Status(200),
			Schema: expect.Schema{"updatedAt": expect.String},
		})
	})

	t.Run("delete user", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "DELETE", "/users/2", nil))
		t.RequireResponse(resp, expect.Response{Status: expect.Status(204)})
	})
}
