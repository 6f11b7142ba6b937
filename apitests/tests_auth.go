package apitests

import (
	"github.com/qaworks/qa-automation-harness/expect"
	"github.com/qaworks/qa-automation-harness/suite"
)

var validAuthPayload = map[string]interface{}{
	"email":    "eve.holt@reqres.in",
	"password": "cityslicka",
}

func DoAuthTests(t *suite.T) {
	api := t.Config().UsersAPI

	t.Run("login succeeds with valid credentials", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "POST", "/login", validAuthPayload))
		t.RequireResponse(resp, expect.Response{
			Status: expect.Status(200),
			Schema: expect.Schema{"token": expect.String},
		})
	})

	t.Run("login fails without a password", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "POST", "/login",
			map[string]interface{}{"email": "peter@klaven"}))
		t.RequireResponse(resp, expect.Response{
			Status: expect.Status(400),
			Schema: expect.Schema{"error": expect.String},
		})
	})

	t.Run("register succeeds with valid credentials", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "POST", "/register",
			map[string]interface{}{"email": "eve.holt@reqres.in", "password": "pistol"}))
		t.RequireResponse(resp, expect.Response{
			Status: expect.Status(200),
			Schema: expect.Schema{"id": expect.Int, "token": expect.String},
		})
	})

	t.Run("register fails without a password", func(t *suite.T) {
		resp := t.DoRequest(apiRequest(api, "POST", "/register",
			map[string]interface{}{"email": "sydney@fife"}))
		t.RequireResponse(resp, expect.Response{
			Status: expect.Status(400),
			Schema: expect.Schema{"error": expect.String},
		})
	})
}
