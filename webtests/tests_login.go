package webtests

import (
	"net/url"

	"github.com/stretchr/testify/assert"

	"github.com/qaworks/qa-automation-harness/expect"
	"github.com/qaworks/qa-automation-harness/suite"
)

func DoLoginTests(t *suite.T) {
	web := t.Config().Web

	t.Run("valid credentials reach the secure area", func(t *suite.T) {
		form := url.Values{}
		form.Set("username", web.Username)
		form.Set("password", web.Password)

		// the client follows the post-login redirect, so the final page is 200
		resp := t.DoRequest(postForm(web.BaseURL, "/authenticate", form))
		t.RequireResponse(resp, expect.Response{Status: expect.StatusClass(2)})
		assert.Contains(t, string(resp.Body), "Secure Area",
			"login did not land on the secure area page")
	})

	t.Run("invalid credentials show an error", func(t *suite.T) {
		form := url.Values{}
		form.Set("username", "wronguser")
		form.Set("password", "wrongpass")

		resp := t.DoRequest(postForm(web.BaseURL, "/authenticate", form))
		t.RequireResponse(resp, expect.Response{Status: expect.StatusClass(2)})
		assert.Contains(t, string(resp.Body), "Your username is invalid!",
			"invalid login did not show the expected flash message")
	})

	t.Run("logout returns to the login page", func(t *suite.T) {
		resp := t.DoRequest(getPage(web.BaseURL, "/logout"))
		t.RequireResponse(resp, expect.Response{Status: expect.StatusClass(2)})
		assert.Contains(t, string(resp.Body), "Login Page",
			"logout did not land on the login page")
	})
}
