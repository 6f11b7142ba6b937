package webtests

import (
	"github.com/stretchr/testify/assert"

	"github.com/qaworks/qa-automation-harness/expect"
	"github.com/qaworks/qa-automation-harness/suite"
)

func DoPageTests(t *suite.T) {
	web := t.Config().Web

	for _, page := range []struct {
		name     string
		path     string
		contains string
	}{
		{"dynamic loading", "/dynamic_loading/1", "Dynamically Loaded Page Elements"},
		{"dynamic controls", "/dynamic_controls", "Dynamic Controls"},
		{"checkboxes", "/checkboxes", `type="checkbox"`},
		{"dropdown", "/dropdown", `id="dropdown"`},
		{"drag and drop", "/drag_and_drop", "Drag and Drop"},
	} {
		page := page
		t.Run(page.name, func(t *suite.T) {
			resp := t.DoRequest(getPage(web.BaseURL, page.path))
			t.RequireResponse(resp, expect.Response{Status: expect.Status(200)})
			assert.Contains(t, string(resp.Body), page.contains,
				"page %s did not contain the expected markup", page.path)
		})
	}
}
