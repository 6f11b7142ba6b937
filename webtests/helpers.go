package webtests

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/qaworks/qa-automation-harness/httpclient"
)

func pageURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + path
}

func getPage(base, path string) httpclient.Request {
	return httpclient.Request{Method: "GET", URL: pageURL(base, path)}
}

func postForm(base, path string, form url.Values) httpclient.Request {
	headers := make(http.Header)
	headers.Set("Content-Type", "application/x-www-form-urlencoded")
	return httpclient.Request{
		Method:  "POST",
		URL:     pageURL(base, path),
		Headers: headers,
		Body:    []byte(form.Encode()),
	}
}
