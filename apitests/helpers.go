package apitests

import (
	"encoding/json"
	"net/http"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/qaworks/qa-automation-harness/config"
	"github.com/qaworks/qa-automation-harness/httpclient"
	"github.com/qaworks/qa-automation-harness/suite"
)

func apiRequest(api config.APIConfig, method, path string, payload interface{}) httpclient.Request {
	headers := make(http.Header)
	for name, value := range api.Headers {
		headers.Set(name, value)
	}
	var body []byte
	if payload != nil {
		body, _ = json.Marshal(payload)
	}
	return httpclient.Request{
		Method:  method,
		URL:     strings.TrimSuffix(api.BaseURL, "/") + path,
		Headers: headers,
		Body:    body,
	}
}

// parseJSONArray fails the test immediately if the body is not a JSON array.
func parseJSONArray(t *suite.T, body []byte) ldvalue.Value {
	v := ldvalue.Parse(body)
	if v.Type() != ldvalue.ArrayType {
		t.Errorf("expected a JSON array in response, got %s", v.JSONString())
		t.FailNow()
	}
	return v
}

// parseJSONObject fails the test immediately if the body is not a JSON object.
func parseJSONObject(t *suite.T, body []byte) ldvalue.Value {
	v := ldvalue.Parse(body)
	if v.Type() != ldvalue.ObjectType {
		t.Errorf("expected a JSON object in response, got %s", v.JSONString())
		t.FailNow()
	}
	return v
}

// idSet collects the integer values of the named field across an array of
// objects, ignoring entries where the field is absent.
func idSet(items ldvalue.Value, field string) map[int]bool {
	ids := make(map[int]bool)
	for i := 0; i < items.Count(); i++ {
		if v, ok := items.GetByIndex(i).TryGetByKey(field); ok && v.IsInt() {
			ids[v.IntValue()] = true
		}
	}
	return ids
}

func intersects(a, b map[int]bool) bool {
	for id := range a {
		if b[id] {
			return true
		}
	}
	return false
}
