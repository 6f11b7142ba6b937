package expect

// Response bundles the checks applied to one HTTP response. Status is always
// checked first; the schema is only consulted when the status matched, so a
// status mismatch is reported as such rather than as a body problem.
type Response struct {
	Status StatusExpectation
	Schema Schema
}

// Validate returns nil on pass, an *UnexpectedStatusError on a status
// mismatch, or a *SchemaViolationError on a structural mismatch.
func (r Response) Validate(status int, body []byte) error {
	if !r.Status.Matches(status) {
		return &UnexpectedStatusError{Got: status, Want: r.Status.String()}
	}
	return r.Schema.Validate(body)
}
