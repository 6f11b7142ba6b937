package expect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestStatusExpectationExactCodes(t *testing.T) {
	e := Status(200, 201)
	assert.True(t, e.Matches(200))
	assert.True(t, e.Matches(201))
	assert.False(t, e.Matches(204))
	assert.Equal(t, "200 or 201", e.String())
}

func TestStatusExpectationClass(t *testing.T) {
	e := StatusClass(2)
	assert.True(t, e.Matches(200))
	assert.True(t, e.Matches(299))
	assert.False(t, e.Matches(301))
	assert.False(t, e.Matches(404))
	assert.Equal(t, "2xx", e.String())
}

func TestSchemaPassesWithMatchingFields(t *testing.T) {
	s := Schema{"id": Int, "name": String}
	body := []byte(`{"id":1,"name":"a","extra":true}`)
	assert.NoError(t, s.Validate(body), "undeclared fields should be ignored")
}

func TestSchemaRejectsWrongType(t *testing.T) {
	s := Schema{"id": Int, "name": String}
	err := s.Validate([]byte(`{"id":"1","name":"a"}`))

	var sv *SchemaViolationError
	require.ErrorAs(t, err, &sv)
	assert.Equal(t, "id", sv.Path)
	assert.Equal(t, "int", sv.Want)
	assert.Equal(t, "string", sv.Got)
}

func TestSchemaRejectsMissingField(t *testing.T) {
	s := Schema{"id": Int, "name": String}
	err := s.Validate([]byte(`{"id":1}`))

	var sv *SchemaViolationError
	require.ErrorAs(t, err, &sv)
	assert.Equal(t, "name", sv.Path)
	assert.Equal(t, "missing", sv.Got)
}

func TestSchemaEmptyAlwaysPasses(t *testing.T) {
	var s Schema
	assert.NoError(t, s.Validate([]byte(`{"anything":1}`)))
	assert.NoError(t, s.Validate([]byte(`not even json`)))
}

func TestSchemaRejectsNonObjectBody(t *testing.T) {
	s := Schema{"id": Int}

	var sv *SchemaViolationError
	require.ErrorAs(t, s.Validate([]byte(`[1,2,3]`)), &sv)
	assert.Equal(t, "object", sv.Want)
	assert.Equal(t, "array", sv.Got)

	require.ErrorAs(t, s.Validate([]byte(`garbage`)), &sv)
	assert.Equal(t, "null", sv.Got, "unparseable bodies read as null")
}

func TestSchemaDottedPaths(t *testing.T) {
	s := Schema{"data.id": Int, "data.email": String}

	assert.NoError(t, s.Validate([]byte(`{"data":{"id":2,"email":"x@y.z"}}`)))

	var sv *SchemaViolationError
	require.ErrorAs(t, s.Validate([]byte(`{"data":{"id":2}}`)), &sv)
	assert.Equal(t, "data.email", sv.Path)

	// the intermediate node must itself be an object
	require.ErrorAs(t, s.Validate([]byte(`{"data":7}`)), &sv)
	assert.Equal(t, "missing", sv.Got)
}

func TestSchemaIntVersusNumber(t *testing.T) {
	intOnly := Schema{"v": Int}
	anyNumber := Schema{"v": Number}

	assert.NoError(t, intOnly.Validate([]byte(`{"v":3}`)))
	assert.Error(t, intOnly.Validate([]byte(`{"v":3.5}`)))
	assert.NoError(t, anyNumber.Validate([]byte(`{"v":3}`)))
	assert.NoError(t, anyNumber.Validate([]byte(`{"v":3.5}`)))
}

func TestSchemaAllFieldTypes(t *testing.T) {
	s := Schema{
		"s":   String,
		"i":   Int,
		"n":   Number,
		"b":   Bool,
		"o":   Object,
		"arr": Array,
	}
	body := []byte(`{"s":"x","i":1,"n":1.5,"b":true,"o":{},"arr":[]}`)
	assert.NoError(t, s.Validate(body))
}

func TestSchemaValidateValueForArrayEntries(t *testing.T) {
	s := Schema{"id": Int}
	list := ldvalue.Parse([]byte(`[{"id":1},{"id":"nope"}]`))

	require.Equal(t, 2, list.Count())
	assert.NoError(t, s.ValidateValue(list.GetByIndex(0)))

	var sv *SchemaViolationError
	require.ErrorAs(t, s.ValidateValue(list.GetByIndex(1)), &sv)
	assert.Equal(t, "id", sv.Path)
}

func TestResponseChecksStatusBeforeSchema(t *testing.T) {
	r := Response{
		Status: Status(200),
		Schema: Schema{"id": Int},
	}

	// wrong status wins even though the body is also wrong
	err := r.Validate(500, []byte(`{"id":"1"}`))
	var us *UnexpectedStatusError
	require.ErrorAs(t, err, &us)
	assert.Equal(t, 500, us.Got)
	assert.Equal(t, "200", us.Want)

	var sv *SchemaViolationError
	require.ErrorAs(t, r.Validate(200, []byte(`{"id":"1"}`)), &sv)

	assert.NoError(t, r.Validate(200, []byte(`{"id":1,"name":"a","extra":true}`)))
}

func TestFieldTypeStrings(t *testing.T) {
	for want, ft := range map[string]FieldType{
		"string": String, "int": Int, "number": Number,
		"bool": Bool, "object": Object, "array": Array,
	} {
		assert.Equal(t, want, ft.String())
	}
	assert.Equal(t, "unknown", FieldType(99).String())
}

func TestErrorMessages(t *testing.T) {
	sv := &SchemaViolationError{Path: "id", Want: "int", Got: "string"}
	assert.Equal(t, `schema violation at "id": expected int, got string`, sv.Error())

	us := &UnexpectedStatusError{Got: 404, Want: "200 or 201"}
	assert.Equal(t, "expected status 200 or 201, got 404", us.Error())
}
