package expect

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// FieldType is the declared type of a required response field.
type FieldType int

const (
	String FieldType = iota
	Int
	Number
	Bool
	Object
	Array
)

func (t FieldType) String() string {
	switch t {
	case String:
		return "string"
	case Int:
		return "int"
	case Number:
		return "number"
	case Bool:
		return "bool"
	case Object:
		return "object"
	case Array:
		return "array"
	}
	return "unknown"
}

// Schema maps required field paths to their expected types. Paths may be
// dotted to reach into nested objects ("data.id"). Fields present in the body
// but not named in the schema are ignored, so targets remain free to add
// fields. An empty schema always passes.
type Schema map[string]FieldType

// SchemaViolationError reports the first required field that was missing or
// had the wrong type. It is a correctness finding and is never retried.
type SchemaViolationError struct {
	Path string
	Want string
	Got  string
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("schema violation at %q: expected %s, got %s", e.Path, e.Want, e.Got)
}

// Validate checks the JSON body against the schema.
func (s Schema) Validate(body []byte) error {
	if len(s) == 0 {
		return nil
	}
	return s.ValidateValue(ldvalue.Parse(body))
}

// ValidateValue checks an already-parsed JSON value, which is useful when
// applying the same contract to every entry of a response array.
func (s Schema) ValidateValue(root ldvalue.Value) error {
	if len(s) == 0 {
		return nil
	}
	if root.Type() != ldvalue.ObjectType {
		return &SchemaViolationError{Path: "", Want: "object", Got: typeName(root)}
	}

	// deterministic reporting order
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		v, found := lookup(root, path)
		if !found {
			return &SchemaViolationError{Path: path, Want: s[path].String(), Got: "missing"}
		}
		if !typeMatches(v, s[path]) {
			return &SchemaViolationError{Path: path, Want: s[path].String(), Got: typeName(v)}
		}
	}
	return nil
}

func lookup(root ldvalue.Value, path string) (ldvalue.Value, bool) {
	v := root
	for _, key := range strings.Split(path, ".") {
		if v.Type() != ldvalue.ObjectType {
			return ldvalue.Null(), false
		}
		next, found := v.TryGetByKey(key)
		if !found {
			return ldvalue.Null(), false
		}
		v = next
	}
	return v, true
}

func typeMatches(v ldvalue.Value, want FieldType) bool {
	switch want {
	case String:
		return v.Type() == ldvalue.StringType
	case Int:
		return v.IsInt()
	case Number:
		return v.IsNumber()
	case Bool:
		return v.Type() == ldvalue.BoolType
	case Object:
		return v.Type() == ldvalue.ObjectType
	case Array:
		return v.Type() == ldvalue.ArrayType
	}
	return false
}

func typeName(v ldvalue.Value) string {
	switch v.Type() {
	case ldvalue.NullType:
		return "null"
	case ldvalue.BoolType:
		return "bool"
	case ldvalue.NumberType:
		if v.IsInt() {
			return "int"
		}
		return "number"
	case ldvalue.StringType:
		return "string"
	case ldvalue.ArrayType:
		return "array"
	case ldvalue.ObjectType:
		return "object"
	}
	return "unknown"
}
