package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func id(parts ...string) TestID {
	return TestID{Path: parts}
}

func TestRegexFiltersDefaultAllowsEverything(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter(id("api", "posts", "create")))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^api/"))

	assert.True(t, f.AsFilter(id("api", "posts")))
	assert.False(t, f.AsFilter(id("web", "login")))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("robustness"))

	assert.True(t, f.AsFilter(id("api", "posts")))
	assert.False(t, f.AsFilter(id("api", "robustness")))
}

func TestRegexFiltersCombine(t *testing.T) {
	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^api/"))
	require.NoError(t, f.MustNotMatch.Set("users"))

	assert.True(t, f.AsFilter(id("api", "posts")))
	assert.False(t, f.AsFilter(id("api", "users")))
	assert.False(t, f.AsFilter(id("web", "login")))
}

func TestRegexListSetRejectsBadPattern(t *testing.T) {
	var l RegexList
	assert.Error(t, l.Set("("))
	assert.False(t, l.IsDefined())
}

func TestRegexListPatterns(t *testing.T) {
	var l RegexList
	require.NoError(t, l.Set("^api/"))
	require.NoError(t, l.Set("login"))
	assert.Equal(t, []string{"^api/", "login"}, l.Patterns())
	assert.Equal(t, `"^api/" or "login"`, l.String())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String(), "nothing is printed when no filters are set")

	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("^api/"))
	require.NoError(t, f.MustNotMatch.Set("robustness"))
	PrintFilterDescription(&buf, f)
	out := buf.String()
	assert.Contains(t, out, `skip any not matching "^api/"`)
	assert.Contains(t, out, `skip any matching "robustness"`)
}
