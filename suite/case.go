// Package suite defines test cases as data and runs them sequentially,
// feeding one result per case to the framework's aggregator.
package suite

// Category selects which subset of the suite a case belongs to.
type Category string

const (
	CategoryWeb Category = "web"
	CategoryAPI Category = "api"
)

// Case is one test case. Cases are built once at suite-load time and are not
// modified afterwards.
type Case struct {
	Name     string
	Category Category
	Run      func(*T)
}

// Subset filters cases to one category; the "all" subset is the identity.
func Subset(cases []Case, category Category) []Case {
	var ret []Case
	for _, c := range cases {
		if c.Category == category {
			ret = append(ret, c)
		}
	}
	return ret
}
