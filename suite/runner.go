package suite

import (
	"context"
	"time"

	"github.com/qaworks/qa-automation-harness/config"
	"github.com/qaworks/qa-automation-harness/framework"
	"github.com/qaworks/qa-automation-harness/httpclient"
)

type Options struct {
	RunID      string
	Filter     framework.Filter
	TestLogger framework.TestLogger
	Timeout    time.Duration
	Exec       *httpclient.Executor
	Config     *config.Config
}

// Run executes the cases sequentially, grouped by category, and returns the
// accumulated results. When the run timeout fires mid-suite, no further cases
// are issued; each remaining case is still recorded, as skipped.
func Run(ctx context.Context, cases []Case, opts Options) framework.Results {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	return framework.Run(ctx, opts.RunID, opts.Filter, opts.TestLogger, func(root *framework.Context) {
		for _, g := range groupByCategory(cases) {
			g := g
			root.RunGroup(string(g.category), func(c *framework.Context) {
				for _, cs := range g.cases {
					cs := cs
					c.Run(cs.Name, func(cc *framework.Context) {
						cs.Run(&T{context: cc, exec: opts.Exec, cfg: opts.Config})
					})
				}
			})
		}
	})
}

type caseGroup struct {
	category Category
	cases    []Case
}

// groupByCategory preserves the declaration order of both the categories and
// the cases within them; reports must be deterministic across runs.
func groupByCategory(cases []Case) []caseGroup {
	var groups []caseGroup
	index := map[Category]int{}
	for _, c := range cases {
		i, seen := index[c.Category]
		if !seen {
			i = len(groups)
			index[c.Category] = i
			groups = append(groups, caseGroup{category: c.Category})
		}
		groups[i].cases = append(groups[i].cases, c)
	}
	return groups
}
