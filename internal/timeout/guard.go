// Package timeout tracks a single global wall-clock budget for a pipeline
// run. The guard is cooperative: it is polled between stages and never
// preempts in-flight work.
package timeout

import "time"

// DefaultBudget is the global pipeline budget.
const DefaultBudget = 55 * time.Second

// Guard tracks elapsed time against a fixed budget.
type Guard struct {
	start  time.Time
	budget time.Duration
	now    func() time.Time
}

// New creates a guard with the given budget, started now. A non-positive
// budget falls back to DefaultBudget.
func New(budget time.Duration) *Guard {
	return newGuard(budget, time.Now)
}

func newGuard(budget time.Duration, now func() time.Time) *Guard {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Guard{start: now(), budget: budget, now: now}
}

// Remaining returns the unspent budget. It can be negative once the budget
// is exhausted.
func (g *Guard) Remaining() time.Duration {
	return g.budget - g.Elapsed()
}

// Expired reports whether the budget is spent.
func (g *Guard) Expired() bool {
	return g.Remaining() <= 0
}

// Elapsed returns the time since the guard started.
func (g *Guard) Elapsed() time.Duration {
	return g.now().Sub(g.start)
}

// Budget returns the guard's fixed budget.
func (g *Guard) Budget() time.Duration {
	return g.budget
}

// Deadline returns the absolute time at which the budget expires.
func (g *Guard) Deadline() time.Time {
	return g.start.Add(g.budget)
}
