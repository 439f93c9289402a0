package paginate

import "github.com/tsawler/pagina/model"

// Oracle reports whether text fits a rendering viewport. Implementations
// wrap a real measurement surface or an approximation of one. Probes
// must be cheap, side-effect-free, and idempotent: the engine calls
// Overflows many times per section.
type Oracle interface {
	// Ready reports whether measurement is currently possible for the
	// viewport class. When it returns false the engine ignores the
	// oracle and paginates against character budgets instead.
	Ready(class model.ViewportClass) bool

	// Overflows reports whether body, rendered under the given title
	// and subtitle, exceeds the viewport.
	Overflows(body, title, subtitle string, class model.ViewportClass) bool
}

// DefaultBudgets returns the per-viewport character allowances used when
// no measurement is available. The values are calibrated against the
// reference report viewer at its default font size.
func DefaultBudgets() map[model.ViewportClass]int {
	return map[model.ViewportClass]int{
		model.ViewportCompact:  1000,
		model.ViewportStandard: 1200,
		model.ViewportExpanded: 1400,
	}
}

// BudgetOracle is an always-ready Oracle backed by character budgets.
// It serves headless platforms, tests, and the HTTP service, where no
// rendering surface exists to measure against.
type BudgetOracle struct {
	budgets map[model.ViewportClass]int
}

// NewBudgetOracle creates a budget oracle with the default allowances.
func NewBudgetOracle() *BudgetOracle {
	return NewBudgetOracleWithBudgets(DefaultBudgets())
}

// NewBudgetOracleWithBudgets creates a budget oracle with custom
// allowances. Classes missing from the map fall back to the default
// standard allowance.
func NewBudgetOracleWithBudgets(budgets map[model.ViewportClass]int) *BudgetOracle {
	merged := DefaultBudgets()
	for class, budget := range budgets {
		if budget > 0 {
			merged[class] = budget
		}
	}
	return &BudgetOracle{budgets: merged}
}

// Ready always reports true: a character budget needs no fonts.
func (o *BudgetOracle) Ready(model.ViewportClass) bool {
	return true
}

// Overflows reports whether body exceeds the class budget.
func (o *BudgetOracle) Overflows(body, _, _ string, class model.ViewportClass) bool {
	return len(body) > o.Budget(class)
}

// Budget returns the character allowance for a viewport class.
func (o *BudgetOracle) Budget(class model.ViewportClass) int {
	if b, ok := o.budgets[class]; ok && b > 0 {
		return b
	}
	return DefaultBudgets()[model.ViewportStandard]
}
