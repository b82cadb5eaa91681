package store

import "fmt"

// Strategy selects how a reordered sequence is persisted.
type Strategy string

const (
	// StrategyBulk sends the full renumbered sequence to PUT /api/categories/order.
	StrategyBulk Strategy = "bulk"

	// StrategySingle sends only the moved category's new order to PUT /api/categories.
	//
	// Deprecated: sibling orders are only consistent if the server shifts them.
	StrategySingle Strategy = "single"
)

// ConfirmMode selects what happens after a reorder request succeeds.
type ConfirmMode string

const (
	// ConfirmOptimistic keeps the locally computed sequence.
	ConfirmOptimistic ConfirmMode = "optimistic"

	// ConfirmRefetch re-fetches the category list from the server.
	ConfirmRefetch ConfirmMode = "refetch"
)

// Options configures a Store.
type Options struct {
	Strategy Strategy
	Confirm  ConfirmMode
}

// DefaultOptions returns the bulk strategy with refetch confirmation.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyBulk,
		Confirm:  ConfirmRefetch,
	}
}

// ParseStrategy parses a persist strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyBulk, StrategySingle:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown reorder strategy %q", s)
	}
}

// ParseConfirmMode parses a confirm mode name.
func ParseConfirmMode(s string) (ConfirmMode, error) {
	switch ConfirmMode(s) {
	case ConfirmOptimistic, ConfirmRefetch:
		return ConfirmMode(s), nil
	default:
		return "", fmt.Errorf("unknown confirm mode %q", s)
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Strategy == "" {
		o.Strategy = d.Strategy
	}
	if o.Confirm == "" {
		o.Confirm = d.Confirm
	}
	return o
}
