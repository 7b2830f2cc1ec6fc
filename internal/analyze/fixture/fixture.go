// Package fixture holds model types for analyzer tests.
package fixture

import "formvalue/form"

// Invoice has one valid and two rejected override methods.
type Invoice struct {
	*form.Record
}

// OverrideTotal formats the total.
func (i *Invoice) OverrideTotal(v float64) (string, error) {
	return "", nil
}

// OverrideNumber takes too many arguments.
func (i *Invoice) OverrideNumber(v string, width int) string {
	return v
}

// OverrideDue returns no value.
func (i *Invoice) OverrideDue(v any) {}

// Overridden does not follow the naming convention.
func (i *Invoice) Overridden() bool { return false }

// Customer is a model without overrides.
type Customer struct {
	*form.Record
}

// Money has an override but is not a model.
type Money struct {
	Amount int64
}

// OverrideAmount is valid on a value receiver.
func (m Money) OverrideAmount(v int64) int64 { return v }

type hidden struct{}

func (h *hidden) OverrideSecret(v any) any { return v }
