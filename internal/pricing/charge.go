package pricing

import "fmt"

// Components are the named surcharges added on top of a base fare.
// Unset fields are zero; a zero component is simply not charged.
type Components struct {
	Pickup    Money `json:"pickup"`
	Delivery  Money `json:"delivery"`
	Handling  Money `json:"handling"`
	Docket    Money `json:"docket"`
	Packaging Money `json:"packaging"`
	ExtraMile Money `json:"extraMile"`
}

// componentList pairs every surcharge with its audit label, in display order.
func (c Components) componentList() []struct {
	Label  string
	Amount Money
} {
	return []struct {
		Label  string
		Amount Money
	}{
		{"pickup", c.Pickup},
		{"delivery", c.Delivery},
		{"handling", c.Handling},
		{"docket", c.Docket},
		{"packaging", c.Packaging},
		{"extraMile", c.ExtraMile},
	}
}

// Sum returns the total of all surcharge components.
func (c Components) Sum() Money {
	var total Money
	for _, item := range c.componentList() {
		total += item.Amount
	}
	return total
}

// Map returns the components keyed by audit label, for display and storage.
func (c Components) Map() map[string]Money {
	m := make(map[string]Money, 6)
	for _, item := range c.componentList() {
		m[item.Label] = item.Amount
	}
	return m
}

// Charge is an aggregated, immutable booking total. Each input component
// stays individually retrievable for display and audit.
type Charge struct {
	Base       Money
	Components Components
	Total      Money
}

// Aggregate folds a base fare and surcharges into a Charge.
// Any negative amount fails with ErrInvalidCharge: a negative charge is an
// upstream bug, and discounts are a separate line item, not handled here.
func Aggregate(base Money, components Components) (*Charge, error) {
	if base < 0 {
		return nil, fmt.Errorf("%w: base %s", ErrInvalidCharge, base)
	}
	for _, item := range components.componentList() {
		if item.Amount < 0 {
			return nil, fmt.Errorf("%w: %s %s", ErrInvalidCharge, item.Label, item.Amount)
		}
	}

	return &Charge{
		Base:       base,
		Components: components,
		Total:      base + components.Sum(),
	}, nil
}
