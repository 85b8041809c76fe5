package pricing

import (
	"fmt"
	"strings"
)

// Express shipments pay 1.5x the tier rate. The multiplier applies after
// tier selection: tiers are derived from raw weight, not from rates.
const (
	expressMultiplierNum = 3
	expressMultiplierDen = 2
)

// ZoneRate is the tiered rate for one directed zone pair.
type ZoneRate struct {
	OriginZone      string
	DestinationZone string
	UpTo1kg         Money
	UpTo5kg         Money
	Above5kg        Money
}

// rateForTier selects the base rate for a tier.
func (r ZoneRate) rateForTier(tier WeightTier) Money {
	switch tier {
	case TierUpTo1kg:
		return r.UpTo1kg
	case TierUpTo5kg:
		return r.UpTo5kg
	default:
		return r.Above5kg
	}
}

// ZoneRateTable is an immutable snapshot of zone-pair rates. Lookups are
// exact-match on normalized keys. Refreshing rates means building a new
// table and swapping the whole snapshot, never mutating one in place.
type ZoneRateTable struct {
	rates map[string]ZoneRate
}

// NormalizeZone canonicalizes a zone identifier for keying: trimmed and
// uppercased. Applied identically at table build and at lookup.
func NormalizeZone(zone string) string {
	return strings.ToUpper(strings.TrimSpace(zone))
}

// zoneKey builds the composite lookup key for a directed zone pair.
func zoneKey(originZone, destinationZone string) string {
	return NormalizeZone(originZone) + "-" + NormalizeZone(destinationZone)
}

// NewZoneRateTable builds a rate table from a rate list. Later entries for
// the same zone pair win.
func NewZoneRateTable(rates []ZoneRate) *ZoneRateTable {
	m := make(map[string]ZoneRate, len(rates))
	for _, r := range rates {
		m[zoneKey(r.OriginZone, r.DestinationZone)] = r
	}
	return &ZoneRateTable{rates: m}
}

// Lookup returns the rate entry for a directed zone pair.
func (t *ZoneRateTable) Lookup(originZone, destinationZone string) (ZoneRate, bool) {
	r, ok := t.rates[zoneKey(originZone, destinationZone)]
	return r, ok
}

// Len returns the number of zone pairs in the table.
func (t *ZoneRateTable) Len() int {
	return len(t.rates)
}

// FareFromZone computes the weight-priced base fare for a cargo shipment.
// A missing zone pair returns ErrUnsupportedRoute, a distinct outcome the
// caller must surface as "use alternate carrier" rather than a zero fare.
func FareFromZone(weightKg float64, originZone, destinationZone string, class ServiceClass, table *ZoneRateTable) (Money, error) {
	if !class.IsCargo() {
		return 0, fmt.Errorf("%w: %s is not a cargo class", ErrUnknownClass, class)
	}

	tier, err := DeriveTier(weightKg)
	if err != nil {
		return 0, err
	}

	rate, ok := table.Lookup(originZone, destinationZone)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedRoute, zoneKey(originZone, destinationZone))
	}

	fare := rate.rateForTier(tier)
	if class == ClassCargoExpress {
		fare = fare.MulRatio(expressMultiplierNum, expressMultiplierDen)
	}
	return fare, nil
}
