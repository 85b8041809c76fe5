package pricing

import (
	"errors"
	"testing"
)

func testTable() *ZoneRateTable {
	return NewZoneRateTable([]ZoneRate{
		{
			OriginZone:      "110001",
			DestinationZone: "700001",
			UpTo1kg:         FromRupees(100),
			UpTo5kg:         FromRupees(180),
			Above5kg:        FromRupees(300),
		},
		{
			OriginZone:      "400001",
			DestinationZone: "560001",
			UpTo1kg:         FromRupees(120),
			UpTo5kg:         FromRupees(210),
			Above5kg:        FromRupees(350),
		},
	})
}

func TestDeriveTier(t *testing.T) {
	tests := []struct {
		weightKg float64
		want     WeightTier
	}{
		{0.2, TierUpTo1kg},
		{1, TierUpTo1kg},
		{1.01, TierUpTo5kg},
		{3, TierUpTo5kg},
		{5, TierUpTo5kg},
		{5.01, TierAbove5kg},
		{40, TierAbove5kg},
	}

	for _, tt := range tests {
		got, err := DeriveTier(tt.weightKg)
		if err != nil {
			t.Fatalf("DeriveTier(%v): unexpected error %v", tt.weightKg, err)
		}
		if got != tt.want {
			t.Errorf("DeriveTier(%v) = %s, want %s", tt.weightKg, got, tt.want)
		}
	}
}

func TestDeriveTier_Monotonic(t *testing.T) {
	var prev WeightTier
	for w := 0.1; w <= 20; w += 0.1 {
		tier, err := DeriveTier(w)
		if err != nil {
			t.Fatalf("unexpected error at %v: %v", w, err)
		}
		if tier < prev {
			t.Fatalf("tier decreased from %s to %s at %vkg", prev, tier, w)
		}
		prev = tier
	}
}

func TestDeriveTier_InvalidWeight(t *testing.T) {
	for _, w := range []float64{0, -1} {
		if _, err := DeriveTier(w); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("DeriveTier(%v): expected ErrInvalidWeight, got %v", w, err)
		}
	}
}

func TestFareFromZone(t *testing.T) {
	table := testTable()

	tests := []struct {
		name     string
		weightKg float64
		origin   string
		dest     string
		class    ServiceClass
		want     Money
	}{
		{"standard mid tier", 3, "110001", "700001", ClassCargoStandard, FromRupees(180)},
		{"express mid tier", 3, "110001", "700001", ClassCargoExpress, FromRupees(270)},
		{"light tier boundary", 1, "110001", "700001", ClassCargoStandard, FromRupees(100)},
		{"heavy tier", 12, "110001", "700001", ClassCargoStandard, FromRupees(300)},
		{"express heavy tier", 12, "400001", "560001", ClassCargoExpress, FromRupees(525)},
		{"zones normalized at lookup", 3, " 110001 ", "700001", ClassCargoStandard, FromRupees(180)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FareFromZone(tt.weightKg, tt.origin, tt.dest, tt.class, table)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FareFromZone = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFareFromZone_UnsupportedRoute(t *testing.T) {
	table := testTable()

	fare, err := FareFromZone(3, "110001", "999999", ClassCargoStandard, table)
	if !errors.Is(err, ErrUnsupportedRoute) {
		t.Fatalf("expected ErrUnsupportedRoute, got %v", err)
	}
	if fare != 0 {
		t.Errorf("unsupported route must not produce a fare, got %s", fare)
	}

	// Reversed direction has no entry either; lookups are directed.
	if _, err := FareFromZone(3, "700001", "110001", ClassCargoStandard, table); !errors.Is(err, ErrUnsupportedRoute) {
		t.Fatalf("expected ErrUnsupportedRoute for reversed pair, got %v", err)
	}
}

func TestFareFromZone_InvalidInput(t *testing.T) {
	table := testTable()

	if _, err := FareFromZone(0, "110001", "700001", ClassCargoStandard, table); !errors.Is(err, ErrInvalidWeight) {
		t.Errorf("expected ErrInvalidWeight, got %v", err)
	}

	if _, err := FareFromZone(3, "110001", "700001", ClassTwoWheeler, table); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("expected ErrUnknownClass for non-cargo class, got %v", err)
	}
}

func TestNewZoneRateTable_NormalizesKeys(t *testing.T) {
	table := NewZoneRateTable([]ZoneRate{
		{OriginZone: " ggn ", DestinationZone: "blr", UpTo1kg: 100, UpTo5kg: 200, Above5kg: 300},
	})

	if _, ok := table.Lookup("GGN", "BLR"); !ok {
		t.Error("expected lookup to succeed on normalized key")
	}
	if _, ok := table.Lookup("ggn", " BLR "); !ok {
		t.Error("expected lookup normalization to match build normalization")
	}
}
