package pricing

import (
	"errors"
	"testing"
)

func TestFareFromDistance(t *testing.T) {
	rates := DefaultDistanceRates()

	tests := []struct {
		name           string
		distanceMeters float64
		class          ServiceClass
		want           Money
	}{
		{"zero distance prices at minimum", 0, ClassTwoWheeler, 3000},
		{"negative distance prices at minimum", -500, ClassTwoWheeler, 3000},
		{"within included distance", 2000, ClassTwoWheeler, 3000},
		{"exactly at included distance", 3000, ClassTwoWheeler, 3000},
		{"beyond included distance", 8000, ClassTwoWheeler, 8000},       // 30 + 5*10
		{"fractional km rounds half-up", 3050, ClassTwoWheeler, 3050},   // 30 + 0.05*10 = 30.50
		{"light vehicle curve", 10000, ClassLightVehicle, 27000},        // 120 + 6*25
		{"light vehicle short trip", 1000, ClassLightVehicle, 12000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FareFromDistance(tt.distanceMeters, tt.class, rates)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FareFromDistance(%v, %s) = %s, want %s", tt.distanceMeters, tt.class, got, tt.want)
			}
		})
	}
}

func TestFareFromDistance_UnknownClass(t *testing.T) {
	_, err := FareFromDistance(5000, ClassCargoStandard, DefaultDistanceRates())
	if !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("expected ErrUnknownClass, got %v", err)
	}
}

func TestFareFromDistance_Monotonic(t *testing.T) {
	rates := DefaultDistanceRates()

	for _, class := range []ServiceClass{ClassTwoWheeler, ClassLightVehicle} {
		var prev Money
		for meters := 0.0; meters <= 50000; meters += 250 {
			fare, err := FareFromDistance(meters, class, rates)
			if err != nil {
				t.Fatalf("unexpected error at %v: %v", meters, err)
			}
			if fare < prev {
				t.Fatalf("%s: fare decreased from %s to %s at %vm", class, prev, fare, meters)
			}
			if fare <= 0 {
				t.Fatalf("%s: fare must be positive, got %s at %vm", class, fare, meters)
			}
			prev = fare
		}
	}
}
