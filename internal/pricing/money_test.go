package pricing

import "testing"

func TestFromRupees_Rounding(t *testing.T) {
	tests := []struct {
		name   string
		rupees float64
		want   Money
	}{
		{"whole", 180, 18000},
		{"two decimals", 123.45, 12345},
		{"half rounds up", 1.005, 101},
		{"half rounds up despite float error", 2.675, 268},
		{"below half rounds down", 1.004, 100},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromRupees(tt.rupees); got != tt.want {
				t.Errorf("FromRupees(%v) = %d, want %d", tt.rupees, got, tt.want)
			}
		})
	}
}

func TestMoney_MulRatio(t *testing.T) {
	tests := []struct {
		name     string
		m        Money
		num, den int64
		want     Money
	}{
		{"even express", 18000, 3, 2, 27000},
		{"odd paise rounds up", 101, 3, 2, 152}, // 151.5 -> 152
		{"identity", 5000, 1, 1, 5000},
		{"zero", 0, 3, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulRatio(tt.num, tt.den); got != tt.want {
				t.Errorf("%d.MulRatio(%d, %d) = %d, want %d", tt.m, tt.num, tt.den, got, tt.want)
			}
		})
	}
}

func TestMoney_String(t *testing.T) {
	if got := Money(18050).String(); got != "180.50" {
		t.Errorf("String() = %q, want %q", got, "180.50")
	}
}
