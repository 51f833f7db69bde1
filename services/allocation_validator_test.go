package services_test

import (
	"testing"

	"github.com/pmhours/pmhours-go/services"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestValidateAllocation(t *testing.T) {
	cases := []struct {
		name       string
		total      string
		others     string
		proposed   string
		wantValid bool
		wantMax   string
	}{
		{"within budget", "100", "30", "50", true, "70"},
		{"exactly at ceiling", "100", "30", "70", true, "70"},
		{"just over ceiling", "100", "30", "70.01", false, "70"},
		{"zero proposed", "100", "30", "0", true, "70"},
		{"negative proposed", "100", "30", "-1", false, "70"},
		{"ceiling consumed", "100", "100", "0", true, "0"},
		{"over-allocated only zero admissible", "100", "110", "0", true, "-10"},
		{"over-allocated positive rejected", "100", "110", "0.5", false, "-10"},
		{"fractional boundary", "40", "39.75", "0.25", true, "0.25"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := services.ValidateAllocation(dec(tc.total), dec(tc.others), dec(tc.proposed))
			if got.Valid != tc.wantValid {
				t.Fatalf("valid: expected %v, got %v", tc.wantValid, got.Valid)
			}
			if !got.MaxAllowed.Equal(dec(tc.wantMax)) {
				t.Fatalf("max_allowed: expected %s, got %s", tc.wantMax, got.MaxAllowed)
			}
		})
	}
}
