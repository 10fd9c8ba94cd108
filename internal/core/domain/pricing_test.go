package domain

import (
	"math"
	"testing"
)

func TestCost_TierMultipliers(t *testing.T) {
	cases := []struct {
		weight      float64
		serviceType ServiceType
		want        float64
	}{
		{1.0, ServiceStandard, 7.50},   // (5 + 2.5) * 1.0
		{1.0, ServiceExpress, 11.25},   // (5 + 2.5) * 1.5
		{1.0, ServiceOvernight, 15.00}, // (5 + 2.5) * 2.0
		{2.5, ServiceExpress, 16.88},   // (5 + 6.25) * 1.5 = 16.875, rounded
		{0.5, ServiceStandard, 6.25},
		{10, ServiceOvernight, 60.00},
	}
	for _, tc := range cases {
		got := Cost(tc.weight, tc.serviceType)
		if got != tc.want {
			t.Errorf("Cost(%v, %s) = %v, want %v", tc.weight, tc.serviceType, got, tc.want)
		}
	}
}

func TestCost_UnknownTierFallsBackToStandard(t *testing.T) {
	if got, want := Cost(1.0, ServiceType("carrier_pigeon")), 7.50; got != want {
		t.Errorf("unknown tier: got %v, want %v", got, want)
	}
}

func TestNewPricing_Breakdown(t *testing.T) {
	// weight 2.5kg express: base (5 + 2.5*2.5) * 1.5 = 16.875 -> 16.88
	p := NewPricing(2.5, ServiceExpress)
	if p.BasePrice != 16.88 {
		t.Errorf("base price = %v, want 16.88", p.BasePrice)
	}
	if p.Tax != 3.04 { // 16.88 * 0.18 = 3.0384
		t.Errorf("tax = %v, want 3.04", p.Tax)
	}
	if p.Total != 19.92 {
		t.Errorf("total = %v, want 19.92", p.Total)
	}
}

func TestNewPricing_TotalIsBasePlusTax(t *testing.T) {
	weights := []float64{0.1, 0.5, 1, 2.5, 7.3, 12, 48.9}
	tiers := []ServiceType{ServiceStandard, ServiceExpress, ServiceOvernight}
	for _, w := range weights {
		for _, tier := range tiers {
			p := NewPricing(w, tier)
			if diff := math.Abs(p.Total - round2(p.BasePrice+p.Tax)); diff > 1e-9 {
				t.Errorf("weight=%v tier=%s: total %v != base %v + tax %v", w, tier, p.Total, p.BasePrice, p.Tax)
			}
		}
	}
}

func TestCost_MonotonicInWeight(t *testing.T) {
	prev := 0.0
	for w := 0.5; w <= 50; w += 0.5 {
		cost := Cost(w, ServiceStandard)
		if cost <= prev {
			t.Fatalf("cost must grow with weight: Cost(%v)=%v <= %v", w, cost, prev)
		}
		prev = cost
	}
}
