package domain

import "math"

// Pricing is the commercial breakdown stored on a shipment.
// Total is always BasePrice + Tax; the three fields are written together by
// NewPricing and never patched individually.
type Pricing struct {
	BasePrice float64 `json:"base_price" bson:"base_price"`
	Tax       float64 `json:"tax" bson:"tax"`
	Total     float64 `json:"total" bson:"total"`
}

const (
	baseRate   = 5.00
	weightRate = 2.50
	taxRate    = 0.18 // GST
)

// serviceMultipliers maps each tier to its price multiplier.
var serviceMultipliers = map[ServiceType]float64{
	ServiceStandard:  1.0,
	ServiceExpress:   1.5,
	ServiceOvernight: 2.0,
}

// Cost returns the shipping cost for the given weight and service tier,
// rounded to two decimals. Pure and deterministic: it is used both at
// quote time and at creation, and the two must agree.
func Cost(weight float64, serviceType ServiceType) float64 {
	mult, ok := serviceMultipliers[serviceType]
	if !ok {
		mult = serviceMultipliers[ServiceStandard]
	}
	return round2((baseRate + weight*weightRate) * mult)
}

// NewPricing builds the full pricing breakdown for a shipment.
func NewPricing(weight float64, serviceType ServiceType) Pricing {
	base := Cost(weight, serviceType)
	tax := round2(base * taxRate)
	return Pricing{
		BasePrice: base,
		Tax:       tax,
		Total:     round2(base + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
