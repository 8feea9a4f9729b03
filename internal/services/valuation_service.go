package services

import "math"

// Trade-in base values per device category (USD). Configuration, not law:
// unknown categories quote against defaultBaseValue.
var baseValues = map[string]float64{
	"smartphone": 200,
	"laptop":     300,
	"tablet":     150,
	"smartwatch": 100,
	"camera":     180,
	"other":      80,
}

const defaultBaseValue = 100

var conditionMultipliers = map[string]float64{
	"excellent": 1.0,
	"good":      0.8,
	"fair":      0.6,
	"poor":      0.4,
}

const defaultConditionMultiplier = 0.7

type ValuationService struct{}

func NewValuationService() *ValuationService { return &ValuationService{} }

// Estimate quotes a resale price for a device. It reports false until both
// category and condition are set. Unrecognized table keys fall back to
// defaults rather than failing; age is taken as-is (callers validate age >= 1)
// and its multiplier floors at 0.4 no matter how old the device is.
func (s *ValuationService) Estimate(category, condition string, age int) (int, bool) {
	if category == "" || condition == "" {
		return 0, false
	}
	base, ok := baseValues[category]
	if !ok {
		base = defaultBaseValue
	}
	mult, ok := conditionMultipliers[condition]
	if !ok {
		mult = defaultConditionMultiplier
	}
	ageMult := 1 - float64(age-1)*0.15
	if ageMult < 0.4 {
		ageMult = 0.4
	}
	return int(math.Round(base * mult * ageMult)), true
}
