package toolsService

import (
	"camonk/internal/api/tools"
	"math"
	"strconv"
	"strings"
)

const (
	exemptionLimit = 500_000.0
	lowerSlabLimit = 1_000_000.0
	lowerSlabRate  = 0.10
	upperSlabRate  = 0.20
)

// CalculateIncomeTax applies the three slabs: nothing up to 5 lakh, 10% of the amount between
// 5 and 10 lakh, and 20% above 10 lakh on top of the 50,000 owed for the middle slab.
func (s *toolsService) CalculateIncomeTax(income float64) (float64, error) {
	if math.IsNaN(income) || math.IsInf(income, 0) || income < 0 {
		return 0, tools.ErrInvalidIncome
	}

	switch {
	case income <= exemptionLimit:
		return 0, nil
	case income <= lowerSlabLimit:
		return (income - exemptionLimit) * lowerSlabRate, nil
	default:
		middle := (lowerSlabLimit - exemptionLimit) * lowerSlabRate
		return middle + (income-lowerSlabLimit)*upperSlabRate, nil
	}
}

// ParseIncome accepts plain or grouped numbers ("1200000", "12,00,000").
func (s *toolsService) ParseIncome(raw string) (float64, error) {
	cleaned := strings.NewReplacer(",", "", " ", "", "₹", "").Replace(raw)
	if cleaned == "" {
		return 0, tools.ErrInvalidIncome
	}

	income, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(income) || math.IsInf(income, 0) || income < 0 {
		return 0, tools.ErrInvalidIncome
	}
	return income, nil
}

func (s *toolsService) FormatRupees(amount float64) string {
	return s.utils.FormatRupees(amount)
}
