package models

import "testing"

func validSavings() *Investment {
	return &Investment{
		Name:              "Emergency Fund",
		InitialAmount:     5000,
		InterestRate:      3.5,
		Years:             10,
		Kind:              KindSavingsAccount,
		CompoundingPolicy: CompoundMonthly,
	}
}

func TestInvestmentValidate(t *testing.T) {
	t.Run("valid_savings", func(t *testing.T) {
		if err := validSavings().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("blank_name", func(t *testing.T) {
		inv := validSavings()
		inv.Name = "   "
		if err := inv.Validate(); err == nil {
			t.Error("expected error for blank name")
		}
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		inv := validSavings()
		inv.InitialAmount = 0
		if err := inv.Validate(); err == nil {
			t.Error("expected error for zero amount")
		}
	})

	t.Run("years_out_of_range", func(t *testing.T) {
		for _, years := range []int{0, -1, MaxYears + 1} {
			inv := validSavings()
			inv.Years = years
			if err := inv.Validate(); err == nil {
				t.Errorf("expected error for years=%d", years)
			}
		}
	})

	t.Run("zero_rate_savings", func(t *testing.T) {
		inv := validSavings()
		inv.InterestRate = 0
		if err := inv.Validate(); err == nil {
			t.Error("expected error for zero rate on savings")
		}
	})

	t.Run("zero_rate_stocks_allowed", func(t *testing.T) {
		inv := &Investment{
			Name:              "Index",
			InitialAmount:     1000,
			InterestRate:      0,
			Years:             5,
			Kind:              KindStocks,
			CompoundingPolicy: CompoundAnnual,
			SelectedSymbol:    "VOO",
		}
		if err := inv.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("negative_contribution", func(t *testing.T) {
		inv := validSavings()
		contrib := -10.0
		inv.MonthlyContribution = &contrib
		if err := inv.Validate(); err == nil {
			t.Error("expected error for negative contribution")
		}
	})

	t.Run("stock_without_symbol", func(t *testing.T) {
		inv := validSavings()
		inv.Kind = KindStocks
		inv.CompoundingPolicy = CompoundAnnual
		if err := inv.Validate(); err == nil {
			t.Error("expected error for stock without symbol")
		}
	})

	t.Run("unknown_kind", func(t *testing.T) {
		inv := validSavings()
		inv.Kind = InvestmentKind("crypto")
		if err := inv.Validate(); err == nil {
			t.Error("expected error for unknown kind")
		}
	})

	t.Run("unknown_policy", func(t *testing.T) {
		inv := validSavings()
		inv.CompoundingPolicy = CompoundingPolicy(7)
		if err := inv.Validate(); err == nil {
			t.Error("expected error for unknown compounding policy")
		}
	})
}

func TestInvestmentNormalize(t *testing.T) {
	t.Run("stock_forced_annual", func(t *testing.T) {
		for _, policy := range []CompoundingPolicy{CompoundMonthly, CompoundQuarterly, CompoundSemiAnnual, CompoundAnnual} {
			inv := &Investment{
				Name:              "Index",
				InitialAmount:     1000,
				InterestRate:      7,
				Years:             5,
				Kind:              KindStocks,
				CompoundingPolicy: policy,
				SelectedSymbol:    "VOO",
			}
			inv.Normalize()
			if inv.CompoundingPolicy != CompoundAnnual {
				t.Errorf("policy %d: expected stocks to normalize to annual, got %d", policy, inv.CompoundingPolicy)
			}
			if err := inv.Validate(); err != nil {
				t.Errorf("policy %d: unexpected error after normalize: %v", policy, err)
			}
		}
	})

	t.Run("non_stock_symbol_cleared", func(t *testing.T) {
		inv := validSavings()
		inv.SelectedSymbol = "AAPL"
		inv.Normalize()
		if inv.SelectedSymbol != "" {
			t.Errorf("expected symbol cleared for savings, got %q", inv.SelectedSymbol)
		}
	})

	t.Run("name_trimmed", func(t *testing.T) {
		inv := validSavings()
		inv.Name = "  Emergency Fund  "
		inv.Normalize()
		if inv.Name != "Emergency Fund" {
			t.Errorf("expected trimmed name, got %q", inv.Name)
		}
	})
}
