package models

import (
	"strings"

	apperrors "nestegg/internal/errors"
)

// InvestmentKind identifies what sort of holding an investment is.
// Persisted as the literal strings below.
type InvestmentKind string

const (
	KindSavingsAccount InvestmentKind = "savingsAccount"
	KindStocks         InvestmentKind = "stocks"
	KindBonds          InvestmentKind = "bonds"
)

// Valid reports whether k is a known investment kind.
func (k InvestmentKind) Valid() bool {
	switch k {
	case KindSavingsAccount, KindStocks, KindBonds:
		return true
	}
	return false
}

// CompoundingPolicy is the number of times per year interest is credited.
// Persisted as its numeric periods-per-year value.
type CompoundingPolicy int

const (
	CompoundAnnual     CompoundingPolicy = 1
	CompoundSemiAnnual CompoundingPolicy = 2
	CompoundQuarterly  CompoundingPolicy = 4
	CompoundMonthly    CompoundingPolicy = 12
)

// Valid reports whether p is a known compounding policy.
func (p CompoundingPolicy) Valid() bool {
	switch p {
	case CompoundAnnual, CompoundSemiAnnual, CompoundQuarterly, CompoundMonthly:
		return true
	}
	return false
}

// MaxYears is the upper bound on an investment's projection horizon.
const MaxYears = 50

// Investment is a single financial holding owned by one user.
type Investment struct {
	Base
	UserID              string            `gorm:"type:uuid;not null;index" json:"user_id"`
	Name                string            `gorm:"not null" json:"name"`
	InitialAmount       float64           `gorm:"not null" json:"initial_amount"`
	InterestRate        float64           `json:"interest_rate"`
	Years               int               `gorm:"not null" json:"years"`
	Kind                InvestmentKind    `gorm:"not null" json:"kind"`
	MonthlyContribution *float64          `json:"monthly_contribution,omitempty"`
	CompoundingPolicy   CompoundingPolicy `gorm:"not null" json:"compounding_policy"`
	SelectedSymbol      string            `json:"selected_symbol,omitempty"`
}

// Normalize trims the name and applies kind-dependent defaults: stock
// positions always compound annually and only stock positions carry a
// symbol.
func (inv *Investment) Normalize() {
	inv.Name = strings.TrimSpace(inv.Name)
	inv.SelectedSymbol = strings.TrimSpace(inv.SelectedSymbol)
	if inv.Kind == KindStocks {
		inv.CompoundingPolicy = CompoundAnnual
	} else {
		inv.SelectedSymbol = ""
	}
}

// Validate checks the entity invariants. It must pass before the record is
// handed to storage or to the valuation engine.
func (inv *Investment) Validate() error {
	if !inv.Kind.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown investment kind")
	}
	if strings.TrimSpace(inv.Name) == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "name must not be empty")
	}
	if inv.InitialAmount <= 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "initial amount must be positive")
	}
	if inv.Years < 1 || inv.Years > MaxYears {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "years must be between 1 and 50")
	}
	if inv.InterestRate <= 0 && inv.Kind != KindStocks {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate must be positive")
	}
	if inv.InterestRate < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "interest rate must not be negative")
	}
	if inv.MonthlyContribution != nil && *inv.MonthlyContribution < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly contribution must not be negative")
	}
	if !inv.CompoundingPolicy.Valid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown compounding policy")
	}
	if inv.Kind == KindStocks {
		if inv.SelectedSymbol == "" {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "stock investments require a symbol")
		}
		if inv.CompoundingPolicy != CompoundAnnual {
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "stock investments compound annually")
		}
	}
	return nil
}
