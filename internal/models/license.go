// internal/models/license.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LicenseQuote struct {
	AssetID  int         `json:"asset_id"`
	Use      LicenseUse  `json:"use"`
	Term     LicenseTerm `json:"term"`
	Amount   Price       `json:"amount"`
	Currency string      `json:"currency"`
}

// LicenseReceipt records a simulated license checkout. No money moves.
type LicenseReceipt struct {
	ID       uuid.UUID `json:"id"`
	Licensee string    `json:"licensee"`
	LicenseQuote
	AssetTitle string    `json:"asset_title"`
	Licensor   string    `json:"licensor"`
	IssuedAt   time.Time `json:"issued_at"`
}

var (
	useMultipliers = map[LicenseUse]decimal.Decimal{
		LicenseUsePersonal:     decimal.NewFromInt(1),
		LicenseUseCommercial:   decimal.NewFromInt(5),
		LicenseUseModification: decimal.NewFromInt(8),
	}
	termMultipliers = map[LicenseTerm]decimal.Decimal{
		LicenseTermOneYear:    decimal.RequireFromString("0.3"),
		LicenseTermThreeYears: decimal.RequireFromString("0.7"),
		LicenseTermPermanent:  decimal.NewFromInt(1),
	}
)

func LicenseUseMultiplier(use LicenseUse) (decimal.Decimal, bool) {
	m, ok := useMultipliers[use]
	return m, ok
}

func LicenseTermMultiplier(term LicenseTerm) (decimal.Decimal, bool) {
	m, ok := termMultipliers[term]
	return m, ok
}
