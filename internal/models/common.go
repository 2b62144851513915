// internal/models/common.go
package models

// Enums
type Category string

const (
	CategoryImage      Category = "image"
	CategoryMusic      Category = "music"
	CategoryVideo      Category = "video"
	CategoryLiterature Category = "literature"
)

var Categories = []Category{CategoryImage, CategoryMusic, CategoryVideo, CategoryLiterature}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type ScriptType string

const (
	ScriptTypeShortDrama ScriptType = "short-drama"
	ScriptTypeLongDrama  ScriptType = "long-drama"
	ScriptTypeUnitSeries ScriptType = "unit-series"
)

var ScriptTypes = []ScriptType{ScriptTypeShortDrama, ScriptTypeLongDrama, ScriptTypeUnitSeries}

func (s ScriptType) Valid() bool {
	for _, v := range ScriptTypes {
		if s == v {
			return true
		}
	}
	return false
}

type SaleMode string

const (
	SaleModeDirect  SaleMode = "direct"
	SaleModeLicense SaleMode = "license"
	SaleModeAuction SaleMode = "auction"
	SaleModeLease   SaleMode = "lease"
)

var SaleModes = []SaleMode{SaleModeDirect, SaleModeLicense, SaleModeAuction, SaleModeLease}

func (m SaleMode) Valid() bool {
	for _, v := range SaleModes {
		if m == v {
			return true
		}
	}
	return false
}

type Chain string

const (
	ChainHarmony Chain = "Harmony"
	ChainPolygon Chain = "Polygon"
)

var Chains = []Chain{ChainHarmony, ChainPolygon}

func (c Chain) Valid() bool {
	return c == ChainHarmony || c == ChainPolygon
}

// LicenseType is a usage right an asset offers under the license sale mode.
type LicenseType string

const (
	LicenseTypePersonal   LicenseType = "personal"
	LicenseTypeCommercial LicenseType = "commercial"
	LicenseTypeCopyright  LicenseType = "copyright"
	LicenseTypeExclusive  LicenseType = "exclusive"
)

var LicenseTypes = []LicenseType{LicenseTypePersonal, LicenseTypeCommercial, LicenseTypeCopyright, LicenseTypeExclusive}

func (l LicenseType) Valid() bool {
	for _, v := range LicenseTypes {
		if l == v {
			return true
		}
	}
	return false
}

// LicenseUse and LicenseTerm drive license checkout pricing.
type LicenseUse string

const (
	LicenseUsePersonal     LicenseUse = "personal"
	LicenseUseCommercial   LicenseUse = "commercial"
	LicenseUseModification LicenseUse = "modification"
)

type LicenseTerm string

const (
	LicenseTermOneYear    LicenseTerm = "1year"
	LicenseTermThreeYears LicenseTerm = "3years"
	LicenseTermPermanent  LicenseTerm = "permanent"
)

type NotificationType string

const (
	NotificationTypeSuccess NotificationType = "success"
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypePrimary NotificationType = "primary"
)

const DefaultCurrency = "CNY"

var currencySymbols = map[string]string{
	"CNY": "¥",
	"USD": "$",
	"EUR": "€",
}

// CurrencySymbol returns the display prefix for an ISO currency code.
func CurrencySymbol(code string) string {
	if code == "" {
		code = DefaultCurrency
	}
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code + " "
}
