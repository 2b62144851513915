// internal/models/asset.go
package models

import (
	"errors"
	"fmt"
	"slices"
)

type Property struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type PricePoint struct {
	Date  string `json:"date"`
	Price Price  `json:"price"`
}

type AuctionSettings struct {
	StartPrice   Price  `json:"start_price"`
	ReservePrice *Price `json:"reserve_price,omitempty"`
	Duration     string `json:"duration"` // days
	StartTime    string `json:"start_time,omitempty"`
}

type LeaseSettings struct {
	Price    Price  `json:"price"`
	Duration string `json:"duration"` // months
}

type Asset struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Collection  string     `json:"collection,omitempty"`
	Author      string     `json:"author"`
	Owner       string     `json:"owner"`
	Description string     `json:"description"`
	Category    Category   `json:"category"`
	ScriptType  ScriptType `json:"script_type,omitempty"`
	Chain       Chain      `json:"chain,omitempty"`

	Price                   Price           `json:"price"`
	Currency                string          `json:"currency"`
	SalesModes              []SaleMode      `json:"sales_modes"`
	LicenseTypes            []LicenseType   `json:"license_types"`
	AuctionSettings         AuctionSettings `json:"auction_settings"`
	LeaseSettings           LeaseSettings   `json:"lease_settings"`
	IsFullCopyrightTransfer bool            `json:"is_full_copyright_transfer"`
	IsListed                bool            `json:"is_listed"`

	Views int64 `json:"views"`
	Likes int64 `json:"likes"`

	ImageColor   string       `json:"image_color,omitempty"`
	ImageURL     string       `json:"image_url,omitempty"`
	Properties   []Property   `json:"properties,omitempty"`
	PriceHistory []PricePoint `json:"price_history,omitempty"`
}

func (a *Asset) HasSaleMode(mode SaleMode) bool {
	return slices.Contains(a.SalesModes, mode)
}

// HeatScore weighs a like as ten views.
func (a *Asset) HeatScore() int64 {
	return a.Views + a.Likes*10
}

// Clone copies the asset including its slices so callers can mutate freely.
func (a Asset) Clone() Asset {
	a.SalesModes = slices.Clone(a.SalesModes)
	a.LicenseTypes = slices.Clone(a.LicenseTypes)
	a.Properties = slices.Clone(a.Properties)
	a.PriceHistory = slices.Clone(a.PriceHistory)
	if a.AuctionSettings.ReservePrice != nil {
		reserve := *a.AuctionSettings.ReservePrice
		a.AuctionSettings.ReservePrice = &reserve
	}
	return a
}

var (
	errMissingID        = errors.New("id must be positive")
	errNoSalesModes     = errors.New("a listed asset needs at least one sales mode")
	errNegativeCounters = errors.New("views and likes must be non-negative")
)

// Validate checks the invariants a stored asset must hold.
func (a *Asset) Validate() error {
	if a.ID <= 0 {
		return errMissingID
	}
	if !a.Category.Valid() {
		return fmt.Errorf("unknown category %q", a.Category)
	}
	if a.ScriptType != "" {
		if !a.ScriptType.Valid() {
			return fmt.Errorf("unknown script type %q", a.ScriptType)
		}
		if a.Category != CategoryLiterature {
			return fmt.Errorf("script type is only allowed on literature, got %q", a.Category)
		}
	}
	if a.Chain != "" && !a.Chain.Valid() {
		return fmt.Errorf("unknown chain %q", a.Chain)
	}
	for _, mode := range a.SalesModes {
		if !mode.Valid() {
			return fmt.Errorf("unknown sales mode %q", mode)
		}
	}
	if a.IsListed && len(a.SalesModes) == 0 {
		return errNoSalesModes
	}
	for _, lt := range a.LicenseTypes {
		if !lt.Valid() {
			return fmt.Errorf("unknown license type %q", lt)
		}
	}
	if a.Views < 0 || a.Likes < 0 {
		return errNegativeCounters
	}
	return nil
}

// AssetPatch carries the fields of an upsert. A nil field is left untouched;
// a set field replaces the stored value wholesale, nested settings included.
type AssetPatch struct {
	ID          int         `json:"id" validate:"required,min=1"`
	Title       *string     `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Collection  *string     `json:"collection,omitempty" validate:"omitempty,max=255"`
	Author      *string     `json:"author,omitempty" validate:"omitempty,min=1,max=100"`
	Owner       *string     `json:"owner,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string     `json:"description,omitempty"`
	Category    *Category   `json:"category,omitempty" validate:"omitempty,category"`
	ScriptType  *ScriptType `json:"script_type,omitempty" validate:"omitempty,script_type"`
	Chain       *Chain      `json:"chain,omitempty" validate:"omitempty,chain"`

	Price                   *Price           `json:"price,omitempty"`
	Currency                *string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	SalesModes              *[]SaleMode      `json:"sales_modes,omitempty" validate:"omitempty,dive,sale_mode"`
	LicenseTypes            *[]LicenseType   `json:"license_types,omitempty"`
	AuctionSettings         *AuctionSettings `json:"auction_settings,omitempty"`
	LeaseSettings           *LeaseSettings   `json:"lease_settings,omitempty"`
	IsFullCopyrightTransfer *bool            `json:"is_full_copyright_transfer,omitempty"`
	IsListed                *bool            `json:"is_listed,omitempty"`

	Views *int64 `json:"views,omitempty" validate:"omitempty,min=0"`
	Likes *int64 `json:"likes,omitempty" validate:"omitempty,min=0"`

	ImageColor   *string       `json:"image_color,omitempty"`
	ImageURL     *string       `json:"image_url,omitempty"`
	Properties   *[]Property   `json:"properties,omitempty"`
	PriceHistory *[]PricePoint `json:"price_history,omitempty"`
}

// PatchFromAsset builds a patch that overwrites every field of a.
func PatchFromAsset(a Asset) AssetPatch {
	a = a.Clone()
	return AssetPatch{
		ID:                      a.ID,
		Title:                   &a.Title,
		Collection:              &a.Collection,
		Author:                  &a.Author,
		Owner:                   &a.Owner,
		Description:             &a.Description,
		Category:                &a.Category,
		ScriptType:              &a.ScriptType,
		Chain:                   &a.Chain,
		Price:                   &a.Price,
		Currency:                &a.Currency,
		SalesModes:              &a.SalesModes,
		LicenseTypes:            &a.LicenseTypes,
		AuctionSettings:         &a.AuctionSettings,
		LeaseSettings:           &a.LeaseSettings,
		IsFullCopyrightTransfer: &a.IsFullCopyrightTransfer,
		IsListed:                &a.IsListed,
		Views:                   &a.Views,
		Likes:                   &a.Likes,
		ImageColor:              &a.ImageColor,
		ImageURL:                &a.ImageURL,
		Properties:              &a.Properties,
		PriceHistory:            &a.PriceHistory,
	}
}

// ApplyTo overwrites the fields set on the patch. The ID is not touched.
func (p *AssetPatch) ApplyTo(a *Asset) {
	setIf(&a.Title, p.Title)
	setIf(&a.Collection, p.Collection)
	setIf(&a.Author, p.Author)
	setIf(&a.Owner, p.Owner)
	setIf(&a.Description, p.Description)
	setIf(&a.Category, p.Category)
	setIf(&a.ScriptType, p.ScriptType)
	setIf(&a.Chain, p.Chain)
	setIf(&a.Price, p.Price)
	setIf(&a.Currency, p.Currency)
	if p.SalesModes != nil {
		a.SalesModes = slices.Clone(*p.SalesModes)
	}
	if p.LicenseTypes != nil {
		a.LicenseTypes = slices.Clone(*p.LicenseTypes)
	}
	if p.AuctionSettings != nil {
		settings := *p.AuctionSettings
		if settings.ReservePrice != nil {
			reserve := *settings.ReservePrice
			settings.ReservePrice = &reserve
		}
		a.AuctionSettings = settings
	}
	setIf(&a.LeaseSettings, p.LeaseSettings)
	setIf(&a.IsFullCopyrightTransfer, p.IsFullCopyrightTransfer)
	setIf(&a.IsListed, p.IsListed)
	setIf(&a.Views, p.Views)
	setIf(&a.Likes, p.Likes)
	setIf(&a.ImageColor, p.ImageColor)
	setIf(&a.ImageURL, p.ImageURL)
	if p.Properties != nil {
		a.Properties = slices.Clone(*p.Properties)
	}
	if p.PriceHistory != nil {
		a.PriceHistory = slices.Clone(*p.PriceHistory)
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
