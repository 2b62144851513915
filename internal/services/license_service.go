// internal/services/license_service.go
package services

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/heyi-backend/internal/catalog"
	"github.com/javajoker/heyi-backend/internal/i18n"
	"github.com/javajoker/heyi-backend/internal/logging"
	"github.com/javajoker/heyi-backend/internal/models"
	"github.com/javajoker/heyi-backend/internal/utils"
)

// LicenseService prices license requests and records simulated
// checkouts. No payment provider is involved.
type LicenseService struct {
	store               *catalog.Store
	notificationService *NotificationService
	paymentDelay        time.Duration

	mu       sync.RWMutex
	receipts []models.LicenseReceipt
	now      func() time.Time
}

type QuoteLicenseRequest struct {
	Use  models.LicenseUse  `json:"type" form:"type" validate:"required,license_use"`
	Term models.LicenseTerm `json:"duration" form:"duration" validate:"required,license_term"`
}

type CheckoutLicenseRequest struct {
	QuoteLicenseRequest
	Licensee string `json:"licensee" validate:"required,min=1,max=100"`
	Lang     string `json:"-"`
}

func NewLicenseService(store *catalog.Store, notificationService *NotificationService, paymentDelay time.Duration) *LicenseService {
	return &LicenseService{
		store:               store,
		notificationService: notificationService,
		paymentDelay:        paymentDelay,
		now:                 time.Now,
	}
}

// Quote prices a license as round(price * use multiplier * term multiplier).
func (s *LicenseService) Quote(ctx context.Context, assetID int, req *QuoteLicenseRequest) (*models.LicenseQuote, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLicenseRequest, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	asset, ok := s.store.Get(assetID)
	if !ok {
		return nil, catalog.ErrAssetNotFound
	}
	if !asset.IsListed || !asset.HasSaleMode(models.SaleModeLicense) {
		return nil, ErrLicenseNotAvailable
	}

	quote := priceLicense(asset, req.Use, req.Term)
	return &quote, nil
}

func priceLicense(asset models.Asset, use models.LicenseUse, term models.LicenseTerm) models.LicenseQuote {
	useMult, _ := models.LicenseUseMultiplier(use)
	termMult, _ := models.LicenseTermMultiplier(term)

	amount := asset.Price.Decimal().Mul(useMult).Mul(termMult).Round(0)

	currency := asset.Currency
	if currency == "" {
		currency = models.DefaultCurrency
	}

	return models.LicenseQuote{
		AssetID:  asset.ID,
		Use:      use,
		Term:     term,
		Amount:   models.NewPrice(amount),
		Currency: currency,
	}
}

// Checkout waits out the simulated payment, issues a receipt and posts a
// notification.
func (s *LicenseService) Checkout(ctx context.Context, assetID int, req *CheckoutLicenseRequest) (*models.LicenseReceipt, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLicenseRequest, err)
	}

	quote, err := s.Quote(ctx, assetID, &req.QuoteLicenseRequest)
	if err != nil {
		return nil, err
	}

	if err := simulateLatency(ctx, s.paymentDelay); err != nil {
		return nil, err
	}

	asset, ok := s.store.Get(assetID)
	if !ok {
		return nil, catalog.ErrAssetNotFound
	}

	receipt := models.LicenseReceipt{
		ID:           uuid.New(),
		Licensee:     req.Licensee,
		LicenseQuote: *quote,
		AssetTitle:   asset.Title,
		Licensor:     asset.Owner,
		IssuedAt:     s.now().UTC(),
	}

	s.mu.Lock()
	s.receipts = append(s.receipts, receipt)
	s.mu.Unlock()

	lang := req.Lang
	s.notificationService.Add(
		i18n.T(lang, i18n.KeyLicenseCheckoutSuccess),
		i18n.T(lang, i18n.KeyLicenseNotificationBody, asset.Title, models.CurrencySymbol(quote.Currency), quote.Amount.String()),
		models.NotificationTypeSuccess,
	)

	logging.FromContext(ctx).WithFields(logrus.Fields{
		"receipt_id": receipt.ID,
		"asset_id":   assetID,
		"use":        quote.Use,
		"term":       quote.Term,
		"amount":     quote.Amount.String(),
	}).Info("License issued")

	return &receipt, nil
}

// Receipts lists issued licenses, oldest first.
func (s *LicenseService) Receipts() []models.LicenseReceipt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.receipts)
}
