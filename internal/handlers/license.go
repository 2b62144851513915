// internal/handlers/license.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/heyi-backend/internal/i18n"
	"github.com/javajoker/heyi-backend/internal/services"
	"github.com/javajoker/heyi-backend/internal/utils"
)

type LicenseHandler struct {
	licenseService *services.LicenseService
}

func NewLicenseHandler(licenseService *services.LicenseService) *LicenseHandler {
	return &LicenseHandler{
		licenseService: licenseService,
	}
}

// GET /assets/:id/license/quote?type=&duration=
func (h *LicenseHandler) QuoteLicense(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	var req services.QuoteLicenseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "query"), err.Error())
		return
	}

	quote, err := h.licenseService.Quote(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, quote)
}

// POST /assets/:id/license/checkout
func (h *LicenseHandler) CheckoutLicense(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	var req services.CheckoutLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}
	req.Lang = lang

	receipt, err := h.licenseService.Checkout(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyLicenseCheckoutSuccess),
		"receipt": receipt,
	})
}
