// internal/handlers/asset.go
package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/heyi-backend/internal/catalog"
	"github.com/javajoker/heyi-backend/internal/i18n"
	"github.com/javajoker/heyi-backend/internal/models"
	"github.com/javajoker/heyi-backend/internal/services"
	"github.com/javajoker/heyi-backend/internal/utils"
)

type AssetHandler struct {
	catalogService *services.CatalogService
}

type SetListingRequest struct {
	IsListed *bool `json:"is_listed" validate:"required"`
}

func NewAssetHandler(catalogService *services.CatalogService) *AssetHandler {
	return &AssetHandler{catalogService: catalogService}
}

// GET /assets
func (h *AssetHandler) GetAssets(c *gin.Context) {
	params := services.AssetSearchParams{
		PaginationParams: utils.GetPaginationParams(c),
		Filter:           ParseFilter(c),
	}

	result, err := h.catalogService.Search(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.PaginatedResponse(c, result)
}

// ParseFilter reads the facet query parameters. Multi-select facets are
// comma separated; an unparsable price bound counts as zero.
func ParseFilter(c *gin.Context) catalog.Filter {
	filter := catalog.Filter{
		Categories:  splitList[models.Category](c.Query("category")),
		Statuses:    splitList[models.SaleMode](c.Query("status")),
		Chains:      splitList[models.Chain](c.Query("chain")),
		ScriptTypes: splitList[models.ScriptType](c.Query("script_type")),
		Search:      c.Query("search"),
	}

	if priceMin, ok := c.GetQuery("price_min"); ok && priceMin != "" {
		p := models.ParsePrice(priceMin)
		filter.PriceMin = &p
	}
	if priceMax, ok := c.GetQuery("price_max"); ok && priceMax != "" {
		p := models.ParsePrice(priceMax)
		filter.PriceMax = &p
	}

	return filter
}

func splitList[T ~string](raw string) []T {
	if raw == "" {
		return nil
	}

	var out []T
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, T(part))
		}
	}
	return out
}

func parseAssetID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "asset id"), nil)
		return 0, false
	}
	return id, true
}

// GET /assets/:id
func (h *AssetHandler) GetAsset(c *gin.Context) {
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	asset, err := h.catalogService.GetAsset(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, asset)
}

// PUT /assets/:id
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	var patch models.AssetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	asset, err := h.catalogService.UpdateAsset(c.Request.Context(), id, &patch)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAssetUpdated),
		"asset":   asset,
	})
}

// PUT /assets/:id/listing
func (h *AssetHandler) SetListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	var req SetListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	asset, err := h.catalogService.SetListed(c.Request.Context(), id, *req.IsListed)
	if err != nil {
		respondError(c, err)
		return
	}

	message := i18n.T(lang, i18n.KeyAssetUnlisted)
	if asset.IsListed {
		message = i18n.T(lang, i18n.KeyAssetListed)
	}
	utils.SuccessResponse(c, gin.H{
		"message": message,
		"asset":   asset,
	})
}

// POST /assets/:id/like
func (h *AssetHandler) LikeAsset(c *gin.Context) {
	h.like(c, 1)
}

// DELETE /assets/:id/like
func (h *AssetHandler) UnlikeAsset(c *gin.Context) {
	h.like(c, -1)
}

func (h *AssetHandler) like(c *gin.Context, delta int64) {
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	asset, err := h.catalogService.Like(c.Request.Context(), id, delta)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":    asset.ID,
		"likes": asset.Likes,
	})
}

// POST /assets/:id/view
func (h *AssetHandler) RecordView(c *gin.Context) {
	id, ok := parseAssetID(c)
	if !ok {
		return
	}

	asset, err := h.catalogService.RecordView(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"id":    asset.ID,
		"views": asset.Views,
	})
}

// GET /categories
func (h *AssetHandler) GetCategories(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"categories": h.catalogService.Categories(),
	})
}
