// internal/handlers/errors.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/javajoker/heyi-backend/internal/catalog"
	"github.com/javajoker/heyi-backend/internal/i18n"
	"github.com/javajoker/heyi-backend/internal/logging"
	"github.com/javajoker/heyi-backend/internal/services"
	"github.com/javajoker/heyi-backend/internal/utils"
)

// respondError maps a service error onto the response envelope.
func respondError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	case errors.Is(err, catalog.ErrAssetNotFound):
		utils.NotFoundResponse(c, "asset")
	case errors.Is(err, services.ErrCreatorNotFound):
		utils.NotFoundResponse(c, "creator")
	case errors.Is(err, services.ErrNotificationNotFound):
		utils.NotFoundResponse(c, "notification")
	case errors.Is(err, services.ErrUnknownBoard):
		utils.NotFoundResponse(c, "ranking")
	case errors.Is(err, catalog.ErrInvalidAsset):
		utils.UnprocessableResponse(c, i18n.T(lang, i18n.KeyAssetInvalid, err.Error()), nil)
	case errors.Is(err, services.ErrInvalidLicenseRequest):
		utils.BadRequestResponse(c, "", err.Error())
	case errors.Is(err, services.ErrLicenseNotAvailable):
		utils.ConflictResponse(c, i18n.T(lang, i18n.KeyLicenseNotAvailable))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "REQUEST_CANCELLED", i18n.T(lang, i18n.KeyRequestCancelled), nil)
	default:
		logging.FromContext(c.Request.Context()).WithError(err).Error("Request failed")
		utils.ServiceUnavailableResponse(c, "")
	}
}
