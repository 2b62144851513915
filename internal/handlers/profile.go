// internal/handlers/profile.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/heyi-backend/internal/services"
	"github.com/javajoker/heyi-backend/internal/utils"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GET /creators/:name
func (h *ProfileHandler) GetCreator(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}
