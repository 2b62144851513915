// internal/handlers/ranking.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/heyi-backend/internal/services"
	"github.com/javajoker/heyi-backend/internal/utils"
)

type RankingHandler struct {
	rankingService *services.RankingService
}

func NewRankingHandler(rankingService *services.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

// A missing or malformed limit returns every entry.
func rankingLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// GET /rankings
func (h *RankingHandler) GetRankings(c *gin.Context) {
	rankings, err := h.rankingService.All(c.Request.Context(), rankingLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, rankings)
}

// GET /rankings/:board
func (h *RankingHandler) GetBoard(c *gin.Context) {
	board := c.Param("board")

	entries, err := h.rankingService.Board(c.Request.Context(), board, rankingLimit(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"board":   board,
		"entries": entries,
	})
}
