package controllers

import (
	"net/http"

	"github.com/Aalzard/DRUNKPENGUINS/api/models"
	"github.com/Aalzard/DRUNKPENGUINS/catalog"
	"github.com/Aalzard/DRUNKPENGUINS/verdict"
	"github.com/gin-gonic/gin"
)

type VerdictController struct {
	store    *catalog.Store
	verdicts *verdict.Client
}

func NewVerdictController(store *catalog.Store, verdicts *verdict.Client) *VerdictController {
	return &VerdictController{
		store:    store,
		verdicts: verdicts,
	}
}

func (c *VerdictController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.POST("/games/:id/verdict", c.generateVerdict)
	group.POST("/games/describe", c.describeGame)
}

// generateVerdict godoc
// @Summary Generate the squad verdict for a game
// @Description Best-effort prose summary of the game's ratings. Always returns 200 with a non-empty text; external failures degrade to a fallback message.
// @Tags verdict
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.VerdictResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/games/{id}/verdict [post]
func (c *VerdictController) generateVerdict(g *gin.Context) {
	game, ok := c.store.Game(g.Param("id"))
	if !ok {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "game not found"})
		return
	}

	text := c.verdicts.GenerateVerdict(g.Request.Context(), game)
	g.JSON(http.StatusOK, models.VerdictResponse{Verdict: text})
}

// describeGame godoc
// @Summary Suggest a description for a game name
// @Description Best-effort one-sentence hype line. An empty suggestion means "no suggestion", not an error.
// @Tags verdict
// @Accept json
// @Produce json
// @Param game body models.DescribeRequest true "Game name"
// @Success 200 {object} models.DescribeResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/games/describe [post]
func (c *VerdictController) describeGame(g *gin.Context) {
	var req models.DescribeRequest
	if err := g.ShouldBindJSON(&req); err != nil || req.Name == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "game name is required"})
		return
	}

	suggestion := c.verdicts.EnhanceDescription(g.Request.Context(), req.Name)
	g.JSON(http.StatusOK, models.DescribeResponse{Suggestion: suggestion})
}
