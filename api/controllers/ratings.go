package controllers

import (
	"errors"
	"net/http"

	"github.com/Aalzard/DRUNKPENGUINS/api/models"
	"github.com/Aalzard/DRUNKPENGUINS/catalog"
	"github.com/Aalzard/DRUNKPENGUINS/logging"
	"github.com/Aalzard/DRUNKPENGUINS/rating"
	"github.com/gin-gonic/gin"
)

type RatingController struct {
	store     *catalog.Store
	directory rating.Directory
	scale     rating.Scale
}

func NewRatingController(store *catalog.Store, directory rating.Directory, scale rating.Scale) *RatingController {
	return &RatingController{
		store:     store,
		directory: directory,
		scale:     scale,
	}
}

func (c *RatingController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.PUT("/games/:id/ratings/:userId", c.registerRating)
}

// registerRating godoc
// @Summary Submit or overwrite one user's rating for a game
// @Description A full-record replacement: every category must be present with a score in range. An invalid submission leaves the game untouched.
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param userId path string true "User ID"
// @Param rating body models.RegisterRatingRequest true "Complete per-category rating"
// @Success 200 {object} models.RegisterRatingResponse
// @Failure 400 {object} models.ErrorResponse "Invalid score, missing category or unknown user"
// @Failure 404 {object} models.ErrorResponse "Game not found"
// @Router /api/games/{id}/ratings/{userId} [put]
func (c *RatingController) registerRating(g *gin.Context) {
	var req models.RegisterRatingRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	userID := g.Param("userId")
	if !c.directory.Contains(userID) {
		logging.Log.Warnf("RATING: submission for unknown user %s", userID)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "unknown user: " + userID})
		return
	}

	record, err := rating.BuildRecord(c.scale, userID, models.TransformRatingInput(req))
	if err != nil {
		logging.Log.Warnf("RATING: rejected submission from %s: %v", userID, err)
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
		return
	}

	game, persisted, err := c.store.ApplyRating(g.Request.Context(), g.Param("id"), record)
	if err != nil {
		if errors.Is(err, catalog.ErrGameNotFound) {
			g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: err.Error()})
			return
		}
		if errors.Is(err, rating.ErrUnknownUser) {
			g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: err.Error()})
			return
		}
		logging.Log.Errorf("RATING: failed to apply rating: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not save rating"})
		return
	}

	logging.Log.Infof("RATING: %s rated game %s total %d", userID, game.ID, record.TotalScore)

	resp := models.RegisterRatingResponse{
		Message:   "rating registered",
		Game:      models.TransformGameFromCatalog(game, c.directory),
		Persisted: persisted,
	}
	if !persisted {
		resp.Warning = saveWarning
	}
	g.JSON(http.StatusOK, resp)
}
