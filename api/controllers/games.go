package controllers

import (
	"net/http"

	"github.com/Aalzard/DRUNKPENGUINS/api/models"
	"github.com/Aalzard/DRUNKPENGUINS/catalog"
	"github.com/Aalzard/DRUNKPENGUINS/logging"
	"github.com/Aalzard/DRUNKPENGUINS/rating"
	"github.com/gin-gonic/gin"
)

const saveWarning = "catalog could not be persisted; changes may not survive a restart"

type GameController struct {
	store     *catalog.Store
	directory rating.Directory
}

func NewGameController(store *catalog.Store, directory rating.Directory) *GameController {
	return &GameController{
		store:     store,
		directory: directory,
	}
}

func (c *GameController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api")

	group.GET("/games", c.listGames)
	group.POST("/games", c.createGame)
	group.GET("/games/:id", c.getGame)
	group.GET("/summary", c.getSummary)
}

// listGames godoc
// @Summary List the catalog
// @Description Returns all games, newest first, with derived squad statistics
// @Tags games
// @Produce json
// @Success 200 {array} models.GameResponse
// @Router /api/games [get]
func (c *GameController) listGames(g *gin.Context) {
	games := c.store.Games()

	responses := make([]models.GameResponse, 0, len(games))
	for _, game := range games {
		responses = append(responses, models.TransformGameFromCatalog(game, c.directory))
	}
	g.JSON(http.StatusOK, responses)
}

// createGame godoc
// @Summary Add a game to the catalog
// @Description Creates a game with an empty ratings map
// @Tags games
// @Accept json
// @Produce json
// @Param game body models.CreateGameRequest true "Game to add"
// @Success 200 {object} models.CreateGameResponse
// @Failure 400 {object} models.ErrorResponse "Missing game name"
// @Router /api/games [post]
func (c *GameController) createGame(g *gin.Context) {
	var req models.CreateGameRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}
	if req.Name == "" {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "game name is required"})
		return
	}

	game, persisted := c.store.AddGame(g.Request.Context(), req.Name, req.ImageURL, req.Description)
	logging.Log.Infof("GAMES: added game %s (%s)", game.Name, game.ID)

	resp := models.CreateGameResponse{
		Game:      models.TransformGameFromCatalog(game, c.directory),
		Persisted: persisted,
	}
	if !persisted {
		resp.Warning = saveWarning
	}
	g.JSON(http.StatusOK, resp)
}

// getGame godoc
// @Summary Get one game
// @Tags games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.GameResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/games/{id} [get]
func (c *GameController) getGame(g *gin.Context) {
	game, ok := c.store.Game(g.Param("id"))
	if !ok {
		g.JSON(http.StatusNotFound, &models.ErrorResponse{Error: "game not found"})
		return
	}
	g.JSON(http.StatusOK, models.TransformGameFromCatalog(game, c.directory))
}

// getSummary godoc
// @Summary Catalog-wide statistics
// @Description Number of games tracked and total reviews across the catalog
// @Tags games
// @Produce json
// @Success 200 {object} models.SummaryResponse
// @Router /api/summary [get]
func (c *GameController) getSummary(g *gin.Context) {
	cat := c.store.Catalog()
	g.JSON(http.StatusOK, models.SummaryResponse{
		GamesTracked: len(cat.Games),
		TotalReviews: rating.TotalReviews(cat),
	})
}
