package controllers

import (
	"net/http"

	"github.com/Aalzard/DRUNKPENGUINS/api/models"
	"github.com/Aalzard/DRUNKPENGUINS/rating"
	"github.com/gin-gonic/gin"
)

// MetaController exposes the fixed user directory and category scale so the
// front end can render forms and completeness indicators. Both sets are
// closed; there are no create/update/delete routes.
type MetaController struct {
	directory rating.Directory
	scale     rating.Scale
}

func NewMetaController(directory rating.Directory, scale rating.Scale) *MetaController {
	return &MetaController{directory: directory, scale: scale}
}

func (c *MetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta")

	group.GET("/users", c.getUsers)
	group.GET("/categories", c.getCategories)
}

// @Summary Get the squad user directory
// @Tags Meta
// @Produce json
// @Success 200 {array} models.UserResponse
// @Router /api/meta/users [get]
func (c *MetaController) getUsers(g *gin.Context) {
	responses := make([]models.UserResponse, 0, len(c.directory))
	for _, u := range c.directory {
		responses = append(responses, models.TransformUserFromDirectory(u))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get the rating categories and score range
// @Tags Meta
// @Produce json
// @Success 200 {object} models.CategoriesResponse
// @Router /api/meta/categories [get]
func (c *MetaController) getCategories(g *gin.Context) {
	g.JSON(http.StatusOK, models.TransformScale(c.scale))
}
