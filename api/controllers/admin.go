package controllers

import (
	"net/http"

	"github.com/Aalzard/DRUNKPENGUINS/api/transport"
	"github.com/Aalzard/DRUNKPENGUINS/catalog"
	"github.com/Aalzard/DRUNKPENGUINS/logging"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	store *catalog.Store
}

func NewAdminController(store *catalog.Store) *AdminController {
	return &AdminController{store: store}
}

func (c *AdminController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/admin", transport.AdminAuthMiddleware())

	group.GET("/catalog", c.dumpCatalog)
	group.POST("/catalog/reset", c.resetCatalog)
}

// @Security AdminToken
// dumpCatalog godoc
// @Summary Dump the raw catalog
// @Tags admin
// @Produce json
// @Success 200 {object} rating.Catalog
// @Router /api/admin/catalog [get]
func (c *AdminController) dumpCatalog(g *gin.Context) {
	g.JSON(http.StatusOK, c.store.Catalog())
}

// @Security AdminToken
// resetCatalog godoc
// @Summary Reset the catalog to seed data
// @Description Drops every game and rating and restores the seed catalog
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/admin/catalog/reset [post]
func (c *AdminController) resetCatalog(g *gin.Context) {
	persisted := c.store.Reset(g.Request.Context())
	logging.Log.Warnf("ADMIN: catalog reset to seed data (persisted=%v)", persisted)

	resp := gin.H{"message": "catalog reset"}
	if !persisted {
		resp["warning"] = saveWarning
	}
	g.JSON(http.StatusOK, resp)
}
