package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncaldwell/flightmap-backend-go/internal/models"
	"github.com/ncaldwell/flightmap-backend-go/internal/service"
	"github.com/ncaldwell/flightmap-backend-go/pkg/response"
)

// FigureHandler handles HTTP requests for the map figure
type FigureHandler struct {
	service *service.FigureService
}

// NewFigureHandler creates a new figure handler
func NewFigureHandler(service *service.FigureService) *FigureHandler {
	return &FigureHandler{service: service}
}

// GetFigure handles GET /api/v1/figure. Year and city may repeat; an absent
// dimension means no restriction.
func (h *FigureHandler) GetFigure(c *gin.Context) {
	var filter models.RouteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	fig, err := h.service.BuildFigure(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, fig)
}

// GetRouteCounts handles GET /api/v1/routes
func (h *FigureHandler) GetRouteCounts(c *gin.Context) {
	var filter models.RouteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	routes, err := h.service.RouteCounts(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"routes": routes,
		"count":  len(routes),
	})
}

// GetCitySummaries handles GET /api/v1/cities
func (h *FigureHandler) GetCitySummaries(c *gin.Context) {
	var filter models.RouteFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	cities, err := h.service.CitySummaries(filter)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{
		"cities": cities,
		"count":  len(cities),
	})
}
