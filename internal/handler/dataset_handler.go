package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncaldwell/flightmap-backend-go/internal/service"
	"github.com/ncaldwell/flightmap-backend-go/pkg/response"
)

// DatasetHandler handles HTTP requests for dataset metadata
type DatasetHandler struct {
	service *service.DatasetService
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(service *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{service: service}
}

// GetFilterOptions handles GET /api/v1/filters
func (h *DatasetHandler) GetFilterOptions(c *gin.Context) {
	opts, err := h.service.FilterOptions()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, opts)
}

// GetSummary handles GET /api/v1/stats/summary
func (h *DatasetHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, summary)
}

// Reload handles POST /api/v1/admin/reload
func (h *DatasetHandler) Reload(c *gin.Context) {
	count, err := h.service.Import()
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, gin.H{"imported": count})
}
