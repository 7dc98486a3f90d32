package http

import (
	"net/http"
	"strconv"

	"finance-engine/domain"
	"finance-engine/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// CalculationHandler serves the calculation history.
type CalculationHandler struct {
	service *service.ToolService
}

// NewCalculationHandler creates a CalculationHandler backed by service.
func NewCalculationHandler(service *service.ToolService) *CalculationHandler {
	return &CalculationHandler{service: service}
}

// CalculationListResponse is the body of the history list.
type CalculationListResponse struct {
	Data []domain.Calculation `json:"data"`
}

// ListCalculations returns the most recent calculations, newest first
func (h *CalculationHandler) ListCalculations(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	calcs, err := h.service.History(c.Request.Context(), limit)
	if err != nil {
		writeError(c, errors.Wrap(err, "loading calculation history"))
		return
	}

	c.JSON(http.StatusOK, CalculationListResponse{Data: calcs})
}
