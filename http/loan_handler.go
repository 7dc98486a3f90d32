package http

import (
	"net/http"

	"finance-engine/domain"
	"finance-engine/service"

	"github.com/gin-gonic/gin"
)

// LoanHandler serves the loan summary route.
type LoanHandler struct {
	service *service.LoanService
}

// NewLoanHandler creates a LoanHandler backed by service.
func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

// CalculateLoan returns the loan summary for the JSON body.
func (h *LoanHandler) CalculateLoan(c *gin.Context) {
	var input domain.LoanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		invalidBody(c, err)
		return
	}

	result, err := h.service.CalculateLoan(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
