package http

import (
	"net/http"

	"finance-engine/calculator"
	"finance-engine/service"

	"github.com/gin-gonic/gin"
)

// ToolHandler serves the calculator routes.
type ToolHandler struct {
	service *service.ToolService
}

// NewToolHandler creates a ToolHandler backed by service.
func NewToolHandler(service *service.ToolService) *ToolHandler {
	return &ToolHandler{service: service}
}

// ToolListResponse is the body of the tool list.
type ToolListResponse struct {
	Data []calculator.Tool `json:"data"`
}

// ListTools returns the names of all calculators
func (h *ToolHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, ToolListResponse{Data: calculator.Tools()})
}

// CalculateFromQuery runs a calculator with arguments from the query string.
// Only the first value of a repeated parameter is used.
func (h *ToolHandler) CalculateFromQuery(c *gin.Context) {
	calc, err := calculator.NewInput(calculator.Tool(c.Param("tool")))
	if err != nil {
		writeError(c, err)
		return
	}

	values := make(map[string]string)
	for key, vals := range c.Request.URL.Query() {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}
	if err := calculator.Decode(calc, values); err != nil {
		invalidBody(c, err)
		return
	}

	h.calculate(c, calc)
}

// CalculateFromBody runs a calculator with arguments from a JSON object
func (h *ToolHandler) CalculateFromBody(c *gin.Context) {
	calc, err := calculator.NewInput(calculator.Tool(c.Param("tool")))
	if err != nil {
		writeError(c, err)
		return
	}

	if err := c.ShouldBindJSON(calc); err != nil {
		invalidBody(c, err)
		return
	}

	h.calculate(c, calc)
}

func (h *ToolHandler) calculate(c *gin.Context, calc calculator.Calculation) {
	result, err := h.service.Calculate(c.Request.Context(), calc)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
