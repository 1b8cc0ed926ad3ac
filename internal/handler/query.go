package handler

import (
	"net/http"

	"urbandash/internal/model"
	"urbandash/internal/service"

	"github.com/gin-gonic/gin"
)

// QueryHandler handles natural language query HTTP requests
type QueryHandler struct {
	interpreter *service.QueryInterpreter
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(interpreter *service.QueryInterpreter) *QueryHandler {
	return &QueryHandler{
		interpreter: interpreter,
	}
}

// Query handles POST /api/query
func (h *QueryHandler) Query(c *gin.Context) {
	// A missing field or unreadable body counts as an empty query, not a
	// binding error.
	var req model.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.Query = ""
	}

	filter := h.interpreter.Interpret(c.Request.Context(), req.Query)
	if !filter.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid LLM output"})
		return
	}

	c.JSON(http.StatusOK, filter)
}
