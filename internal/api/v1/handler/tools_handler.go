package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"velocity-proxy/internal/common"
	"velocity-proxy/internal/features/tools"
)

// ToolsHandler exposes the operation catalogue over HTTP
type ToolsHandler struct {
	dispatcher *tools.Dispatcher
}

// CallRequest is the body of a tool invocation
type CallRequest struct {
	Arguments map[string]interface{} `json:"arguments"`
}

// NewToolsHandler creates a new tools handler
func NewToolsHandler(dispatcher *tools.Dispatcher) *ToolsHandler {
	if dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	return &ToolsHandler{dispatcher: dispatcher}
}

// RegisterRoutes attaches the tool endpoints under the given group
func (h *ToolsHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/tools", h.ListTools)
	group.POST("/tools/:name", h.CallTool)
}

// ListTools returns the definitions of all available tools
func (h *ToolsHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": h.dispatcher.List()})
}

// CallTool invokes a named tool with the supplied arguments.
// Tool failures are reported in the response body so callers always
// receive a readable payload rather than a bare status code.
func (h *ToolsHandler) CallTool(c *gin.Context) {
	name := c.Param("name")

	var req CallRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	result, err := h.dispatcher.Dispatch(c.Request.Context(), name, req.Arguments)
	if err != nil {
		if common.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		slog.Warn("tool invocation failed", "tool", name, "error", err)
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
