package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobpilot-backend/server/flash"
	"jobpilot-backend/server/middleware"
)

// PageHandler serves the static pages around the onboarding flow.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// GET /
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", flash.PageData(c))
}

// GET /dashboard
func (h *PageHandler) Dashboard(c *gin.Context) {
	data := flash.PageData(c)
	if user, ok := middleware.CurrentUser(c); ok {
		data["User"] = user
	}
	c.HTML(http.StatusOK, "dashboard.html", data)
}

// GET /success
func (h *PageHandler) Success(c *gin.Context) {
	c.HTML(http.StatusOK, "success.html", flash.PageData(c))
}

// GET /health
func (h *PageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "onboarding",
	})
}
