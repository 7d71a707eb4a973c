package v1

import (
	"net/http"

	"portfolio-contact-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	healthUC usecase.HealthUsecase
	author   string
}

func NewSystemHandler(r gin.IRoutes, healthUC usecase.HealthUsecase, author string) {
	handler := &SystemHandler{healthUC: healthUC, author: author}

	r.GET("/health", handler.Health)
	r.GET("/", handler.Root)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  usecase.HealthStatus
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}

// Root godoc
// @Summary      Service banner
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Portfolio Backend API",
		"version": "1.0.0",
		"author":  h.author,
		"endpoints": gin.H{
			"health":  "/health",
			"contact": "/api/contact",
			"metrics": "/metrics",
			"docs":    "/api/swagger/index.html",
		},
	})
}
