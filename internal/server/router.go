package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vmp-veiculos/contratos/internal/middleware"
)

// NewRouter assembles the gin engine with the operator API.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/extract", h.Extract)
		api.POST("/manual", h.Manual)
		api.GET("/session", h.Session)
		api.PUT("/fields", h.SetField)
		api.POST("/confirm", h.Confirm)
		api.POST("/cancel", h.Cancel)
		api.POST("/reopen", h.Reopen)
		api.POST("/reset", h.Reset)
		api.GET("/contract", h.Contract)
		api.GET("/contract/pdf", h.ContractPDF)
		api.GET("/contract/xlsx", h.ContractXLSX)
	}

	return r
}
