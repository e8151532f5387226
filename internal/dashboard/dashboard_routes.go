package dashboard

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the dashboard. chartLimit guards the chart routes,
// each of which reloads the table.
func RegisterRoutes(r *gin.RouterGroup, h *Handler, chartLimit gin.HandlerFunc) {
	r.GET("/", h.Home)
	r.GET("/options", h.Options)
	r.GET("/export", chartLimit, h.Export)

	charts := r.Group("")
	charts.Use(chartLimit)
	{
		charts.POST("/heatmap", h.Heatmap)
		charts.POST("/dumbbell-plot", h.Dumbbell)
		charts.POST("/bar-chart", h.BarChart)
	}
}
