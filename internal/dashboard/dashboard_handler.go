package dashboard

import (
	"bytes"
	"net/http"

	"go-paygap/internal/export"
	"go-paygap/internal/shared/apperror"
	"go-paygap/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("dashboard request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Home(c *gin.Context) {
	resp, err := h.service.Home(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var page bytes.Buffer
	if err := indexPage.Execute(&page, resp); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page.Bytes())
}

// Options is the JSON form of the home page choices.
func (h *Handler) Options(c *gin.Context) {
	resp, err := h.service.Home(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Heatmap(c *gin.Context) {
	var req HeatmapRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	h.logger.Debug("http heatmap", zap.String("column_value", req.ColumnValue))

	column, err := ParseHeatmapColumn(req.ColumnValue)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	img, err := h.service.Heatmap(c.Request.Context(), column)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.PNG(c, img)
}

func (h *Handler) Dumbbell(c *gin.Context) {
	var req DumbbellRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	h.logger.Debug("http dumbbell plot", zap.String("view_option", req.ViewOption))

	view, err := ParseViewOption(req.ViewOption)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	img, err := h.service.Dumbbell(c.Request.Context(), view)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.PNG(c, img)
}

func (h *Handler) BarChart(c *gin.Context) {
	var req BarChartRequest
	if err := c.ShouldBind(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	h.logger.Debug("http bar chart", zap.String("job_title", req.JobTitle))

	img, err := h.service.BarChart(c.Request.Context(), req.JobTitle)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.PNG(c, img)
}

func (h *Handler) Export(c *gin.Context) {
	body, err := h.service.Export(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Attachment(c, "pay_gap.xlsx", export.ContentType, body)
}
