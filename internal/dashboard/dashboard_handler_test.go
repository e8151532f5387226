package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go-paygap/internal/dashboard"
	dashboarderrors "go-paygap/internal/dashboard/errors"
	paygaperrors "go-paygap/internal/paygap/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fakePNG = []byte("\x89PNG\r\n\x1a\n")

type fakeDashboardService struct {
	HomeFn     func(ctx context.Context) (dashboard.HomeResponse, error)
	HeatmapFn  func(ctx context.Context, column dashboard.HeatmapColumn) ([]byte, error)
	DumbbellFn func(ctx context.Context, view dashboard.ViewOption) ([]byte, error)
	BarChartFn func(ctx context.Context, jobTitle string) ([]byte, error)
	ExportFn   func(ctx context.Context) ([]byte, error)
}

func (f *fakeDashboardService) Home(ctx context.Context) (dashboard.HomeResponse, error) {
	return f.HomeFn(ctx)
}
func (f *fakeDashboardService) Heatmap(ctx context.Context, column dashboard.HeatmapColumn) ([]byte, error) {
	return f.HeatmapFn(ctx, column)
}
func (f *fakeDashboardService) Dumbbell(ctx context.Context, view dashboard.ViewOption) ([]byte, error) {
	return f.DumbbellFn(ctx, view)
}
func (f *fakeDashboardService) BarChart(ctx context.Context, jobTitle string) ([]byte, error) {
	return f.BarChartFn(ctx, jobTitle)
}
func (f *fakeDashboardService) Export(ctx context.Context) ([]byte, error) {
	return f.ExportFn(ctx)
}

func postForm(h gin.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	h(c)
	return w
}

type envelope struct {
	Ok    bool `json:"ok"`
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// --- Test Home ---
func TestDashboardHandler_Home(t *testing.T) {
	t.Run("renders options", func(t *testing.T) {
		svc := &fakeDashboardService{
			HomeFn: func(ctx context.Context) (dashboard.HomeResponse, error) {
				return dashboard.HomeResponse{
					JobTitles:   []string{"Graphic Designer", "Warehouse Associate"},
					Columns:     []string{"JobTitle", "AgeCategory"},
					ViewOptions: []string{"department", "job_title"},
				}, nil
			},
		}
		h := dashboard.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		h.Home(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), `<option value="Warehouse Associate">`)
		assert.Contains(t, w.Body.String(), `<option value="AgeCategory">`)
	})

	t.Run("data source down", func(t *testing.T) {
		svc := &fakeDashboardService{
			HomeFn: func(ctx context.Context) (dashboard.HomeResponse, error) {
				return dashboard.HomeResponse{}, paygaperrors.ErrDataSourceUnavailable
			},
		}
		h := dashboard.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		h.Home(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "SERVICE_UNAVAILABLE", decodeEnvelope(t, w).Error.Code)
	})
}

func TestDashboardHandler_Options(t *testing.T) {
	svc := &fakeDashboardService{
		HomeFn: func(ctx context.Context) (dashboard.HomeResponse, error) {
			return dashboard.HomeResponse{JobTitles: []string{"IT"}}, nil
		},
	}
	h := dashboard.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/options", nil)

	h.Options(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"job_titles":["IT"]`)
}

// --- Test Heatmap ---
func TestDashboardHandler_Heatmap(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDashboardService{
			HeatmapFn: func(ctx context.Context, column dashboard.HeatmapColumn) ([]byte, error) {
				assert.Equal(t, dashboard.ColumnSeniority, column)
				return fakePNG, nil
			},
		}
		h := dashboard.NewHandler(svc)

		w := postForm(h.Heatmap, "/heatmap", url.Values{"column_value": {"Seniority"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, fakePNG, w.Body.Bytes())
	})

	t.Run("invalid column", func(t *testing.T) {
		h := dashboard.NewHandler(&fakeDashboardService{})

		w := postForm(h.Heatmap, "/heatmap", url.Values{"column_value": {"BasePay; DROP TABLE pay_gap"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dashboarderrors.ErrInvalidColumn.Message, decodeEnvelope(t, w).Error.Message)
	})

	t.Run("missing column", func(t *testing.T) {
		h := dashboard.NewHandler(&fakeDashboardService{})

		w := postForm(h.Heatmap, "/heatmap", url.Values{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decodeEnvelope(t, w).Error.Code)
	})

	t.Run("no data", func(t *testing.T) {
		svc := &fakeDashboardService{
			HeatmapFn: func(ctx context.Context, column dashboard.HeatmapColumn) ([]byte, error) {
				return nil, dashboarderrors.ErrNoData
			},
		}
		h := dashboard.NewHandler(svc)

		w := postForm(h.Heatmap, "/heatmap", url.Values{"column_value": {"JobTitle"}})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NO_DATA", decodeEnvelope(t, w).Error.Code)
	})
}

// --- Test Dumbbell ---
func TestDashboardHandler_Dumbbell(t *testing.T) {
	t.Run("department", func(t *testing.T) {
		svc := &fakeDashboardService{
			DumbbellFn: func(ctx context.Context, view dashboard.ViewOption) ([]byte, error) {
				assert.Equal(t, dashboard.ViewDepartment, view)
				return fakePNG, nil
			},
		}
		h := dashboard.NewHandler(svc)

		w := postForm(h.Dumbbell, "/dumbbell-plot", url.Values{"view_option": {"department"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	})

	t.Run("unrecognized view option", func(t *testing.T) {
		h := dashboard.NewHandler(&fakeDashboardService{})

		w := postForm(h.Dumbbell, "/dumbbell-plot", url.Values{"view_option": {"region"}})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dashboarderrors.ErrInvalidViewOption.Message, decodeEnvelope(t, w).Error.Message)
	})

	t.Run("query failed", func(t *testing.T) {
		svc := &fakeDashboardService{
			DumbbellFn: func(ctx context.Context, view dashboard.ViewOption) ([]byte, error) {
				return nil, paygaperrors.ErrQueryFailed
			},
		}
		h := dashboard.NewHandler(svc)

		w := postForm(h.Dumbbell, "/dumbbell-plot", url.Values{"view_option": {"job_title"}})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "QUERY_FAILED", decodeEnvelope(t, w).Error.Code)
	})
}

// --- Test BarChart ---
func TestDashboardHandler_BarChart(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &fakeDashboardService{
			BarChartFn: func(ctx context.Context, jobTitle string) ([]byte, error) {
				assert.Equal(t, "Software Engineer", jobTitle)
				return fakePNG, nil
			},
		}
		h := dashboard.NewHandler(svc)

		w := postForm(h.BarChart, "/bar-chart", url.Values{"job_title": {"Software Engineer"}})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})

	t.Run("unknown title", func(t *testing.T) {
		svc := &fakeDashboardService{
			BarChartFn: func(ctx context.Context, jobTitle string) ([]byte, error) {
				return nil, dashboarderrors.ErrNoData
			},
		}
		h := dashboard.NewHandler(svc)

		w := postForm(h.BarChart, "/bar-chart", url.Values{"job_title": {"Astronaut"}})

		assert.Equal(t, http.StatusNotFound, w.Code)
		env := decodeEnvelope(t, w)
		assert.False(t, env.Ok)
		assert.Equal(t, "NO_DATA", env.Error.Code)
	})

	t.Run("unexpected error is masked", func(t *testing.T) {
		svc := &fakeDashboardService{
			BarChartFn: func(ctx context.Context, jobTitle string) ([]byte, error) {
				return nil, assert.AnError
			},
		}
		h := dashboard.NewHandler(svc)

		w := postForm(h.BarChart, "/bar-chart", url.Values{"job_title": {"IT"}})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})
}

// --- Test Export ---
func TestDashboardHandler_Export(t *testing.T) {
	svc := &fakeDashboardService{
		ExportFn: func(ctx context.Context) ([]byte, error) {
			return []byte("PK"), nil
		},
	}
	h := dashboard.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/export", nil)

	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "pay_gap.xlsx")
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	limited := 0
	limit := func(c *gin.Context) {
		limited++
		c.Next()
	}
	svc := &fakeDashboardService{
		DumbbellFn: func(ctx context.Context, view dashboard.ViewOption) ([]byte, error) {
			return fakePNG, nil
		},
	}
	dashboard.RegisterRoutes(r.Group(""), dashboard.NewHandler(svc), limit)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/dumbbell-plot", strings.NewReader("view_option=job_title"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, limited)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/heatmap", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
