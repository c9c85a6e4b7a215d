package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/bimcat/catalog-api/internal/service"
)

func newMetricsRouter(metrics *service.MetricsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Metrics(metrics))
	r.GET("/cursos", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func get(r *gin.Engine, path string) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
}

func TestMetricsMiddlewareCountsMatchedRoutes(t *testing.T) {
	metrics := service.NewMetricsService(nil)
	r := newMetricsRouter(metrics)

	get(r, "/cursos")
	assert.EqualValues(t, 1, metrics.Snapshot().RequestsTotal)
}

func TestMetricsMiddlewareIgnoresItsOwnScrapes(t *testing.T) {
	metrics := service.NewMetricsService(nil)
	r := newMetricsRouter(metrics)

	get(r, "/metrics")
	assert.Zero(t, metrics.Snapshot().RequestsTotal)
}

func TestMetricsMiddlewareCountsUnmatchedRoutes(t *testing.T) {
	metrics := service.NewMetricsService(nil)
	r := newMetricsRouter(metrics)

	get(r, "/no-such-route")
	get(r, "/another-garbage-path")
	assert.EqualValues(t, 2, metrics.Snapshot().RequestsTotal)
}

func TestMetricsMiddlewareNilServiceIsANoOp(t *testing.T) {
	r := newMetricsRouter(nil)

	assert.NotPanics(t, func() { get(r, "/cursos") })
}
