package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navlun.com/app/internal/catalog"
	"navlun.com/app/internal/http/middleware"
	"navlun.com/app/pkg/view"
)

func newCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r.Use(middleware.ErrorHandler(logger))

	h := NewCatalogHandler(catalog.Default())
	r.GET("/api/catalog/containers", h.ListContainers)
	r.GET("/api/catalog/containers/detail", h.ContainerDetail)
	r.GET("/api/catalog/containers/:id/illustration.svg", h.ContainerIllustration)
	r.GET("/api/catalog/trucks", h.ListTrucks)
	r.GET("/api/catalog/trucks/:id/illustration.svg", h.TruckIllustration)
	return r
}

func TestListContainersReturnsCatalogOrder(t *testing.T) {
	r := newCatalogRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/containers", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Containers []view.ContainerCard `json:"containers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Containers)
	assert.Equal(t, "20-standard", body.Containers[0].ID)
}

func TestContainerDetailResolvesKnownID(t *testing.T) {
	r := newCatalogRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/containers/detail?id=40-high-cube", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var page view.ContainerDetailPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, "40-high-cube", page.EffectiveID)

	var capacity string
	for _, m := range page.Metrics {
		if m.Label == "Capacity" {
			capacity = m.Value
		}
	}
	assert.Equal(t, "76 m3", capacity)
}

func TestContainerDetailFallsBackOnUnknownID(t *testing.T) {
	r := newCatalogRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/containers/detail?id=no-such-box", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var page view.ContainerDetailPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, "no-such-box", page.RequestedID)
	assert.Equal(t, "20-standard", page.EffectiveID)
	assert.NotEmpty(t, page.Metrics)
}

func TestContainerIllustrationServesSVG(t *testing.T) {
	r := newCatalogRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/containers/20-standard/illustration.svg", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "image/svg+xml")
	assert.Contains(t, w.Body.String(), "<svg")
}

func TestContainerIllustrationUnknownIDStillDraws(t *testing.T) {
	r := newCatalogRouter(t)

	known := httptest.NewRecorder()
	r.ServeHTTP(known, httptest.NewRequest(http.MethodGet, "/api/catalog/containers/20-standard/illustration.svg", nil))
	unknown := httptest.NewRecorder()
	r.ServeHTTP(unknown, httptest.NewRequest(http.MethodGet, "/api/catalog/containers/no-such-box/illustration.svg", nil))

	require.Equal(t, http.StatusOK, unknown.Code)
	assert.Equal(t, known.Body.String(), unknown.Body.String())
}

func TestTruckIllustrationUnknownIDIs404(t *testing.T) {
	r := newCatalogRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/catalog/trucks/no-such-truck/illustration.svg", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
