package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navlun.com/app/internal/catalog"
	"navlun.com/app/internal/http/middleware"
	"navlun.com/app/pkg/view"
)

func newSelectorRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r.Use(middleware.ErrorHandler(logger))

	h := NewSelectorHandler(catalog.Default())
	r.POST("/api/selector", h.Open)
	r.GET("/api/selector/:id", h.State)
	r.POST("/api/selector/:id/tab", h.SwitchTab)
	r.POST("/api/selector/:id/choose", h.Choose)
	r.POST("/api/selector/:id/confirm", h.Confirm)
	r.POST("/api/selector/:id/cancel", h.Cancel)
	return r
}

func doSelector(t *testing.T, r *gin.Engine, method, path, body string) (int, view.SelectorState) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var st view.SelectorState
	if w.Code < 300 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	}
	return w.Code, st
}

func TestSelectorOpenDefaults(t *testing.T) {
	r := newSelectorRouter(t)

	code, st := doSelector(t, r, http.MethodPost, "/api/selector", "")
	require.Equal(t, http.StatusCreated, code)
	assert.NotEmpty(t, st.SessionID)
	assert.True(t, st.Open)
	assert.Equal(t, "truck", st.ActiveTab)
	assert.Equal(t, "tautliner", st.SelectedID)
	assert.True(t, st.CanConfirm)
}

func TestSelectorConfirmFlow(t *testing.T) {
	r := newSelectorRouter(t)

	_, st := doSelector(t, r, http.MethodPost, "/api/selector", "")
	base := "/api/selector/" + st.SessionID

	code, st := doSelector(t, r, http.MethodPost, base+"/tab", `{"tab":"container"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "container", st.ActiveTab)
	assert.Equal(t, "tautliner", st.SelectedID)

	code, st = doSelector(t, r, http.MethodPost, base+"/choose", `{"id":"40-high-cube"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "40-high-cube", st.SelectedID)

	code, st = doSelector(t, r, http.MethodPost, base+"/confirm", "")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, st.Open)
	assert.Equal(t, "40-high-cube", st.ConfirmedID)

	// Confirmed choice survives close and is readable afterwards.
	code, st = doSelector(t, r, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, st.Open)
	assert.Equal(t, "40-high-cube", st.ConfirmedID)
}

func TestSelectorCancelEmitsNothing(t *testing.T) {
	r := newSelectorRouter(t)

	_, st := doSelector(t, r, http.MethodPost, "/api/selector", "")
	base := "/api/selector/" + st.SessionID

	doSelector(t, r, http.MethodPost, base+"/choose", `{"id":"40-standard"}`)
	code, st := doSelector(t, r, http.MethodPost, base+"/cancel", "")
	require.Equal(t, http.StatusOK, code)
	assert.False(t, st.Open)
	assert.Empty(t, st.ConfirmedID)
}

func TestSelectorSwitchTabRejectsBadValue(t *testing.T) {
	r := newSelectorRouter(t)

	_, st := doSelector(t, r, http.MethodPost, "/api/selector", "")
	code, _ := doSelector(t, r, http.MethodPost, "/api/selector/"+st.SessionID+"/tab", `{"tab":"airplane"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSelectorUnknownSessionIs404(t *testing.T) {
	r := newSelectorRouter(t)

	code, _ := doSelector(t, r, http.MethodGet, "/api/selector/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
}
