package handlers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"navlun.com/app/internal/catalog"
	"navlun.com/app/internal/http/middleware"
	"navlun.com/app/internal/http/validation"
	"navlun.com/app/internal/selection"
	"navlun.com/app/internal/shared/apperr"
	"navlun.com/app/pkg/view"
)

// SelectorHandler drives equipment selector sessions over HTTP. Each open
// selector gets its own id; the confirmed choice is kept on the entry so
// the client can read it back after the session closes.
type SelectorHandler struct {
	cat *catalog.Catalog

	mu      sync.Mutex
	entries map[string]*selectorEntry
}

type selectorEntry struct {
	session     *selection.Session
	confirmedID string
}

func NewSelectorHandler(cat *catalog.Catalog) *SelectorHandler {
	return &SelectorHandler{cat: cat, entries: map[string]*selectorEntry{}}
}

// Open creates a session and opens it. Truck tab active, first truck
// preselected.
func (h *SelectorHandler) Open(c *gin.Context) {
	id := uuid.NewString()
	entry := &selectorEntry{}
	entry.session = selection.NewSession(h.cat, selection.Hooks{
		OnSelect: func(chosen string) { entry.confirmedID = chosen },
	})
	entry.session.Open()

	h.mu.Lock()
	h.entries[id] = entry
	h.mu.Unlock()

	c.JSON(http.StatusCreated, stateOf(id, entry))
}

// State reads the current session state.
func (h *SelectorHandler) State(c *gin.Context) {
	id, entry, err := h.lookup(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	c.JSON(http.StatusOK, stateOf(id, entry))
}

// SwitchTab activates a category without touching the selection.
func (h *SelectorHandler) SwitchTab(c *gin.Context) {
	id, entry, err := h.lookup(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	var req struct {
		Tab string `json:"tab" binding:"required,oneof=container truck"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Request data is invalid.", validation.FromBindError(err, &req)))
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	entry.session.SwitchTab(selection.Tab(req.Tab))
	c.JSON(http.StatusOK, stateOf(id, entry))
}

// Choose marks the tentative selection.
func (h *SelectorHandler) Choose(c *gin.Context) {
	id, entry, err := h.lookup(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	var req struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Request data is invalid.", validation.FromBindError(err, &req)))
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	entry.session.Choose(req.ID)
	c.JSON(http.StatusOK, stateOf(id, entry))
}

// Confirm emits the selection and closes. With nothing selected this is a
// no-op and the session stays open.
func (h *SelectorHandler) Confirm(c *gin.Context) {
	id, entry, err := h.lookup(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	entry.session.Confirm()
	c.JSON(http.StatusOK, stateOf(id, entry))
}

// Cancel closes without emitting.
func (h *SelectorHandler) Cancel(c *gin.Context) {
	id, entry, err := h.lookup(c)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	entry.session.Cancel()
	c.JSON(http.StatusOK, stateOf(id, entry))
}

func (h *SelectorHandler) lookup(c *gin.Context) (string, *selectorEntry, error) {
	id := c.Param("id")
	h.mu.Lock()
	entry, ok := h.entries[id]
	h.mu.Unlock()
	if !ok {
		return "", nil, apperr.NotFoundErr("Selector session not found.")
	}
	return id, entry, nil
}

func stateOf(id string, entry *selectorEntry) view.SelectorState {
	s := entry.session
	return view.SelectorState{
		SessionID:   id,
		Open:        s.IsOpen(),
		ActiveTab:   string(s.ActiveTab()),
		SelectedID:  s.SelectedID(),
		CanConfirm:  s.CanConfirm(),
		ConfirmedID: entry.confirmedID,
	}
}
