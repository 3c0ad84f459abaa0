// Package selection holds the tentative equipment choice for one selector
// instance. The owning caller receives the chosen id only on confirm;
// closing any other way discards the tentative state.
package selection

import "navlun.com/app/internal/catalog"

// Tab is a selector category.
type Tab string

const (
	TabContainer Tab = "container"
	TabTruck     Tab = "truck"
)

// Hooks are the callbacks a Session fires toward its owner. OnSelect runs
// at most once per open/close cycle, always before OnClose.
type Hooks struct {
	OnSelect func(id string)
	OnClose  func()
}

// Session is the per-instance selection state machine. It is not safe for
// concurrent use; selector events arrive one at a time.
type Session struct {
	cat   *catalog.Catalog
	hooks Hooks

	open       bool
	activeTab  Tab
	selectedID string
}

func NewSession(cat *catalog.Catalog, hooks Hooks) *Session {
	return &Session{cat: cat, hooks: hooks}
}

// Open initializes the tentative state: truck tab active, first truck
// preselected. A previous cycle's choice is never carried over. Opening an
// already-open session is a no-op.
func (s *Session) Open() {
	if s.open {
		return
	}
	s.open = true
	s.activeTab = TabTruck
	s.selectedID = s.cat.FirstTruckID()
}

// SwitchTab changes the active category without touching the selection.
func (s *Session) SwitchTab(t Tab) {
	if !s.open {
		return
	}
	s.activeTab = t
}

// Choose marks id as the tentative selection. Choosing the current
// selection again changes nothing.
func (s *Session) Choose(id string) {
	if !s.open {
		return
	}
	s.selectedID = id
}

// Confirm emits the selection to the owner and closes. With nothing
// selected the confirm affordance is inert: no emission, no transition.
func (s *Session) Confirm() {
	if !s.open || s.selectedID == "" {
		return
	}
	id := s.selectedID
	s.close()
	if s.hooks.OnSelect != nil {
		s.hooks.OnSelect(id)
	}
	if s.hooks.OnClose != nil {
		s.hooks.OnClose()
	}
}

// Cancel closes without emitting a selection. Backdrop clicks and the close
// button route here as well.
func (s *Session) Cancel() {
	if !s.open {
		return
	}
	s.close()
	if s.hooks.OnClose != nil {
		s.hooks.OnClose()
	}
}

func (s *Session) close() {
	s.open = false
	s.selectedID = ""
	s.activeTab = ""
}

func (s *Session) IsOpen() bool { return s.open }

func (s *Session) ActiveTab() Tab { return s.activeTab }

// SelectedID returns the tentative selection, or "" when nothing is
// selected or the session is closed.
func (s *Session) SelectedID() string { return s.selectedID }

// CanConfirm reports whether the confirm affordance should be enabled.
func (s *Session) CanConfirm() bool { return s.open && s.selectedID != "" }
