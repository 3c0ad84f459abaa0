package view

// ContainerCard is one row of the container catalog listing.
type ContainerCard struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Variant         string `json:"variant"`
	Size            string `json:"size"`
	IllustrationURL string `json:"illustrationUrl"`
}

// TruckCard is one row of the truck catalog listing.
type TruckCard struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Variant         string `json:"variant"`
	IllustrationURL string `json:"illustrationUrl"`
}

// Metric is one labeled dimension row on the detail panel, in display
// order.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ContainerDetailPage is the payload behind the container detail screen.
// EffectiveID may differ from RequestedID after fallback resolution.
type ContainerDetailPage struct {
	RequestedID     string          `json:"requestedId"`
	EffectiveID     string          `json:"effectiveId"`
	Option          ContainerCard   `json:"option"`
	Metrics         []Metric        `json:"metrics"`
	Description     string          `json:"description"`
	Highlights      []string        `json:"highlights"`
	AllOptions      []ContainerCard `json:"allOptions"`
	IllustrationURL string          `json:"illustrationUrl"`
}

// SelectorState mirrors the selection session for the client.
type SelectorState struct {
	SessionID  string `json:"sessionId"`
	Open       bool   `json:"open"`
	ActiveTab  string `json:"activeTab,omitempty"`
	SelectedID string `json:"selectedId,omitempty"`
	CanConfirm bool   `json:"canConfirm"`
	// ConfirmedID survives close; it is the choice the owner received.
	ConfirmedID string `json:"confirmedId,omitempty"`
}
