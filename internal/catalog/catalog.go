package catalog

import (
	"errors"
	"fmt"
)

// Catalog is the immutable table of selectable equipment, built once at
// startup and injected into consumers. All accessors are read-only; the
// returned slices must not be modified.
type Catalog struct {
	containers    []ContainerOption
	containerByID map[string]ContainerOption
	details       map[string]ContainerDetail
	trucks        []TruckOption
	truckByID     map[string]TruckOption
}

// Definition is the raw data a Catalog is constructed from.
type Definition struct {
	Containers []ContainerOption
	Details    map[string]ContainerDetail
	Trucks     []TruckOption
}

var (
	ErrEmptyCatalog = errors.New("catalog has no container entries")
	ErrNoTrucks     = errors.New("catalog has no truck entries")
)

// New validates the definition and builds the lookup tables. An empty
// container or truck list is a configuration error: the fallback policy and
// the selector default both need a first entry to exist.
func New(def Definition) (*Catalog, error) {
	if len(def.Containers) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(def.Trucks) == 0 {
		return nil, ErrNoTrucks
	}

	c := &Catalog{
		containers:    def.Containers,
		containerByID: make(map[string]ContainerOption, len(def.Containers)),
		details:       make(map[string]ContainerDetail, len(def.Details)),
		trucks:        def.Trucks,
		truckByID:     make(map[string]TruckOption, len(def.Trucks)),
	}
	for _, opt := range def.Containers {
		if _, dup := c.containerByID[opt.ID]; dup {
			return nil, fmt.Errorf("duplicate container id %q", opt.ID)
		}
		c.containerByID[opt.ID] = opt
	}
	for id, d := range def.Details {
		c.details[id] = d
	}
	for _, t := range def.Trucks {
		if _, dup := c.truckByID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate truck id %q", t.ID)
		}
		c.truckByID[t.ID] = t
	}
	return c, nil
}

// Default builds the catalog shipped with the binary. The data is fixed, so
// a construction error here is a programming mistake.
func Default() *Catalog {
	c, err := New(Definition{
		Containers: defaultContainers,
		Details:    defaultDetails,
		Trucks:     defaultTrucks,
	})
	if err != nil {
		panic(err)
	}
	return c
}

// Containers returns all container options in catalog definition order.
func (c *Catalog) Containers() []ContainerOption { return c.containers }

// Trucks returns all truck options in catalog definition order.
func (c *Catalog) Trucks() []TruckOption { return c.trucks }

// Container looks up a container option by id.
func (c *Catalog) Container(id string) (ContainerOption, bool) {
	opt, ok := c.containerByID[id]
	return opt, ok
}

// Detail looks up a container detail record by id. Absence is not a fault;
// callers apply the fallback policy.
func (c *Catalog) Detail(id string) (ContainerDetail, bool) {
	d, ok := c.details[id]
	return d, ok
}

// Truck looks up a truck option by id.
func (c *Catalog) Truck(id string) (TruckOption, bool) {
	t, ok := c.truckByID[id]
	return t, ok
}

// FirstContainerID is the fallback id used by resolution.
func (c *Catalog) FirstContainerID() string { return c.containers[0].ID }

// FirstTruckID is the selector's default selection.
func (c *Catalog) FirstTruckID() string { return c.trucks[0].ID }

// MissingDetailIDs lists container ids without a detail row. Resolution
// masks these at request time; main logs them at startup so the data gap
// stays visible.
func (c *Catalog) MissingDetailIDs() []string {
	var missing []string
	for _, opt := range c.containers {
		if _, ok := c.details[opt.ID]; !ok {
			missing = append(missing, opt.ID)
		}
	}
	return missing
}
