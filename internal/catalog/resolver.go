package catalog

// Resolution is the guaranteed-valid result of resolving a requested id.
// EffectiveID may differ from the requested id after fallback.
type Resolution struct {
	EffectiveID string
	Option      ContainerOption
	Detail      ContainerDetail
}

// Resolver turns possibly-invalid requested ids into valid catalog entries.
type Resolver struct {
	cat *Catalog
}

func NewResolver(cat *Catalog) *Resolver {
	return &Resolver{cat: cat}
}

// Resolve applies the two-level fallback policy: an unknown id redirects to
// the first catalog entry, and a missing detail row borrows the first
// entry's detail. The page this feeds has no error surface for a bad id, so
// resolution is total — it always returns a renderable entry.
func (r *Resolver) Resolve(requestedID string) Resolution {
	fallbackID := r.cat.FirstContainerID()

	effectiveID := fallbackID
	opt, ok := r.cat.Container(requestedID)
	if ok {
		effectiveID = requestedID
	} else {
		opt, _ = r.cat.Container(fallbackID)
	}

	detail, ok := r.cat.Detail(effectiveID)
	if !ok {
		detail, _ = r.cat.Detail(fallbackID)
	}

	return Resolution{EffectiveID: effectiveID, Option: opt, Detail: detail}
}
