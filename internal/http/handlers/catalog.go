package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"navlun.com/app/internal/catalog"
	"navlun.com/app/internal/http/middleware"
	"navlun.com/app/internal/http/render"
	"navlun.com/app/internal/illustration"
	"navlun.com/app/internal/shared/apperr"
	"navlun.com/app/pkg/view"
)

// CatalogHandler serves the equipment catalog and the detail screen.
type CatalogHandler struct {
	cat      *catalog.Catalog
	resolver *catalog.Resolver
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: cat, resolver: catalog.NewResolver(cat)}
}

// ListContainers returns all container options in catalog order.
func (h *CatalogHandler) ListContainers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"containers": mapContainers(h.cat.Containers())})
}

// ListTrucks returns all truck options in catalog order.
func (h *CatalogHandler) ListTrucks(c *gin.Context) {
	out := make([]view.TruckCard, 0, len(h.cat.Trucks()))
	for _, t := range h.cat.Trucks() {
		out = append(out, view.TruckCard{
			ID:              t.ID,
			Name:            t.Name,
			Variant:         string(t.Variant),
			IllustrationURL: "/api/catalog/trucks/" + t.ID + "/illustration.svg",
		})
	}
	c.JSON(http.StatusOK, gin.H{"trucks": out})
}

// ContainerDetail renders the detail payload for the id in the query
// string. An unknown or absent id resolves to the first catalog entry, so
// this endpoint never 404s.
func (h *CatalogHandler) ContainerDetail(c *gin.Context) {
	requested := c.Query("id")
	res := h.resolver.Resolve(requested)

	d := res.Detail
	page := view.ContainerDetailPage{
		RequestedID: requested,
		EffectiveID: res.EffectiveID,
		Option:      mapContainer(res.Option),
		Metrics: []view.Metric{
			{Label: "Inside length", Value: d.InsideLength},
			{Label: "Inside width", Value: d.InsideWidth},
			{Label: "Inside height", Value: d.InsideHeight},
			{Label: "Door width", Value: d.DoorWidth},
			{Label: "Door height", Value: d.DoorHeight},
			{Label: "Capacity", Value: d.Capacity},
			{Label: "Tare weight", Value: d.TareWeight},
			{Label: "Max cargo weight", Value: d.MaxCargoWeight},
		},
		Description:     d.Description,
		Highlights:      d.Highlights,
		AllOptions:      mapContainers(h.cat.Containers()),
		IllustrationURL: "/api/catalog/containers/" + res.EffectiveID + "/illustration.svg",
	}
	c.JSON(http.StatusOK, page)
}

// ContainerIllustration serves the SVG for one catalog entry. The path id
// goes through the same resolution as the detail screen, so a stale link
// still draws something.
func (h *CatalogHandler) ContainerIllustration(c *gin.Context) {
	res := h.resolver.Resolve(c.Param("id"))
	render.SVG(c, http.StatusOK, illustration.Container(res.Option.Variant, res.Option.Size))
}

// TruckIllustration serves the SVG for one truck variant. Trucks have no
// fallback policy; an unknown id is a plain not-found.
func (h *CatalogHandler) TruckIllustration(c *gin.Context) {
	t, ok := h.cat.Truck(c.Param("id"))
	if !ok {
		middleware.Fail(c, apperr.NotFoundErr("Truck not found."))
		return
	}
	render.SVG(c, http.StatusOK, illustration.Truck(t.Variant))
}

func mapContainer(opt catalog.ContainerOption) view.ContainerCard {
	return view.ContainerCard{
		ID:              opt.ID,
		Name:            opt.Name,
		Variant:         string(opt.Variant),
		Size:            string(opt.Size),
		IllustrationURL: "/api/catalog/containers/" + opt.ID + "/illustration.svg",
	}
}

func mapContainers(opts []catalog.ContainerOption) []view.ContainerCard {
	out := make([]view.ContainerCard, 0, len(opts))
	for _, opt := range opts {
		out = append(out, mapContainer(opt))
	}
	return out
}
