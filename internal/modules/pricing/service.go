package pricing

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"navlun.com/app/internal/shared/apperr"
)

// Store is the persistence surface the service needs. *Repo satisfies it;
// tests substitute fakes.
type Store interface {
	CreateInspection(ctx context.Context, rec InspectionPricing) (InspectionPricing, error)
	GetInspection(ctx context.Context, id string) (InspectionPricing, error)
	ListInspectionsByProvider(ctx context.Context, providerID string) ([]InspectionPricing, error)
	UpdateInspection(ctx context.Context, id string, fields map[string]any) (InspectionPricing, error)
	DeleteInspection(ctx context.Context, id string) error

	CreateFreightRate(ctx context.Context, rec FreightRate) (FreightRate, error)
	GetFreightRate(ctx context.Context, id string) (FreightRate, error)
	ListFreightRatesByProvider(ctx context.Context, providerID string) ([]FreightRate, error)
	UpdateFreightRate(ctx context.Context, id string, fields map[string]any) (FreightRate, error)
	DeleteFreightRate(ctx context.Context, id string) error
}

// Service validates drafts before they reach the store and keeps the
// listing caches coherent: every successful mutation invalidates the
// owning provider's listing before returning.
type Service struct {
	repo        Store
	inspections *ListingCache[InspectionPricing]
	freight     *ListingCache[FreightRate]
}

func NewService(repo Store) *Service {
	return &Service{
		repo:        repo,
		inspections: NewListingCache[InspectionPricing](),
		freight:     NewListingCache[FreightRate](),
	}
}

// InspectionDraft is an unpersisted edit. Price is a pointer so a missing
// price can be told apart from a zero one.
type InspectionDraft struct {
	ServiceProviderID string
	Product           string
	City              string
	InspectionType    string
	Price             *float64
	Currency          string
	Note              string
	Status            string
}

func (d InspectionDraft) validate() error {
	fields := map[string]string{}
	if d.ServiceProviderID == "" {
		fields["serviceProviderId"] = "This field is required."
	}
	if d.Product == "" {
		fields["product"] = "This field is required."
	}
	if d.City == "" {
		fields["city"] = "This field is required."
	}
	if d.InspectionType == "" {
		fields["inspectionType"] = "This field is required."
	}
	if d.Price == nil {
		fields["price"] = "This field is required."
	} else if *d.Price < 0 {
		fields["price"] = "Price cannot be negative."
	}
	if len(fields) > 0 {
		return apperr.InvalidErr("Please fill in the required fields.", fields)
	}
	return nil
}

func (s *Service) CreateInspection(ctx context.Context, d InspectionDraft) (InspectionPricing, error) {
	if err := d.validate(); err != nil {
		return InspectionPricing{}, err
	}
	rec := InspectionPricing{
		ServiceProviderID: d.ServiceProviderID,
		Product:           d.Product,
		City:              d.City,
		InspectionType:    d.InspectionType,
		Price:             *d.Price,
		Currency:          defaultStr(d.Currency, "USD"),
		Note:              d.Note,
		Status:            defaultStr(d.Status, "active"),
	}
	created, err := s.repo.CreateInspection(ctx, rec)
	if err != nil {
		return InspectionPricing{}, apperr.Wrap(err)
	}
	s.inspections.Invalidate(created.ServiceProviderID)
	return created, nil
}

func (s *Service) ListInspectionsByProvider(ctx context.Context, providerID string) ([]InspectionPricing, error) {
	if items, ok := s.inspections.Get(providerID); ok {
		return items, nil
	}
	items, err := s.repo.ListInspectionsByProvider(ctx, providerID)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	s.inspections.Put(providerID, items)
	return items, nil
}

// InspectionPatch carries the fields of a partial update. Nil means "leave
// unchanged".
type InspectionPatch struct {
	Product        *string
	City           *string
	InspectionType *string
	Price          *float64
	Currency       *string
	Note           *string
	Status         *string
}

func (p InspectionPatch) fields() (map[string]any, error) {
	out := map[string]any{}
	put := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	put("product", p.Product)
	put("city", p.City)
	put("inspection_type", p.InspectionType)
	put("currency", p.Currency)
	put("note", p.Note)
	put("status", p.Status)
	if p.Price != nil {
		if *p.Price < 0 {
			return nil, apperr.InvalidErr("Please fill in the required fields.",
				map[string]string{"price": "Price cannot be negative."})
		}
		out["price"] = *p.Price
	}
	if len(out) == 0 {
		return nil, apperr.InvalidErr("Nothing to update.", nil)
	}
	return out, nil
}

func (s *Service) UpdateInspection(ctx context.Context, id string, p InspectionPatch) (InspectionPricing, error) {
	fields, err := p.fields()
	if err != nil {
		return InspectionPricing{}, err
	}
	updated, err := s.repo.UpdateInspection(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return InspectionPricing{}, apperr.NotFoundErr("Pricing record not found.")
		}
		return InspectionPricing{}, apperr.Wrap(err)
	}
	s.inspections.Invalidate(updated.ServiceProviderID)
	return updated, nil
}

func (s *Service) DeleteInspection(ctx context.Context, id string) error {
	rec, err := s.repo.GetInspection(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundErr("Pricing record not found.")
		}
		return apperr.Wrap(err)
	}
	if err := s.repo.DeleteInspection(ctx, id); err != nil {
		return apperr.Wrap(err)
	}
	s.inspections.Invalidate(rec.ServiceProviderID)
	return nil
}

// FreightDraft is the freight-rate counterpart of InspectionDraft.
type FreightDraft struct {
	ServiceProviderID string
	Origin            string
	Destination       string
	Mode              string
	Rate              *float64
	Unit              string
	Currency          string
	Note              string
	Status            string
}

func (d FreightDraft) validate() error {
	fields := map[string]string{}
	if d.ServiceProviderID == "" {
		fields["serviceProviderId"] = "This field is required."
	}
	if d.Origin == "" {
		fields["origin"] = "This field is required."
	}
	if d.Destination == "" {
		fields["destination"] = "This field is required."
	}
	if d.Mode == "" {
		fields["mode"] = "This field is required."
	}
	if d.Rate == nil {
		fields["rate"] = "This field is required."
	} else if *d.Rate < 0 {
		fields["rate"] = "Rate cannot be negative."
	}
	if len(fields) > 0 {
		return apperr.InvalidErr("Please fill in the required fields.", fields)
	}
	return nil
}

func (s *Service) CreateFreightRate(ctx context.Context, d FreightDraft) (FreightRate, error) {
	if err := d.validate(); err != nil {
		return FreightRate{}, err
	}
	rec := FreightRate{
		ServiceProviderID: d.ServiceProviderID,
		Origin:            d.Origin,
		Destination:       d.Destination,
		Mode:              d.Mode,
		Rate:              *d.Rate,
		Unit:              defaultStr(d.Unit, "container"),
		Currency:          defaultStr(d.Currency, "USD"),
		Note:              d.Note,
		Status:            defaultStr(d.Status, "active"),
	}
	created, err := s.repo.CreateFreightRate(ctx, rec)
	if err != nil {
		return FreightRate{}, apperr.Wrap(err)
	}
	s.freight.Invalidate(created.ServiceProviderID)
	return created, nil
}

func (s *Service) ListFreightRatesByProvider(ctx context.Context, providerID string) ([]FreightRate, error) {
	if items, ok := s.freight.Get(providerID); ok {
		return items, nil
	}
	items, err := s.repo.ListFreightRatesByProvider(ctx, providerID)
	if err != nil {
		return nil, apperr.Wrap(err)
	}
	s.freight.Put(providerID, items)
	return items, nil
}

// FreightPatch mirrors InspectionPatch for lane rates.
type FreightPatch struct {
	Origin      *string
	Destination *string
	Mode        *string
	Rate        *float64
	Unit        *string
	Currency    *string
	Note        *string
	Status      *string
}

func (p FreightPatch) fields() (map[string]any, error) {
	out := map[string]any{}
	put := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	put("origin", p.Origin)
	put("destination", p.Destination)
	put("mode", p.Mode)
	put("unit", p.Unit)
	put("currency", p.Currency)
	put("note", p.Note)
	put("status", p.Status)
	if p.Rate != nil {
		if *p.Rate < 0 {
			return nil, apperr.InvalidErr("Please fill in the required fields.",
				map[string]string{"rate": "Rate cannot be negative."})
		}
		out["rate"] = *p.Rate
	}
	if len(out) == 0 {
		return nil, apperr.InvalidErr("Nothing to update.", nil)
	}
	return out, nil
}

func (s *Service) UpdateFreightRate(ctx context.Context, id string, p FreightPatch) (FreightRate, error) {
	fields, err := p.fields()
	if err != nil {
		return FreightRate{}, err
	}
	updated, err := s.repo.UpdateFreightRate(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return FreightRate{}, apperr.NotFoundErr("Rate record not found.")
		}
		return FreightRate{}, apperr.Wrap(err)
	}
	s.freight.Invalidate(updated.ServiceProviderID)
	return updated, nil
}

func (s *Service) DeleteFreightRate(ctx context.Context, id string) error {
	rec, err := s.repo.GetFreightRate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundErr("Rate record not found.")
		}
		return apperr.Wrap(err)
	}
	if err := s.repo.DeleteFreightRate(ctx, id); err != nil {
		return apperr.Wrap(err)
	}
	s.freight.Invalidate(rec.ServiceProviderID)
	return nil
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
