package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"navlun.com/app/internal/shared/apperr"
)

// fakeStore is an in-memory Store that counts calls, so tests can tell
// whether a read was served from the cache and whether validation stopped
// a write before it reached persistence.
type fakeStore struct {
	inspections map[string]InspectionPricing
	freight     map[string]FreightRate

	createCalls int
	listCalls   int
	seq         int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		inspections: map[string]InspectionPricing{},
		freight:     map[string]FreightRate{},
	}
}

func (f *fakeStore) CreateInspection(_ context.Context, rec InspectionPricing) (InspectionPricing, error) {
	f.createCalls++
	f.seq++
	rec.ID = "insp-" + string(rune('a'+f.seq))
	rec.CreatedAt = time.Now()
	f.inspections[rec.ID] = rec
	return rec, nil
}

func (f *fakeStore) GetInspection(_ context.Context, id string) (InspectionPricing, error) {
	rec, ok := f.inspections[id]
	if !ok {
		return InspectionPricing{}, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeStore) ListInspectionsByProvider(_ context.Context, providerID string) ([]InspectionPricing, error) {
	f.listCalls++
	var out []InspectionPricing
	for _, rec := range f.inspections {
		if rec.ServiceProviderID == providerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateInspection(_ context.Context, id string, fields map[string]any) (InspectionPricing, error) {
	rec, ok := f.inspections[id]
	if !ok {
		return InspectionPricing{}, gorm.ErrRecordNotFound
	}
	if v, ok := fields["price"]; ok {
		rec.Price = v.(float64)
	}
	if v, ok := fields["city"]; ok {
		rec.City = v.(string)
	}
	f.inspections[id] = rec
	return rec, nil
}

func (f *fakeStore) DeleteInspection(_ context.Context, id string) error {
	delete(f.inspections, id)
	return nil
}

func (f *fakeStore) CreateFreightRate(_ context.Context, rec FreightRate) (FreightRate, error) {
	f.createCalls++
	f.seq++
	rec.ID = "rate-" + string(rune('a'+f.seq))
	f.freight[rec.ID] = rec
	return rec, nil
}

func (f *fakeStore) GetFreightRate(_ context.Context, id string) (FreightRate, error) {
	rec, ok := f.freight[id]
	if !ok {
		return FreightRate{}, gorm.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeStore) ListFreightRatesByProvider(_ context.Context, providerID string) ([]FreightRate, error) {
	f.listCalls++
	var out []FreightRate
	for _, rec := range f.freight {
		if rec.ServiceProviderID == providerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateFreightRate(_ context.Context, id string, fields map[string]any) (FreightRate, error) {
	rec, ok := f.freight[id]
	if !ok {
		return FreightRate{}, gorm.ErrRecordNotFound
	}
	if v, ok := fields["rate"]; ok {
		rec.Rate = v.(float64)
	}
	f.freight[id] = rec
	return rec, nil
}

func (f *fakeStore) DeleteFreightRate(_ context.Context, id string) error {
	delete(f.freight, id)
	return nil
}

func price(v float64) *float64 { return &v }

func validDraft(provider string) InspectionDraft {
	return InspectionDraft{
		ServiceProviderID: provider,
		Product:           "Steel coils",
		City:              "Istanbul",
		InspectionType:    "pre-shipment",
		Price:             price(250),
	}
}

func TestCreateInspectionMissingPriceRejectedBeforeStore(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	d := validDraft("prov-1")
	d.Price = nil
	_, err := svc.CreateInspection(context.Background(), d)

	require.Error(t, err)
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
	assert.Contains(t, ae.Fields, "price")
	assert.Zero(t, store.createCalls, "validation failure must not reach the store")
}

func TestCreateInspectionDefaults(t *testing.T) {
	svc := NewService(newFakeStore())

	rec, err := svc.CreateInspection(context.Background(), validDraft("prov-1"))
	require.NoError(t, err)
	assert.Equal(t, "USD", rec.Currency)
	assert.Equal(t, "active", rec.Status)
	assert.Equal(t, 250.0, rec.Price)
	assert.NotEmpty(t, rec.ID)
}

func TestListInspectionsServedFromCache(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.CreateInspection(ctx, validDraft("prov-1"))
	require.NoError(t, err)

	_, err = svc.ListInspectionsByProvider(ctx, "prov-1")
	require.NoError(t, err)
	_, err = svc.ListInspectionsByProvider(ctx, "prov-1")
	require.NoError(t, err)

	assert.Equal(t, 1, store.listCalls, "second list must hit the cache")
}

func TestMutationsInvalidateProviderListing(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	rec, err := svc.CreateInspection(ctx, validDraft("prov-1"))
	require.NoError(t, err)

	items, err := svc.ListInspectionsByProvider(ctx, "prov-1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Update must be visible on the next list.
	_, err = svc.UpdateInspection(ctx, rec.ID, InspectionPatch{Price: price(300)})
	require.NoError(t, err)
	items, err = svc.ListInspectionsByProvider(ctx, "prov-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 300.0, items[0].Price)

	// Delete must drop the row from the next list.
	require.NoError(t, svc.DeleteInspection(ctx, rec.ID))
	items, err = svc.ListInspectionsByProvider(ctx, "prov-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDeleteInspectionLeavesOtherProvidersCached(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	a, err := svc.CreateInspection(ctx, validDraft("prov-a"))
	require.NoError(t, err)
	_, err = svc.CreateInspection(ctx, validDraft("prov-b"))
	require.NoError(t, err)

	_, err = svc.ListInspectionsByProvider(ctx, "prov-a")
	require.NoError(t, err)
	_, err = svc.ListInspectionsByProvider(ctx, "prov-b")
	require.NoError(t, err)
	calls := store.listCalls

	require.NoError(t, svc.DeleteInspection(ctx, a.ID))

	_, err = svc.ListInspectionsByProvider(ctx, "prov-b")
	require.NoError(t, err)
	assert.Equal(t, calls, store.listCalls, "prov-b listing should still be cached")
}

func TestUpdateInspectionNotFound(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.UpdateInspection(context.Background(), "missing", InspectionPatch{Price: price(1)})
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.NotFound, ae.Kind)
}

func TestUpdateInspectionEmptyPatchRejected(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	rec, err := svc.CreateInspection(context.Background(), validDraft("prov-1"))
	require.NoError(t, err)

	_, err = svc.UpdateInspection(context.Background(), rec.ID, InspectionPatch{})
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
}

func TestFreightRateRequiredFields(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)

	_, err := svc.CreateFreightRate(context.Background(), FreightDraft{
		ServiceProviderID: "prov-1",
		Origin:            "Mersin",
	})
	ae, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, apperr.Invalid, ae.Kind)
	assert.Contains(t, ae.Fields, "destination")
	assert.Contains(t, ae.Fields, "mode")
	assert.Contains(t, ae.Fields, "rate")
	assert.Zero(t, store.createCalls)
}

func TestFreightRateLifecycle(t *testing.T) {
	store := newFakeStore()
	svc := NewService(store)
	ctx := context.Background()

	rate := 1200.0
	rec, err := svc.CreateFreightRate(ctx, FreightDraft{
		ServiceProviderID: "prov-1",
		Origin:            "Mersin",
		Destination:       "Rotterdam",
		Mode:              "sea",
		Rate:              &rate,
	})
	require.NoError(t, err)
	assert.Equal(t, "container", rec.Unit)

	updated, err := svc.UpdateFreightRate(ctx, rec.ID, FreightPatch{Rate: price(1350)})
	require.NoError(t, err)
	assert.Equal(t, 1350.0, updated.Rate)

	require.NoError(t, svc.DeleteFreightRate(ctx, rec.ID))
	items, err := svc.ListFreightRatesByProvider(ctx, "prov-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
