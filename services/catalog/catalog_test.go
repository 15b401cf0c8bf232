package catalog

import (
	"sort"
	"strings"
	"testing"

	"huzla/models"
	"huzla/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memServiceRepo struct {
	services map[string]*models.Service
}

func newMemServiceRepo() *memServiceRepo {
	return &memServiceRepo{services: make(map[string]*models.Service)}
}

func (r *memServiceRepo) GetByID(id string) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memServiceRepo) List(filter models.ServiceFilter) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		if filter.MinPrice != nil && s.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && s.Price > *filter.MaxPrice {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(s.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (r *memServiceRepo) ListByProvider(providerID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.ProviderID == providerID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memServiceRepo) Create(s *models.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *memServiceRepo) Update(s *models.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *memServiceRepo) Delete(id string) error {
	delete(r.services, id)
	return nil
}

func validInput() ServiceInput {
	return ServiceInput{
		Title:       "Deep house cleaning",
		Description: "Full apartment cleaning with eco-friendly products and supplies.",
		Category:    "cleaning",
		Price:       49.99,
		Duration:    120,
		Availability: []models.DayAvailability{
			{Day: "monday", Slots: []models.SlotWindow{{Start: "09:00", End: "11:00"}}},
		},
	}
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestCreateListing(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}

	created, err := svc.Create("prov-1", validInput())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "prov-1", created.ProviderID)
	assert.Equal(t, 49.99, created.Price)
}

func TestCreateListingValidation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}

	cases := []struct {
		name   string
		mutate func(*ServiceInput)
	}{
		{"negative price", func(in *ServiceInput) { in.Price = -1 }},
		{"three decimals", func(in *ServiceInput) { in.Price = 19.999 }},
		{"duration too short", func(in *ServiceInput) { in.Duration = 10 }},
		{"duration too long", func(in *ServiceInput) { in.Duration = 481 }},
		{"too many images", func(in *ServiceInput) { in.Images = make([]string, 11) }},
		{"bad weekday", func(in *ServiceInput) { in.Availability[0].Day = "funday" }},
		{"duplicate weekday", func(in *ServiceInput) {
			in.Availability = append(in.Availability, in.Availability[0])
		}},
		{"inverted slot", func(in *ServiceInput) {
			in.Availability[0].Slots = []models.SlotWindow{{Start: "11:00", End: "09:00"}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.Create("prov-1", in)
			require.Error(t, err)
			var appErr *utils.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.Code)
		})
	}
}

func TestCreateListingPriceDecimals(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}

	// 2-decimal prices must pass regardless of float representation.
	for _, price := range []float64{0.07, 1.15, 4.35, 19.99, 29.99, 49.99, 50.00, 123.45, 999.99} {
		in := validInput()
		in.Price = price
		_, err := svc.Create("prov-1", in)
		assert.NoError(t, err, "price %v should be accepted", price)
	}

	for _, price := range []float64{19.999, 0.001, 4.351} {
		in := validInput()
		in.Price = price
		_, err := svc.Create("prov-1", in)
		assert.Error(t, err, "price %v should be rejected", price)
	}
}

func TestCreateListingFreeService(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}

	in := validInput()
	in.Price = 0
	created, err := svc.Create("prov-1", in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, created.Price)
}

func TestListFilters(t *testing.T) {
	repo := newMemServiceRepo()
	svc := &DefaultCatalogService{Repo: repo}

	mk := func(title, category string, price float64) {
		in := validInput()
		in.Title = title
		in.Category = category
		in.Price = price
		_, err := svc.Create("prov-1", in)
		require.NoError(t, err)
	}
	mk("Basic cleaning", "cleaning", 30)
	mk("Premium cleaning", "cleaning", 80)
	mk("Garden trimming", "gardening", 45)

	all, err := svc.List(models.ServiceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	cleaning, err := svc.List(models.ServiceFilter{Category: "cleaning"})
	require.NoError(t, err)
	assert.Len(t, cleaning, 2)

	cheap, err := svc.List(models.ServiceFilter{MaxPrice: floatPtr(50)})
	require.NoError(t, err)
	assert.Len(t, cheap, 2)

	band, err := svc.List(models.ServiceFilter{MinPrice: floatPtr(40), MaxPrice: floatPtr(60)})
	require.NoError(t, err)
	require.Len(t, band, 1)
	assert.Equal(t, "Garden trimming", band[0].Title)
}

func TestGetByIDMissing(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}
	_, err := svc.GetByID("missing")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestUpdateListing(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}
	created, err := svc.Create("prov-1", validInput())
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, "prov-1", models.ServiceUpdate{
		Price: floatPtr(59.50),
	})
	require.NoError(t, err)
	assert.Equal(t, 59.50, updated.Price)
	assert.Equal(t, created.Title, updated.Title, "nil fields stay unchanged")

	// The merged record is re-validated.
	_, err = svc.Update(created.ID, "prov-1", models.ServiceUpdate{Duration: intPtr(5)})
	require.Error(t, err)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestUpdateListingOwnership(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newMemServiceRepo()}
	created, err := svc.Create("prov-1", validInput())
	require.NoError(t, err)

	_, err = svc.Update(created.ID, "prov-2", models.ServiceUpdate{Title: strPtr("Hijacked title")})
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.Update("missing", "prov-1", models.ServiceUpdate{})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDeleteListing(t *testing.T) {
	repo := newMemServiceRepo()
	svc := &DefaultCatalogService{Repo: repo}
	created, err := svc.Create("prov-1", validInput())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(created.ID, "prov-2"), ErrNotOwner)
	require.NoError(t, svc.Delete(created.ID, "prov-1"))
	assert.ErrorIs(t, svc.Delete(created.ID, "prov-1"), ErrServiceNotFound)
}
