package region

import (
	"context"
	"errors"
	"sync"
	"testing"

	domain "trustchain-backend/internal/domain/region"
	"trustchain-backend/internal/domain/uow"
	"trustchain-backend/internal/infrastructure/geocode"
	"trustchain-backend/internal/testutil/geomock"
	"trustchain-backend/internal/testutil/regionmock"
	"trustchain-backend/internal/testutil/uowmock"
)

func f(v float64) *float64 { return &v }

// memRegionRepo mimics the store's uniqueness guarantee: Insert is atomic
// on name, so concurrent resolvers can race against it safely.
type memRegionRepo struct {
	mu     sync.Mutex
	nextID uint64
	byName map[string]*domain.Region
}

func newMemRegionRepo() *memRegionRepo {
	return &memRegionRepo{byName: map[string]*domain.Region{}}
}

func (m *memRegionRepo) GetByName(_ context.Context, name string) (*domain.Region, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.byName[name]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memRegionRepo) GetByID(_ context.Context, id uint64) (*domain.Region, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.byName {
		if r.ID == id {
			cp := *r
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memRegionRepo) Insert(_ context.Context, r *domain.Region) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byName[r.Name]; exists {
		// conflict: DO NOTHING, ID stays zero
		return nil
	}
	m.nextID++
	r.ID = m.nextID
	cp := *r
	m.byName[r.Name] = &cp
	return nil
}

func (m *memRegionRepo) UpdateCoordinates(_ context.Context, id uint64, lat, lon float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.byName {
		if r.ID == id {
			r.Latitude, r.Longitude = &lat, &lon
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memRegionRepo) Delete(_ context.Context, id uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for name, r := range m.byName {
		if r.ID == id {
			delete(m.byName, name)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memRegionRepo) NullifyBorrowers(context.Context, uint64) error { return nil }

func newUsecase(repo domain.Repository, geo *geomock.Geocoder) *Usecase {
	return NewUsecase(repo, geo, &uowmock.UoW{Repos: uow.Repos{Regions: repo}})
}

func TestResolveOrCreate_NewName_GeocodeSuccess(t *testing.T) {
	repo := newMemRegionRepo()
	geo := &geomock.Geocoder{
		LookupFn: func(_ context.Context, name string) (float64, float64, error) {
			if name != "Kenya" {
				t.Fatalf("unexpected lookup %q", name)
			}
			return -0.0236, 37.9062, nil
		},
	}
	uc := newUsecase(repo, geo)

	reg, err := uc.ResolveOrCreate(context.Background(), "Kenya", nil, nil)
	if err != nil {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	if reg.ID == 0 || reg.Name != "Kenya" {
		t.Fatalf("unexpected region: %+v", reg)
	}
	if reg.Latitude == nil || *reg.Latitude != -0.0236 {
		t.Fatalf("latitude not stored: %+v", reg)
	}
}

func TestResolveOrCreate_GeocodeFailureIsNonFatal(t *testing.T) {
	repo := newMemRegionRepo()
	geo := &geomock.Geocoder{
		LookupFn: func(context.Context, string) (float64, float64, error) {
			return 0, 0, geocode.ErrUnavailable
		},
	}
	uc := newUsecase(repo, geo)

	reg, err := uc.ResolveOrCreate(context.Background(), "Atlantis", nil, nil)
	if err != nil {
		t.Fatalf("resolution must survive geocode failure, got %v", err)
	}
	if reg.Latitude != nil || reg.Longitude != nil {
		t.Fatalf("expected nil coordinates, got %+v", reg)
	}
}

func TestResolveOrCreate_PartialCoordinatesGeocodeOnCreate(t *testing.T) {
	repo := newMemRegionRepo()
	geo := &geomock.Geocoder{
		LookupFn: func(context.Context, string) (float64, float64, error) {
			return -1.9403, 29.8739, nil
		},
	}
	uc := newUsecase(repo, geo)

	// latitude without longitude: the geocoded pair is stored instead
	reg, err := uc.ResolveOrCreate(context.Background(), "Rwanda", f(5.0), nil)
	if err != nil {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	if geo.Calls() != 1 {
		t.Fatalf("geocoder calls = %d, want 1", geo.Calls())
	}
	if reg.Latitude == nil || *reg.Latitude != -1.9403 {
		t.Fatalf("lone latitude must not be stored, got %+v", reg)
	}
	if reg.Longitude == nil || *reg.Longitude != 29.8739 {
		t.Fatalf("longitude not geocoded: %+v", reg)
	}
}

func TestResolveOrCreate_Idempotent(t *testing.T) {
	repo := newMemRegionRepo()
	uc := newUsecase(repo, &geomock.Geocoder{})

	first, err := uc.ResolveOrCreate(context.Background(), "Kenya", nil, nil)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := uc.ResolveOrCreate(context.Background(), "Kenya", nil, nil)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("ids differ: %d vs %d", first.ID, second.ID)
	}
}

func TestResolveOrCreate_CaseSensitiveNames(t *testing.T) {
	repo := newMemRegionRepo()
	uc := newUsecase(repo, &geomock.Geocoder{})

	a, _ := uc.ResolveOrCreate(context.Background(), "kenya", nil, nil)
	b, _ := uc.ResolveOrCreate(context.Background(), "Kenya", nil, nil)
	if a.ID == b.ID {
		t.Fatalf("distinct casings must be distinct regions")
	}
}

func TestResolveOrCreate_LastWriteWinsCoordinates(t *testing.T) {
	repo := newMemRegionRepo()
	uc := newUsecase(repo, &geomock.Geocoder{})

	if _, err := uc.ResolveOrCreate(context.Background(), "Kenya", f(1), f(2)); err != nil {
		t.Fatal(err)
	}
	reg, err := uc.ResolveOrCreate(context.Background(), "Kenya", f(3), f(4))
	if err != nil {
		t.Fatal(err)
	}
	if *reg.Latitude != 3 || *reg.Longitude != 4 {
		t.Fatalf("coordinates not overwritten: %+v", reg)
	}

	// one coordinate only: keep the stored pair
	reg, err = uc.ResolveOrCreate(context.Background(), "Kenya", f(9), nil)
	if err != nil {
		t.Fatal(err)
	}
	if *reg.Latitude != 3 {
		t.Fatalf("partial coordinates must not overwrite, got %+v", reg)
	}
}

func TestResolveOrCreate_ConcurrentSameName(t *testing.T) {
	repo := newMemRegionRepo()
	uc := newUsecase(repo, &geomock.Geocoder{})

	const n = 16
	ids := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg, err := uc.ResolveOrCreate(context.Background(), "Kenya", nil, nil)
			if err != nil {
				t.Errorf("caller %d: %v", i, err)
				return
			}
			ids[i] = reg.ID
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if ids[i] != ids[0] {
			t.Fatalf("caller %d got region %d, caller 0 got %d", i, ids[i], ids[0])
		}
	}
	if len(repo.byName) != 1 {
		t.Fatalf("expected exactly one region row, have %d", len(repo.byName))
	}
}

func TestResolveOrCreate_LostRaceRefetches(t *testing.T) {
	// Insert reports a conflict (ID stays 0); the resolver must return the
	// winner's row instead of a zero-id region.
	winner := &domain.Region{ID: 42, Name: "Kenya"}
	calls := 0
	repo := &regionmock.Repo{
		GetByNameFn: func(context.Context, string) (*domain.Region, error) {
			calls++
			if calls == 1 {
				return nil, domain.ErrNotFound
			}
			return winner, nil
		},
		InsertFn: func(_ context.Context, r *domain.Region) error { return nil }, // no ID assigned
	}
	uc := newUsecase0(repo)

	reg, err := uc.ResolveOrCreate(context.Background(), "Kenya", nil, nil)
	if err != nil {
		t.Fatalf("ResolveOrCreate: %v", err)
	}
	if reg.ID != 42 {
		t.Fatalf("expected winner's region 42, got %d", reg.ID)
	}
}

func newUsecase0(repo domain.Repository) *Usecase {
	return NewUsecase(repo, &geomock.Geocoder{}, &uowmock.UoW{Repos: uow.Repos{Regions: repo}})
}

func TestDelete_NotFound(t *testing.T) {
	repo := newMemRegionRepo()
	uc := newUsecase(repo, &geomock.Geocoder{})

	if err := uc.Delete(context.Background(), 99); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_NullsReferencesFirst(t *testing.T) {
	var order []string
	repo := &regionmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domain.Region, error) {
			return &domain.Region{ID: id, Name: "Kenya"}, nil
		},
		NullifyBorrowersFn: func(context.Context, uint64) error {
			order = append(order, "nullify")
			return nil
		},
		DeleteFn: func(context.Context, uint64) error {
			order = append(order, "delete")
			return nil
		},
	}
	uc := newUsecase0(repo)

	if err := uc.Delete(context.Background(), 7); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(order) != 2 || order[0] != "nullify" || order[1] != "delete" {
		t.Fatalf("unexpected order: %v", order)
	}
}
