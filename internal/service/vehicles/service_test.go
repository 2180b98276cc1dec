package vehicles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	vehicleRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-ShuttleService/internal/service/vehicles/models"
	"github.com/m04kA/SMC-ShuttleService/pkg/ptr"
)

type fakeRepo struct {
	vehicles map[int64]domain.Vehicle
	refs     map[int64]int
	nextID   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		vehicles: map[int64]domain.Vehicle{
			1: {ID: 1, Name: "Big bus", Capacity: 20, PriceMultiplier: 1, IsActive: true},
			2: {ID: 2, Name: "Spare van", Capacity: 8, PriceMultiplier: 1, IsActive: true},
		},
		refs:   map[int64]int{1: 3},
		nextID: 2,
	}
}

func (f *fakeRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	f.nextID++
	v.ID = f.nextID
	f.vehicles[v.ID] = *v
	return v, nil
}

func (f *fakeRepo) Update(_ context.Context, v *domain.Vehicle) error {
	if _, ok := f.vehicles[v.ID]; !ok {
		return vehicleRepo.ErrVehicleNotFound
	}
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	return &v, nil
}

func (f *fakeRepo) CountReferences(_ context.Context, id int64) (int, error) {
	return f.refs[id], nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.vehicles[id]; !ok {
		return vehicleRepo.ErrVehicleNotFound
	}
	delete(f.vehicles, id)
	return nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_Defaults(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeTx{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.VehicleRequest{Name: " Minibus ", Capacity: 15})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "Minibus", resp.Name)
	assert.Equal(t, 1.0, resp.PriceMultiplier)
	assert.True(t, resp.IsActive)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeRepo(), fakeTx{}, nopLogger{})

	for _, req := range []*models.VehicleRequest{
		{Name: "", Capacity: 10},
		{Name: "Bus", Capacity: 0},
		{Name: "Bus", Capacity: domain.MaxCapacity + 1},
		{Name: "Bus", Capacity: 10, PriceMultiplier: ptr.Ptr(0.0)},
		{Name: "Bus", Capacity: 10, PriceMultiplier: ptr.Ptr(11.0)},
	} {
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestUpdate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTx{}, nopLogger{})

	resp, err := svc.Update(context.Background(), 2, &models.VehicleRequest{Name: "Spare van", Capacity: 9, IsActive: ptr.Ptr(false)})
	require.NoError(t, err)
	assert.Equal(t, 9, resp.Capacity)
	assert.False(t, resp.IsActive)

	_, err = svc.Update(context.Background(), 99, &models.VehicleRequest{Name: "Ghost", Capacity: 9})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestDelete_AssignedVehicleIsRefusedAndUnchanged(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTx{}, nopLogger{})
	before := repo.vehicles[1]

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrVehicleInUse)
	assert.Equal(t, before, repo.vehicles[1])
	assert.Len(t, repo.vehicles, 2)
}

func TestDelete_RaceCaughtByForeignKey(t *testing.T) {
	repo := &racingRepo{fakeRepo: newFakeRepo()}
	svc := NewService(repo, fakeTx{}, nopLogger{})

	err := svc.Delete(context.Background(), 2)

	assert.ErrorIs(t, err, ErrVehicleInUse)
}

func TestDelete_Unassigned(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, fakeTx{}, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.NotContains(t, repo.vehicles, int64(2))

	assert.ErrorIs(t, svc.Delete(context.Background(), 2), ErrVehicleNotFound)
}

// racingRepo моделирует назначение автобуса между проверкой ссылок и удалением
type racingRepo struct{ *fakeRepo }

func (r *racingRepo) Delete(context.Context, int64) error {
	return vehicleRepo.ErrVehicleInUse
}
