package routes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	routeRepo "github.com/m04kA/SMC-ShuttleService/internal/infra/storage/route"
	"github.com/m04kA/SMC-ShuttleService/internal/service/routes/models"
	"github.com/m04kA/SMC-ShuttleService/pkg/ptr"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Create(ctx context.Context, route *domain.Route) (*domain.Route, error) {
	args := m.Called(ctx, route)
	if v := args.Get(0); v != nil {
		return v.(*domain.Route), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, route *domain.Route) error {
	return m.Called(ctx, route).Error(0)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Route), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) ExistsByName(ctx context.Context, name string, excludeID *int64) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

type nopCache struct{}

func (nopCache) InvalidateDepartures(context.Context) error { return nil }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var airport = &models.RouteRequest{Name: "Airport Express", Origin: "Town", Destination: "Airport", DurationMinutes: 45}

func TestCreate(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ExistsByName", mock.Anything, "Airport Express", (*int64)(nil)).Return(false, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(r *domain.Route) bool {
		return r.Name == "Airport Express" && r.IsActive
	})).Return(&domain.Route{ID: 1, Name: "Airport Express", IsActive: true}, nil)

	resp, err := NewService(repo, nopCache{}, nopLogger{}).Create(context.Background(), airport)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	repo.AssertExpectations(t)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ExistsByName", mock.Anything, "Airport Express", (*int64)(nil)).Return(true, nil)

	_, err := NewService(repo, nopCache{}, nopLogger{}).Create(context.Background(), airport)

	assert.ErrorIs(t, err, ErrRouteNameTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_DuplicateNameRace(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ExistsByName", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, routeRepo.ErrRouteNameTaken)

	_, err := NewService(repo, nopCache{}, nopLogger{}).Create(context.Background(), airport)

	assert.ErrorIs(t, err, ErrRouteNameTaken)
}

func TestUpdate(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ExistsByName", mock.Anything, "Airport Express", ptr.Ptr(int64(4))).Return(false, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Route) bool {
		return r.ID == 4 && !r.IsActive
	})).Return(nil)
	repo.On("GetByID", mock.Anything, int64(4)).Return(&domain.Route{ID: 4, Name: "Airport Express"}, nil)

	req := *airport
	req.IsActive = ptr.Ptr(false)
	resp, err := NewService(repo, nopCache{}, nopLogger{}).Update(context.Background(), 4, &req)

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ID)
	repo.AssertExpectations(t)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ExistsByName", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(routeRepo.ErrRouteNotFound)

	_, err := NewService(repo, nopCache{}, nopLogger{}).Update(context.Background(), 4, airport)

	assert.ErrorIs(t, err, ErrRouteNotFound)
}

func TestValidation(t *testing.T) {
	svc := NewService(&mockRepo{}, nopCache{}, nopLogger{})

	for _, req := range []*models.RouteRequest{
		{Origin: "A", Destination: "B", DurationMinutes: 10},
		{Name: "X", Destination: "B", DurationMinutes: 10},
		{Name: "X", Origin: "A", Destination: "B"},
	} {
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
