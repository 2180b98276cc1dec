package generate_departures

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	generateDepartures "github.com/m04kA/SMC-ShuttleService/internal/usecase/generate_departures"
	"github.com/m04kA/SMC-ShuttleService/pkg/ptr"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *generateDepartures.Request) (*generateDepartures.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generateDepartures.Response), args.Error(1)
}

func (m *mockUseCase) ExecuteRollingWindow(ctx context.Context, capacity *int) (*generateDepartures.Response, error) {
	args := m.Called(ctx, capacity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*generateDepartures.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Generate(t *testing.T) {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *generateDepartures.Request) bool {
		return req.StartDate.Equal(start) && req.EndDate.Equal(end) && req.Capacity == nil
	})).Return(&generateDepartures.Response{
		StartDate: start,
		EndDate:   end,
		Created:   2,
		Problems:  []generateDepartures.Problem{{ScheduleID: ptr.Ptr(int64(5)), Reason: "route not found"}},
	}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/generate-departures",
		strings.NewReader(`{"startDate":"2026-03-02","endDate":"2026-03-09"}`)))

	require.Equal(t, http.StatusOK, w.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, "2026-03-09", resp.EndDate)
	require.Len(t, resp.Problems, 1)
	assert.Equal(t, int64(5), *resp.Problems[0].ScheduleID)
}

func TestHandler_GenerateBadDate(t *testing.T) {
	uc := new(mockUseCase)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/generate-departures",
		strings.NewReader(`{"startDate":"02/03/2026","endDate":"2026-03-09"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandler_GenerateInvalidRange(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, generateDepartures.ErrInvalidInput)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/generate-departures",
		strings.NewReader(`{"startDate":"2026-03-09","endDate":"2026-03-02"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_QuickGenerate(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("ExecuteRollingWindow", mock.Anything, (*int)(nil)).Return(&generateDepartures.Response{Created: 14}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).HandleQuick(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/departures/quick-generate", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 14, resp.Created)
	uc.AssertExpectations(t)
}

func TestHandler_QuickGenerateWithCapacity(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("ExecuteRollingWindow", mock.Anything, mock.MatchedBy(func(c *int) bool {
		return c != nil && *c == 20
	})).Return(&generateDepartures.Response{}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).HandleQuick(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/departures/quick-generate",
		strings.NewReader(`{"capacity":20}`)))

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestHandler_QuickGenerateInternalError(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("ExecuteRollingWindow", mock.Anything, mock.Anything).Return(nil, generateDepartures.ErrInternal)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).HandleQuick(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/departures/quick-generate", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
