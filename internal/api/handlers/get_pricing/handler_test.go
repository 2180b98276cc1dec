package get_pricing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	calculatePrice "github.com/m04kA/SMC-ShuttleService/internal/usecase/calculate_price"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *calculatePrice.Request) (*calculatePrice.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calculatePrice.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_RoundTripQuote(t *testing.T) {
	tierID := int64(1)
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &calculatePrice.Request{
		CustomerType:   "regular",
		PassengerCount: 2,
		ExtraLuggage:   0,
		Pets:           0,
		RoundTrip:      true,
	}).Return(&calculatePrice.Response{
		Quote: domain.Quote{
			CustomerType:   domain.CustomerRegular,
			RequestedType:  domain.CustomerRegular,
			PricingTierID:  &tierID,
			BasePrice:      35,
			PassengerCount: 2,
			Subtotal:       70,
			RoundTrip:      true,
			Total:          126,
			Savings:        14,
		},
		Tiers: []*domain.PricingTier{{ID: 1, CustomerType: domain.CustomerRegular, BasePrice: 35, IsActive: true}},
	}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet,
		"/api/v1/pricing?customerType=regular&passengerCount=2&roundTrip=true", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp PricingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 126.0, resp.Total)
	assert.Equal(t, 14.0, resp.Savings)
	require.Len(t, resp.Tiers, 1)
	assert.Equal(t, "REGULAR", resp.Tiers[0].CustomerType)
	uc.AssertExpectations(t)
}

func TestHandler_InvalidQuery(t *testing.T) {
	for _, q := range []string{"passengerCount=two", "pets=1.5", "roundTrip=maybe"} {
		uc := new(mockUseCase)
		w := httptest.NewRecorder()
		NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/pricing?"+q, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	}
}

func TestHandler_ValidationError(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, calculatePrice.ErrInvalidInput)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/pricing?pets=-1", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, calculatePrice.ErrInternal)

	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/pricing", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
