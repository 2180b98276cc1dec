package get_pricing

import (
	"fmt"
	"net/url"
	"strconv"

	calculatePrice "github.com/m04kA/SMC-ShuttleService/internal/usecase/calculate_price"
)

// PricingResponse HTTP response model
type PricingResponse struct {
	CustomerType      string  `json:"customerType"`
	RequestedType     string  `json:"requestedCustomerType"`
	PricingTierID     *int64  `json:"pricingTierId,omitempty"`
	BasePrice         float64 `json:"basePrice"`
	PassengerCount    int     `json:"passengerCount"`
	PassengerSubtotal float64 `json:"passengerSubtotal"`
	ExtraLuggage      int     `json:"extraLuggage"`
	ExtraLuggageFee   float64 `json:"extraLuggageFee"`
	LuggageSubtotal   float64 `json:"luggageSubtotal"`
	Pets              int     `json:"pets"`
	PetFee            float64 `json:"petFee"`
	PetSubtotal       float64 `json:"petSubtotal"`
	Subtotal          float64 `json:"subtotal"`
	RoundTrip         bool    `json:"roundTrip"`
	Total             float64 `json:"total"`
	Savings           float64 `json:"savings"`
	Tiers             []Tier  `json:"pricingTiers"`
}

// Tier активный тариф
type Tier struct {
	ID           int64   `json:"id"`
	CustomerType string  `json:"customerType"`
	BasePrice    float64 `json:"basePrice"`
}

// ToUseCaseRequest создает запрос use case из query параметров.
// Отсутствующие числовые параметры остаются нулевыми, значения по умолчанию подставляет use case
func ToUseCaseRequest(query url.Values) (*calculatePrice.Request, error) {
	req := &calculatePrice.Request{
		CustomerType: query.Get("customerType"),
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"passengerCount", &req.PassengerCount},
		{"extraLuggage", &req.ExtraLuggage},
		{"pets", &req.Pets},
	}
	for _, p := range ints {
		s := query.Get(p.name)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
		*p.dst = v
	}

	if s := query.Get("roundTrip"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("roundTrip: %w", err)
		}
		req.RoundTrip = v
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculatePrice.Response) *PricingResponse {
	q := resp.Quote

	tiers := make([]Tier, len(resp.Tiers))
	for i, t := range resp.Tiers {
		tiers[i] = Tier{
			ID:           t.ID,
			CustomerType: string(t.CustomerType),
			BasePrice:    t.BasePrice,
		}
	}

	return &PricingResponse{
		CustomerType:      string(q.CustomerType),
		RequestedType:     string(q.RequestedType),
		PricingTierID:     q.PricingTierID,
		BasePrice:         q.BasePrice,
		PassengerCount:    q.PassengerCount,
		PassengerSubtotal: q.PassengerSubtotal,
		ExtraLuggage:      q.ExtraLuggage,
		ExtraLuggageFee:   q.ExtraLuggageFee,
		LuggageSubtotal:   q.LuggageSubtotal,
		Pets:              q.Pets,
		PetFee:            q.PetFee,
		PetSubtotal:       q.PetSubtotal,
		Subtotal:          q.Subtotal,
		RoundTrip:         q.RoundTrip,
		Total:             q.Total,
		Savings:           q.Savings,
		Tiers:             tiers,
	}
}
