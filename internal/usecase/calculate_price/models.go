package calculate_price

import "github.com/m04kA/SMC-ShuttleService/internal/domain"

// Request модель запроса расчета цены
type Request struct {
	CustomerType   string // REGULAR по умолчанию
	PassengerCount int    // 1 по умолчанию
	ExtraLuggage   int
	Pets           int
	RoundTrip      bool
}

// Response расчет цены и активные тарифы (по типу клиента)
type Response struct {
	Quote domain.Quote
	Fees  domain.FeeSettings
	Tiers []*domain.PricingTier
}
