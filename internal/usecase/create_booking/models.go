package create_booking

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	DepartureID    int64   // ID рейса
	UserID         *int64  // ID зарегистрированного пользователя (nil для гостя)
	GuestName      *string // Имя гостя
	GuestEmail     *string // Email гостя
	GuestPhone     *string // Телефон гостя (опционально)
	CustomerType   string  // Тип клиента (REGULAR по умолчанию)
	PassengerCount int     // Количество пассажиров
	ExtraLuggage   int     // Дополнительный багаж
	Pets           int     // Животные
	RoundTrip      bool    // Туда и обратно
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             int64
	Reference      string
	DepartureID    int64
	DepartureDate  time.Time
	UserID         *int64
	GuestName      *string
	GuestEmail     *string
	GuestPhone     *string
	PricingTierID  *int64
	CustomerType   string
	PassengerCount int
	ExtraLuggage   int
	Pets           int
	RoundTrip      bool
	TotalPrice     float64
	Status         string
	Quote          domain.Quote // Расчет цены на момент бронирования
	CreatedAt      time.Time
}
