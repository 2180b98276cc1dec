package generate_departures

import "time"

// Request модель запроса генерации рейсов
type Request struct {
	StartDate time.Time // Первая дата (включительно)
	EndDate   time.Time // Последняя дата (включительно)
	Capacity  *int      // Переопределение вместимости для всех создаваемых рейсов
}

// Response итог генерации. Частичный успех не является ошибкой
type Response struct {
	StartDate       time.Time
	EndDate         time.Time
	Created         int
	SkippedExisting int
	Failed          int
	Problems        []Problem
}

// Problem расписание или пачка, которые не удалось обработать
type Problem struct {
	ScheduleID *int64 // nil для ошибок пачки
	Reason     string
}
