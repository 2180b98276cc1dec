package generate_departures

import (
	"time"

	"github.com/m04kA/SMC-ShuttleService/internal/domain"
	generateDepartures "github.com/m04kA/SMC-ShuttleService/internal/usecase/generate_departures"
)

// GenerateRequest HTTP request model
type GenerateRequest struct {
	StartDate string `json:"startDate"` // "2026-03-02"
	EndDate   string `json:"endDate"`   // включительно
	Capacity  *int   `json:"capacity,omitempty"`
}

// QuickGenerateRequest HTTP request model. Тело необязательно
type QuickGenerateRequest struct {
	Capacity *int `json:"capacity,omitempty"`
}

// GenerateResponse HTTP response model
type GenerateResponse struct {
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	Created         int       `json:"created"`
	SkippedExisting int       `json:"skippedExisting"`
	Failed          int       `json:"failed"`
	Problems        []Problem `json:"problems"`
}

type Problem struct {
	ScheduleID *int64 `json:"scheduleId,omitempty"`
	Reason     string `json:"reason"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateRequest) ToUseCaseRequest() (*generateDepartures.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &generateDepartures.Request{
		StartDate: start,
		EndDate:   end,
		Capacity:  r.Capacity,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateDepartures.Response) *GenerateResponse {
	problems := make([]Problem, len(resp.Problems))
	for i, p := range resp.Problems {
		problems[i] = Problem{ScheduleID: p.ScheduleID, Reason: p.Reason}
	}

	return &GenerateResponse{
		StartDate:       resp.StartDate.Format(domain.DateFormat),
		EndDate:         resp.EndDate.Format(domain.DateFormat),
		Created:         resp.Created,
		SkippedExisting: resp.SkippedExisting,
		Failed:          resp.Failed,
		Problems:        problems,
	}
}
