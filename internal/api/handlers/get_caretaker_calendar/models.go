package get_caretaker_calendar

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	getCalendar "github.com/m04kA/SMC-PetCareService/internal/usecase/get_caretaker_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	CaretakerID int64         `json:"caretakerId"`
	MaxPets     int           `json:"maxPets"`
	Days        []CalendarDay `json:"days"`
}

// CalendarDay загрузка ситтера за день
type CalendarDay struct {
	Date    string `json:"date"`
	Blocked bool   `json:"blocked"`
	Open    bool   `json:"open"`
	Booked  int    `json:"booked"`
	Free    int    `json:"free"`
}

// ToUseCaseRequest парсит даты периода (YYYY-MM-DD) и формирует запрос к use case
func ToUseCaseRequest(caretakerID int64, fromStr, toStr string) (*getCalendar.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &getCalendar.Request{
		CaretakerID: caretakerID,
		From:        from,
		To:          to,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = CalendarDay{
			Date:    d.Date,
			Blocked: d.Blocked,
			Open:    d.Open,
			Booked:  d.Booked,
			Free:    d.Free,
		}
	}

	return &CalendarResponse{
		CaretakerID: resp.CaretakerID,
		MaxPets:     resp.MaxPets,
		Days:        days,
	}
}
