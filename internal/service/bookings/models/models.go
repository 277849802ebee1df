package models

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя (как владельца или ситтера)
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetCaretakerBookingsRequest запрос на получение расписания ситтера
type GetCaretakerBookingsRequest struct {
	UserID          int64      `json:"userId"`
	Status          *string    `json:"status,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	IncludeInactive bool       `json:"includeInactive"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           int64     `json:"id"`
	OwnerID      int64     `json:"ownerId"`
	CaretakerID  int64     `json:"caretakerId"`
	ServiceID    int64     `json:"serviceId"`
	PetID        int64     `json:"petId"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Status       string    `json:"status"`
	TotalPrice   float64   `json:"totalPrice"`
	DurationDays int       `json:"durationDays"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		CaretakerID:  b.CaretakerID,
		ServiceID:    b.ServiceID,
		PetID:        b.PetID,
		Start:        b.Start,
		End:          b.End,
		Status:       string(b.Status),
		TotalPrice:   b.TotalPrice,
		DurationDays: domain.DurationDays(b.Start, b.End),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
