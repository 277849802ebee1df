package models

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// Request модели

// UpdateAvailabilityRequest частичное обновление доступности ситтера.
// Nil-поля не меняются; blockedDates заменяется целиком, weeklyOpen мержится по ключам.
type UpdateAvailabilityRequest struct {
	UserID       int64           `json:"-"`
	MaxPets      *int            `json:"maxPets,omitempty"`
	BlockedDates *[]string       `json:"blockedDates,omitempty"`
	WeeklyOpen   map[string]bool `json:"weeklyOpen,omitempty"`
}

// Response модели

// AvailabilityResponse ответ с доступностью ситтера
type AvailabilityResponse struct {
	CaretakerID  int64           `json:"caretakerId"`
	MaxPets      int             `json:"maxPets"`
	BlockedDates []string        `json:"blockedDates"`
	WeeklyOpen   map[string]bool `json:"weeklyOpen"`
	UpdatedAt    *time.Time      `json:"updatedAt,omitempty"` // nil, если ситтер не настраивал доступность
}

// FromDomainAvailability конвертирует domain модель в DTO
func FromDomainAvailability(a *domain.Availability) *AvailabilityResponse {
	if a == nil {
		return nil
	}

	resp := &AvailabilityResponse{
		CaretakerID:  a.CaretakerID,
		MaxPets:      a.Capacity(),
		BlockedDates: a.BlockedDates,
		WeeklyOpen:   a.WeeklyOpen.ToMap(),
	}
	if resp.BlockedDates == nil {
		resp.BlockedDates = []string{}
	}
	if !a.UpdatedAt.IsZero() {
		updatedAt := a.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
