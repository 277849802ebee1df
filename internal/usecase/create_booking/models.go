package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования
type Request struct {
	OwnerID     int64     // ID владельца (текущий пользователь)
	CaretakerID int64     // ID ситтера
	ServiceID   int64     // ID услуги ситтера
	PetID       int64     // ID питомца владельца
	Start       time.Time // Начало интервала
	End         time.Time // Конец интервала (не включительно)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	OwnerID     int64
	CaretakerID int64
	ServiceID   int64
	PetID       int64
	Start       time.Time
	End         time.Time
	Status      string
	TotalPrice  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
