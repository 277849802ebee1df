package update_booking_status

import "time"

// Request модель запроса на смену статуса
type Request struct {
	BookingID int64  // ID бронирования
	ActorID   int64  // ID текущего пользователя
	Status    string // Новый статус (pending, accepted, rejected, completed)
}

// Response модель ответа с бронированием после смены статуса
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
	Changed     bool // false, если запрошен текущий статус

	CreatedAt time.Time
	UpdatedAt time.Time
}
