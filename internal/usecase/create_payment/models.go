package create_payment

import "time"

// Request модель запроса на создание платежа
type Request struct {
	ActorID   int64    // ID текущего пользователя (владелец)
	BookingID int64    // ID бронирования
	Amount    *float64 // Сумма; если не указана, берётся цена бронирования
	Method    string   // card или bank_transfer, по умолчанию card
}

// Response модель созданного платежа
type Response struct {
	ID              int64
	BookingID       int64
	OwnerID         int64
	CaretakerID     int64
	Amount          float64
	PlatformFee     float64
	CaretakerPayout float64
	Status          string
	Method          string
	TransactionID   *string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}
