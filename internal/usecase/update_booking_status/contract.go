package update_booking_status

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetActiveOverlapping(ctx context.Context, caretakerID int64, interval domain.Interval) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория доступности ситтеров
type AvailabilityRepository interface {
	LockByCaretakerID(ctx context.Context, caretakerID int64) (*domain.Availability, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс канала уведомлений
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncBookingTransition(from, to string)
	IncCapacityRejection(stage string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
