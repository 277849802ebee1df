package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveOverlapping(ctx context.Context, caretakerID int64, interval domain.Interval) ([]*domain.Booking, error)
}

// AvailabilityRepository интерфейс репозитория доступности ситтеров
type AvailabilityRepository interface {
	LockByCaretakerID(ctx context.Context, caretakerID int64) (*domain.Availability, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
	GetPet(ctx context.Context, petID int64) (*userservice.Pet, error)
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
	IncBookingCreated()
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
