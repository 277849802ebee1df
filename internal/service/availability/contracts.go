package availability

import (
	"context"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/userservice"
)

// AvailabilityRepository интерфейс репозитория доступности ситтеров
type AvailabilityRepository interface {
	GetByCaretakerID(ctx context.Context, caretakerID int64) (*domain.Availability, error)
	LockByCaretakerID(ctx context.Context, caretakerID int64) (*domain.Availability, error)
	Upsert(ctx context.Context, availability *domain.Availability) (*domain.Availability, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
