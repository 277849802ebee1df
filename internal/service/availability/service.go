package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/availability"
	userClient "github.com/m04kA/SMC-PetCareService/internal/integrations/userservice"
	"github.com/m04kA/SMC-PetCareService/internal/service/availability/models"
)

// Service сервис для работы с доступностью ситтеров
type Service struct {
	availabilityRepo AvailabilityRepository
	userClient       UserServiceClient
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		userClient:       userClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// Get получает доступность ситтера.
// Публичный метод; если ситтер ничего не настраивал, возвращает значения по умолчанию.
func (s *Service) Get(ctx context.Context, caretakerID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("Get: fetching availability for caretaker=%d", caretakerID)

	if caretakerID <= 0 {
		return nil, fmt.Errorf("%w: caretakerID must be positive", ErrInvalidInput)
	}

	availability, err := s.availabilityRepo.GetByCaretakerID(ctx, caretakerID)
	if err != nil {
		if !errors.Is(err, availabilityRepo.ErrAvailabilityNotFound) {
			s.logger.Error("Get: repository error for caretaker=%d: %v", caretakerID, err)
			return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Get: using default availability for caretaker=%d", caretakerID)
		availability = domain.DefaultAvailability(caretakerID)
	}

	return models.FromDomainAvailability(availability), nil
}

// Update частично обновляет доступность текущего пользователя.
// Доступно только ситтерам.
func (s *Service) Update(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error) {
	s.logger.Info("Update: updating availability for user=%d", req.UserID)

	// 1. Валидируем входные данные до обращения к хранилищу
	var blockedDates []string
	if req.MaxPets != nil {
		if err := domain.ValidateMaxPets(*req.MaxPets); err != nil {
			s.logger.Warn("Update: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	if req.BlockedDates != nil {
		normalized, err := domain.NormalizeBlockedDates(*req.BlockedDates)
		if err != nil {
			s.logger.Warn("Update: validation failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		blockedDates = normalized
	}
	if _, err := domain.AllDaysOpen().Merge(req.WeeklyOpen); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Менять доступность может только ситтер
	user, err := s.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("Update: user=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: failed to get user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if !user.IsCaretaker {
		s.logger.Warn("Update: user=%d is not a caretaker", req.UserID)
		return nil, ErrAccessDenied
	}

	// 3. Блокируем текущую запись, применяем изменения и сохраняем
	var saved *domain.Availability
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.availabilityRepo.LockByCaretakerID(txCtx, req.UserID)
		if err != nil {
			return fmt.Errorf("%w: failed to lock availability: %v", ErrInternal, err)
		}

		if req.MaxPets != nil {
			current.MaxPets = *req.MaxPets
		}
		if req.BlockedDates != nil {
			current.BlockedDates = blockedDates
		}
		current.WeeklyOpen, err = current.WeeklyOpen.Merge(req.WeeklyOpen)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		saved, err = s.availabilityRepo.Upsert(txCtx, current)
		if err != nil {
			return fmt.Errorf("%w: failed to save availability: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Update: failed for user=%d: %v", req.UserID, err)
		if errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("Update: caretaker=%d now has max_pets=%d, %d blocked dates",
		saved.CaretakerID, saved.MaxPets, len(saved.BlockedDates))
	return models.FromDomainAvailability(saved), nil
}
