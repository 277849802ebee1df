package availability

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PetCareService/pkg/psqlbuilder"
)

const tableAvailability = "caretaker_availability"

var availabilityColumns = []string{
	"caretaker_id",
	"max_pets",
	"blocked_dates",
	"weekly_open",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с настройками доступности ситтеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCaretakerID получает настройки доступности ситтера.
// Если записи нет, возвращает ErrAvailabilityNotFound (дефолты подставляет сервис).
func (r *Repository) GetByCaretakerID(ctx context.Context, caretakerID int64) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From(tableAvailability).
		Where(squirrel.Eq{"caretaker_id": caretakerID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCaretakerID - build select query: %v", ErrBuildQuery, err)
	}

	availability, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAvailabilityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCaretakerID - scan availability: %w", ErrScanRow, err)
	}

	return availability, nil
}

// LockByCaretakerID блокирует строку доступности ситтера до конца транзакции.
// Если строки нет, сначала создаёт её с дефолтными значениями, чтобы
// конкурирующие создания бронирований у одного ситтера выполнялись по очереди.
func (r *Repository) LockByCaretakerID(ctx context.Context, caretakerID int64) (*domain.Availability, error) {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil, ErrTransactionRequired
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	defaults := domain.DefaultAvailability(caretakerID)
	weeklyJSON, err := json.Marshal(defaults.WeeklyOpen)
	if err != nil {
		return nil, fmt.Errorf("%w: LockByCaretakerID: %v", ErrEncodeWeekly, err)
	}

	insertQuery, insertArgs, err := psqlbuilder.Insert(tableAvailability).
		Columns("caretaker_id", "max_pets", "blocked_dates", "weekly_open").
		Values(caretakerID, defaults.MaxPets, pq.Array(defaults.BlockedDates), weeklyJSON).
		Suffix("ON CONFLICT (caretaker_id) DO NOTHING").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LockByCaretakerID - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return nil, fmt.Errorf("%w: LockByCaretakerID - ensure row: %w", ErrExecQuery, err)
	}

	query, args, err := psqlbuilder.Select(availabilityColumns...).
		From(tableAvailability).
		Where(squirrel.Eq{"caretaker_id": caretakerID}).
		Suffix("FOR UPDATE").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: LockByCaretakerID - build select query: %v", ErrBuildQuery, err)
	}

	availability, err := scanAvailability(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: LockByCaretakerID - scan availability: %w", ErrScanRow, err)
	}

	return availability, nil
}

// Upsert создает или полностью заменяет настройки доступности ситтера
func (r *Repository) Upsert(ctx context.Context, availability *domain.Availability) (*domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weeklyJSON, err := json.Marshal(availability.WeeklyOpen)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert: %v", ErrEncodeWeekly, err)
	}

	blocked := availability.BlockedDates
	if blocked == nil {
		blocked = []string{}
	}

	query, args, err := psqlbuilder.Insert(tableAvailability).
		Columns("caretaker_id", "max_pets", "blocked_dates", "weekly_open").
		Values(availability.CaretakerID, availability.MaxPets, pq.Array(blocked), weeklyJSON).
		Suffix(`ON CONFLICT (caretaker_id) DO UPDATE SET
			max_pets = EXCLUDED.max_pets,
			blocked_dates = EXCLUDED.blocked_dates,
			weekly_open = EXCLUDED.weekly_open,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %w", ErrExecQuery, err)
	}

	saved := *availability
	saved.BlockedDates = blocked
	saved.CreatedAt = createdAt.Time
	saved.UpdatedAt = updatedAt.Time

	return &saved, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAvailability(row rowScanner) (*domain.Availability, error) {
	var availability domain.Availability
	var blocked pq.StringArray
	var weeklyJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&availability.CaretakerID,
		&availability.MaxPets,
		&blocked,
		&weeklyJSON,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	availability.BlockedDates = []string(blocked)
	if availability.BlockedDates == nil {
		availability.BlockedDates = []string{}
	}

	availability.WeeklyOpen = domain.AllDaysOpen()
	if len(weeklyJSON) > 0 {
		if err := json.Unmarshal(weeklyJSON, &availability.WeeklyOpen); err != nil {
			return nil, fmt.Errorf("decode weekly_open: %v", err)
		}
	}

	availability.CreatedAt = createdAt.Time
	availability.UpdatedAt = updatedAt.Time

	return &availability, nil
}
