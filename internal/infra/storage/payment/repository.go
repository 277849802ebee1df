package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PetCareService/pkg/psqlbuilder"
)

const (
	tablePayments = "payments"

	// pgUniqueViolation код ошибки PostgreSQL при нарушении уникальности
	pgUniqueViolation = "23505"
)

var paymentColumns = []string{
	"id",
	"booking_id",
	"owner_id",
	"caretaker_id",
	"amount",
	"platform_fee",
	"caretaker_payout",
	"status",
	"payment_method",
	"transaction_id",
	"created_at",
	"completed_at",
	"refunded_at",
}

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает платёж. Один платёж на бронирование гарантируется
// уникальным индексом по booking_id.
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tablePayments).
		Columns(
			"booking_id",
			"owner_id",
			"caretaker_id",
			"amount",
			"platform_fee",
			"caretaker_payout",
			"status",
			"payment_method",
		).
		Values(
			payment.BookingID,
			payment.OwnerID,
			payment.CaretakerID,
			payment.Amount,
			payment.PlatformFee,
			payment.CaretakerPayout,
			payment.Status,
			payment.Method,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrPaymentAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return payment, nil
}

// GetByID получает платёж по ID.
// Внутри транзакции строка блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByBookingID получает платёж по ID бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Payment, error) {
	return r.getOne(ctx, "GetByBookingID", squirrel.Eq{"booking_id": bookingID})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(paymentColumns...).
		From(tablePayments).
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	payment, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan payment: %w", ErrScanRow, op, err)
	}

	return payment, nil
}

// GetByParticipant получает платежи, где пользователь плательщик или получатель.
// Новые платежи первыми.
func (r *Repository) GetByParticipant(ctx context.Context, userID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From(tablePayments).
		Where(squirrel.Or{
			squirrel.Eq{"owner_id": userID},
			squirrel.Eq{"caretaker_id": userID},
		}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByParticipant - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByParticipant - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByParticipant - scan row: %w", ErrScanRow, err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByParticipant - rows error: %w", ErrScanRow, err)
	}

	return payments, nil
}

// MarkCompleted переводит платёж pending -> completed и сохраняет ID транзакции
func (r *Repository) MarkCompleted(ctx context.Context, id int64, transactionID string, at time.Time) (*domain.Payment, error) {
	return r.updateStatus(ctx, "MarkCompleted", id, domain.PaymentPending, domain.PaymentCompleted, map[string]interface{}{
		"transaction_id": transactionID,
		"completed_at":   at,
	})
}

// MarkRefunded переводит платёж completed -> refunded
func (r *Repository) MarkRefunded(ctx context.Context, id int64, at time.Time) (*domain.Payment, error) {
	return r.updateStatus(ctx, "MarkRefunded", id, domain.PaymentCompleted, domain.PaymentRefunded, map[string]interface{}{
		"refunded_at": at,
	})
}

func (r *Repository) updateStatus(
	ctx context.Context,
	op string,
	id int64,
	from, to domain.PaymentStatus,
	fields map[string]interface{},
) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tablePayments).
		Set("status", to).
		SetMap(fields).
		Where(squirrel.Eq{"id": id, "status": from}).
		Suffix("RETURNING " + strings.Join(paymentColumns, ", ")).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	payment, err := scanPayment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStatusConflict
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	return payment, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPayment(row rowScanner) (*domain.Payment, error) {
	var payment domain.Payment
	var transactionID sql.NullString
	var completedAt, refundedAt sql.NullTime

	err := row.Scan(
		&payment.ID,
		&payment.BookingID,
		&payment.OwnerID,
		&payment.CaretakerID,
		&payment.Amount,
		&payment.PlatformFee,
		&payment.CaretakerPayout,
		&payment.Status,
		&payment.Method,
		&transactionID,
		&payment.CreatedAt,
		&completedAt,
		&refundedAt,
	)
	if err != nil {
		return nil, err
	}

	if transactionID.Valid {
		payment.TransactionID = &transactionID.String
	}
	if completedAt.Valid {
		payment.CompletedAt = &completedAt.Time
	}
	if refundedAt.Valid {
		payment.RefundedAt = &refundedAt.Time
	}

	return &payment, nil
}
