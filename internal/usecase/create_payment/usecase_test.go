package create_payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/booking"
	paymentRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
	"github.com/m04kA/SMC-PetCareService/pkg/ptr"
)

const (
	ownerID     = int64(1)
	caretakerID = int64(2)
)

type fakeBookingRepo struct {
	items map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

type fakePaymentRepo struct {
	byBooking map[int64]*domain.Payment
	nextID    int64
}

func (r *fakePaymentRepo) Create(_ context.Context, p *domain.Payment) (*domain.Payment, error) {
	if _, ok := r.byBooking[p.BookingID]; ok {
		return nil, paymentRepo.ErrPaymentAlreadyExists
	}
	r.nextID++
	saved := *p
	saved.ID = r.nextID
	r.byBooking[p.BookingID] = &saved
	return &saved, nil
}

func (r *fakePaymentRepo) GetByBookingID(_ context.Context, bookingID int64) (*domain.Payment, error) {
	p, ok := r.byBooking[bookingID]
	if !ok {
		return nil, paymentRepo.ErrPaymentNotFound
	}
	return p, nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct{ events []domain.Event }

func (p *fakePublisher) Publish(_ context.Context, e domain.Event) error {
	p.events = append(p.events, e)
	return nil
}

type fakeMetrics struct{ statuses []string }

func (m *fakeMetrics) IncPayment(status string) { m.statuses = append(m.statuses, status) }

type fixture struct {
	payments  *fakePaymentRepo
	publisher *fakePublisher
	metrics   *fakeMetrics
	uc        *UseCase
}

func newFixture() *fixture {
	bookings := &fakeBookingRepo{items: map[int64]*domain.Booking{
		10: {ID: 10, OwnerID: ownerID, CaretakerID: caretakerID, Status: domain.StatusAccepted, TotalPrice: 100},
		11: {ID: 11, OwnerID: ownerID, CaretakerID: caretakerID, Status: domain.StatusPending, TotalPrice: 50},
		12: {ID: 12, OwnerID: ownerID, CaretakerID: caretakerID, Status: domain.StatusAccepted, TotalPrice: 33.33},
	}}
	f := &fixture{
		payments:  &fakePaymentRepo{byBooking: map[int64]*domain.Payment{}},
		publisher: &fakePublisher{},
		metrics:   &fakeMetrics{},
	}
	f.uc = NewUseCase(bookings, f.payments, passthroughTx{}, f.publisher, f.metrics, logger.NewNop())
	return f
}

func TestUseCase_CreatesSettlement(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{ActorID: ownerID, BookingID: 10})
	require.NoError(t, err)

	assert.Equal(t, 100.0, resp.Amount)
	assert.Equal(t, 15.0, resp.PlatformFee)
	assert.Equal(t, 85.0, resp.CaretakerPayout)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "card", resp.Method)
	assert.Equal(t, caretakerID, resp.CaretakerID)
	assert.Nil(t, resp.TransactionID)

	assert.Equal(t, []string{"pending"}, f.metrics.statuses)
	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, domain.EventPaymentCreated, f.publisher.events[0].Type)
}

func TestUseCase_ExplicitAmountAndMethod(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		ActorID:   ownerID,
		BookingID: 12,
		Amount:    ptr.Ptr(33.33),
		Method:    "bank_transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, 5.0, resp.PlatformFee)
	assert.Equal(t, 28.33, resp.CaretakerPayout)
	assert.InDelta(t, resp.Amount, resp.PlatformFee+resp.CaretakerPayout, 0.005)
	assert.Equal(t, "bank_transfer", resp.Method)
}

func TestUseCase_SecondPaymentFails(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{ActorID: ownerID, BookingID: 10})
	require.NoError(t, err)

	// Статус первого платежа не имеет значения
	f.payments.byBooking[10].Status = domain.PaymentRefunded

	_, err = f.uc.Execute(context.Background(), &Request{ActorID: ownerID, BookingID: 10})
	assert.ErrorIs(t, err, ErrPaymentAlreadyExists)
	assert.Len(t, f.payments.byBooking, 1)
}

func TestUseCase_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"booking absent", &Request{ActorID: ownerID, BookingID: 99}, ErrBookingNotFound},
		{"not the owner", &Request{ActorID: caretakerID, BookingID: 10}, ErrAccessDenied},
		{"booking pending", &Request{ActorID: ownerID, BookingID: 11}, ErrBookingNotAccepted},
		{"zero amount", &Request{ActorID: ownerID, BookingID: 10, Amount: ptr.Ptr(0.0)}, ErrInvalidInput},
		{"amount over limit", &Request{ActorID: ownerID, BookingID: 10, Amount: ptr.Ptr(10000.01)}, ErrInvalidInput},
		{"unknown method", &Request{ActorID: ownerID, BookingID: 10, Method: "cash"}, ErrInvalidInput},
		{"missing booking id", &Request{ActorID: ownerID}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.payments.byBooking)
			assert.Empty(t, f.publisher.events)
		})
	}
}
