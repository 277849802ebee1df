package update_booking_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
)

const (
	ownerID     = int64(1)
	caretakerID = int64(2)
)

type fakeBookingRepo struct {
	items       map[int64]*domain.Booking
	forceCASErr bool
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.items[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) GetActiveOverlapping(_ context.Context, caretakerID int64, interval domain.Interval) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.items {
		if b.CaretakerID == caretakerID && b.IsActive() && b.Interval().Overlaps(interval) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, from, to domain.BookingStatus) (*domain.Booking, error) {
	b, ok := r.items[id]
	if !ok || b.Status != from || r.forceCASErr {
		return nil, bookingRepo.ErrStatusConflict
	}
	b.Status = to
	cp := *b
	return &cp, nil
}

type fakeAvailabilityRepo struct {
	maxPets int
}

func (r *fakeAvailabilityRepo) LockByCaretakerID(_ context.Context, id int64) (*domain.Availability, error) {
	a := domain.DefaultAvailability(id)
	if r.maxPets > 0 {
		a.MaxPets = r.maxPets
	}
	return a, nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePublisher struct {
	events []domain.Event
}

func (p *fakePublisher) Publish(_ context.Context, e domain.Event) error {
	p.events = append(p.events, e)
	return nil
}

type fakeMetrics struct {
	transitions []string
	rejections  int
}

func (m *fakeMetrics) IncBookingTransition(from, to string) {
	m.transitions = append(m.transitions, from+"->"+to)
}

func (m *fakeMetrics) IncCapacityRejection(string) { m.rejections++ }

func at(day int) time.Time {
	return time.Date(2024, 6, day, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	repo      *fakeBookingRepo
	avail     *fakeAvailabilityRepo
	publisher *fakePublisher
	metrics   *fakeMetrics
	uc        *UseCase
}

func newFixture(bookings ...*domain.Booking) *fixture {
	items := make(map[int64]*domain.Booking)
	for _, b := range bookings {
		items[b.ID] = b
	}
	f := &fixture{
		repo:      &fakeBookingRepo{items: items},
		avail:     &fakeAvailabilityRepo{},
		publisher: &fakePublisher{},
		metrics:   &fakeMetrics{},
	}
	f.uc = NewUseCase(f.repo, f.avail, passthroughTx{}, f.publisher, f.metrics, logger.NewNop())
	return f
}

func booking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		OwnerID:     ownerID,
		CaretakerID: caretakerID,
		Start:       at(1),
		End:         at(3),
		Status:      status,
		TotalPrice:  75,
	}
}

func exec(f *fixture, id int64, actor int64, status string) (*Response, error) {
	return f.uc.Execute(context.Background(), &Request{BookingID: id, ActorID: actor, Status: status})
}

func TestUseCase_AcceptThenComplete(t *testing.T) {
	f := newFixture(booking(10, domain.StatusPending))

	resp, err := exec(f, 10, caretakerID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Status)
	assert.True(t, resp.Changed)

	resp, err = exec(f, 10, caretakerID, "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 75.0, resp.TotalPrice)

	assert.Equal(t, []string{"pending->accepted", "accepted->completed"}, f.metrics.transitions)
	require.Len(t, f.publisher.events, 2)
	assert.Equal(t, "pending", f.publisher.events[0].FromStatus)
	assert.Equal(t, "completed", f.publisher.events[1].ToStatus)
}

func TestUseCase_InvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		current domain.BookingStatus
		next    string
	}{
		{"pending to completed", domain.StatusPending, "completed"},
		{"rejected to accepted", domain.StatusRejected, "accepted"},
		{"completed to pending", domain.StatusCompleted, "pending"},
		{"accepted to pending", domain.StatusAccepted, "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(booking(10, tt.current))

			_, err := exec(f, 10, caretakerID, tt.next)
			require.ErrorIs(t, err, domain.ErrInvalidTransition)

			var te *domain.TransitionError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, string(tt.current), te.From)
			assert.Equal(t, tt.next, te.To)
			assert.Equal(t, tt.current, f.repo.items[10].Status)
			assert.Empty(t, f.publisher.events)
		})
	}
}

func TestUseCase_SameStatusIsNoop(t *testing.T) {
	f := newFixture(booking(10, domain.StatusAccepted))

	resp, err := exec(f, 10, caretakerID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Status)
	assert.False(t, resp.Changed)
	assert.Empty(t, f.metrics.transitions)
	assert.Empty(t, f.publisher.events)
}

func TestUseCase_SameStatusOnTerminalIsNoop(t *testing.T) {
	f := newFixture(booking(10, domain.StatusRejected))

	resp, err := exec(f, 10, caretakerID, "rejected")
	require.NoError(t, err)
	assert.False(t, resp.Changed)
}

func TestUseCase_AuthorizationPrecedesTransitionCheck(t *testing.T) {
	f := newFixture(booking(10, domain.StatusPending))

	_, err := exec(f, 10, ownerID, "completed")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = exec(f, 10, ownerID, "accepted")
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, f.repo.items[10].Status)
}

func TestUseCase_NotFoundAndInvalidInput(t *testing.T) {
	f := newFixture()

	_, err := exec(f, 99, caretakerID, "accepted")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = exec(f, 99, caretakerID, "cancelled")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = exec(f, 0, caretakerID, "accepted")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_AcceptRechecksCapacity(t *testing.T) {
	other := booking(11, domain.StatusAccepted)
	f := newFixture(booking(10, domain.StatusPending), other)

	_, err := exec(f, 10, caretakerID, "accepted")
	require.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, domain.StatusPending, f.repo.items[10].Status)
	assert.Equal(t, 1, f.metrics.rejections)

	// Отклонение не требует вместимости
	resp, err := exec(f, 10, caretakerID, "rejected")
	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
}

func TestUseCase_AcceptExcludesSelfFromCount(t *testing.T) {
	f := newFixture(booking(10, domain.StatusPending))
	f.avail.maxPets = 1

	resp, err := exec(f, 10, caretakerID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, "accepted", resp.Status)
}

func TestUseCase_AcceptWithRoomForTwo(t *testing.T) {
	f := newFixture(booking(10, domain.StatusPending), booking(11, domain.StatusAccepted), booking(12, domain.StatusPending))
	f.avail.maxPets = 2

	_, err := exec(f, 10, caretakerID, "accepted")
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	f.avail.maxPets = 3
	_, err = exec(f, 10, caretakerID, "accepted")
	assert.NoError(t, err)
}

func TestUseCase_ConcurrentStatusChange(t *testing.T) {
	f := newFixture(booking(10, domain.StatusPending))
	f.repo.forceCASErr = true

	_, err := exec(f, 10, caretakerID, "rejected")
	assert.ErrorIs(t, err, ErrConcurrentUpdate)
}
