package create_booking

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/userservice"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	nextID    int64
	createErr error
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	saved := *b
	saved.ID = r.nextID
	r.bookings = append(r.bookings, &saved)
	return &saved, nil
}

func (r *fakeBookingRepo) GetActiveOverlapping(_ context.Context, caretakerID int64, interval domain.Interval) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.CaretakerID == caretakerID && b.IsActive() && b.Interval().Overlaps(interval) {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeAvailabilityRepo struct {
	items map[int64]*domain.Availability
}

func (r *fakeAvailabilityRepo) LockByCaretakerID(_ context.Context, caretakerID int64) (*domain.Availability, error) {
	if a, ok := r.items[caretakerID]; ok {
		return a, nil
	}
	return domain.DefaultAvailability(caretakerID), nil
}

type fakeCatalog struct {
	services map[int64]*catalogservice.Service
	err      error
}

func (c *fakeCatalog) GetService(_ context.Context, id int64) (*catalogservice.Service, error) {
	if c.err != nil {
		return nil, c.err
	}
	s, ok := c.services[id]
	if !ok {
		return nil, catalogservice.ErrServiceNotFound
	}
	return s, nil
}

type fakeUsers struct {
	users map[int64]*userservice.User
	pets  map[int64]*userservice.Pet
}

func (u *fakeUsers) GetUser(_ context.Context, id int64) (*userservice.User, error) {
	user, ok := u.users[id]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return user, nil
}

func (u *fakeUsers) GetPet(_ context.Context, id int64) (*userservice.Pet, error) {
	pet, ok := u.pets[id]
	if !ok {
		return nil, userservice.ErrPetNotFound
	}
	return pet, nil
}

type fakeTxManager struct {
	err   error
	calls int
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type fakePublisher struct {
	events []domain.Event
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, e domain.Event) error {
	p.events = append(p.events, e)
	return p.err
}

type fakeMetrics struct {
	created    int
	rejections map[string]int
}

func (m *fakeMetrics) IncBookingCreated() { m.created++ }

func (m *fakeMetrics) IncCapacityRejection(stage string) {
	if m.rejections == nil {
		m.rejections = map[string]int{}
	}
	m.rejections[stage]++
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

var errBoom = errors.New("boom")
