package domain

// Default availability values
const (
	DefaultMaxPets = 1
)

// Business validation constants
const (
	MinMaxPets         = 1
	MaxMaxPets         = 100
	MaxBlockedDates    = 730 // два года вперёд
	MaxPaymentAmount   = 10000.0
	PlatformFeeRate    = 0.15
	MinBookingDuration = 1 // дней, минимальная тарифицируемая длительность
	MaxCalendarDays    = 62
	MaxBookingDays     = 366 // календарных дней, включительно
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD

	secondsPerDay = 24 * 60 * 60
)

// ActiveStatuses список статусов, занимающих вместимость ситтера.
// Используется при подсчёте пересекающихся бронирований.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
}
