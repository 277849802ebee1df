package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInterval возвращается, когда конец интервала не позже начала
	ErrInvalidInterval = errors.New("domain: interval end must be after start")

	// ErrInvalidDate возвращается при дате не в формате YYYY-MM-DD
	ErrInvalidDate = errors.New("domain: invalid date, expected YYYY-MM-DD")

	// ErrInvalidWeekday возвращается при неизвестном ключе дня недели
	ErrInvalidWeekday = errors.New("domain: invalid weekday key")

	// ErrInvalidMaxPets возвращается при maxPets вне допустимого диапазона
	ErrInvalidMaxPets = errors.New("domain: invalid max pets")

	// ErrTooManyBlockedDates возвращается при превышении лимита заблокированных дат
	ErrTooManyBlockedDates = errors.New("domain: too many blocked dates")

	// ErrInvalidStatus возвращается при неизвестном статусе бронирования или платежа
	ErrInvalidStatus = errors.New("domain: invalid status")

	// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
	ErrInvalidPaymentMethod = errors.New("domain: invalid payment method")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("domain: invalid status transition")

	// ErrInvalidAmount возвращается при некорректной сумме платежа
	ErrInvalidAmount = errors.New("domain: invalid amount")
)

// TransitionError описывает запрещённый переход статуса
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%v: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}
