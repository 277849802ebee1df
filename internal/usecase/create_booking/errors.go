package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrCaretakerNotFound возвращается, когда ситтер не найден или пользователь не ситтер
	ErrCaretakerNotFound = errors.New("create_booking: caretaker not found")

	// ErrInvalidServiceReference возвращается, когда услуга не принадлежит ситтеру
	ErrInvalidServiceReference = errors.New("create_booking: service is not valid for this caretaker")

	// ErrPetNotOwned возвращается, когда питомец не принадлежит владельцу
	ErrPetNotOwned = errors.New("create_booking: pet does not belong to owner")

	// ErrCaretakerUnavailable возвращается, когда в интервале есть заблокированный день
	ErrCaretakerUnavailable = errors.New("create_booking: caretaker is not available")

	// ErrCapacityExceeded возвращается, когда все места ситтера на интервал заняты
	ErrCapacityExceeded = errors.New("create_booking: caretaker capacity exceeded")

	// ErrConcurrentUpdate возвращается при конфликте сериализуемой транзакции
	ErrConcurrentUpdate = errors.New("create_booking: concurrent update, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// UnavailableError указывает первый заблокированный день интервала
type UnavailableError struct {
	Day string // YYYY-MM-DD
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%v on %s", ErrCaretakerUnavailable, e.Day)
}

func (e *UnavailableError) Unwrap() error {
	return ErrCaretakerUnavailable
}
