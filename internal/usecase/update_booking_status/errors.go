package update_booking_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrAccessDenied возвращается, когда статус меняет не ситтер бронирования
	ErrAccessDenied = errors.New("update_booking_status: only the caretaker can change booking status")

	// ErrCapacityExceeded возвращается, когда принять бронирование нельзя из-за вместимости
	ErrCapacityExceeded = errors.New("update_booking_status: caretaker capacity exceeded")

	// ErrConcurrentUpdate возвращается, когда статус изменился параллельно
	ErrConcurrentUpdate = errors.New("update_booking_status: concurrent update, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
