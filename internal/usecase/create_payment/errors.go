package create_payment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_payment: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("create_payment: booking not found")

	// ErrAccessDenied возвращается, когда платит не владелец бронирования
	ErrAccessDenied = errors.New("create_payment: only the owner can pay for this booking")

	// ErrBookingNotAccepted возвращается, когда бронирование ещё не принято
	ErrBookingNotAccepted = errors.New("create_payment: only an accepted booking can be paid")

	// ErrPaymentAlreadyExists возвращается, когда платёж по бронированию уже создан
	ErrPaymentAlreadyExists = errors.New("create_payment: payment for this booking already exists")

	// ErrConcurrentUpdate возвращается при конфликте сериализуемой транзакции
	ErrConcurrentUpdate = errors.New("create_payment: concurrent update, retry the request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_payment: internal error")
)
