package payments

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платёж не найден
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на платёж
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidPaymentState возвращается, когда переход статуса платежа недопустим
	ErrInvalidPaymentState = errors.New("invalid payment state")

	// ErrConcurrentUpdate возвращается, когда статус платежа изменился параллельно
	ErrConcurrentUpdate = errors.New("payment changed concurrently, retry the request")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
