package payment

import "errors"

var (
	// ErrPaymentNotFound возвращается, когда платёж не найден
	ErrPaymentNotFound = errors.New("payment.repository: payment not found")

	// ErrPaymentAlreadyExists возвращается при попытке создать второй платёж по бронированию
	ErrPaymentAlreadyExists = errors.New("payment.repository: payment for booking already exists")

	// ErrStatusConflict возвращается, когда статус платежа изменился между чтением и записью
	ErrStatusConflict = errors.New("payment.repository: payment status changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
