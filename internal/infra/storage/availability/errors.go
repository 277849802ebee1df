package availability

import "errors"

var (
	// ErrAvailabilityNotFound возвращается, когда настройки доступности ситтера не найдены
	ErrAvailabilityNotFound = errors.New("availability.repository: availability not found")

	// ErrTransactionRequired возвращается, когда блокировка запрошена вне транзакции
	ErrTransactionRequired = errors.New("availability.repository: transaction required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")

	// ErrEncodeWeekly возвращается при ошибке сериализации недельного расписания
	ErrEncodeWeekly = errors.New("availability.repository: failed to encode weekly schedule")
)
