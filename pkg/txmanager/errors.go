package txmanager

import "errors"

var (
	// ErrBeginTx возвращается, когда не удалось начать транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается, когда не удалось зафиксировать транзакцию
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerializationFailure возвращается, когда Postgres откатил транзакцию
	// из-за конфликта сериализации (SQLSTATE 40001) или дедлока (40P01)
	ErrSerializationFailure = errors.New("txmanager: serialization failure")
)
