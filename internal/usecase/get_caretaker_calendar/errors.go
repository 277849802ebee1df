package get_caretaker_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_caretaker_calendar: invalid input data")

	// ErrDateInPast возвращается, когда начало периода раньше сегодняшнего дня
	ErrDateInPast = errors.New("get_caretaker_calendar: period starts in the past")

	// ErrRangeTooLong возвращается при слишком длинном периоде
	ErrRangeTooLong = errors.New("get_caretaker_calendar: period is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_caretaker_calendar: internal error")
)
