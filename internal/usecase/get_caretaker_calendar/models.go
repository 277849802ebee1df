package get_caretaker_calendar

import "time"

// Request модель запроса календаря ситтера
type Request struct {
	CaretakerID int64     // ID ситтера
	From        time.Time // Первый день периода (UTC, без времени)
	To          time.Time // Последний день периода включительно
}

// Response модель ответа с календарём
type Response struct {
	CaretakerID int64
	MaxPets     int
	Days        []Day
}

// Day загрузка ситтера в конкретный день
type Day struct {
	Date    string // YYYY-MM-DD
	Blocked bool   // день в blockedDates
	Open    bool   // рабочий день по weeklyOpen (справочно)
	Booked  int    // активные бронирования, задевающие этот день
	Free    int    // свободные места; 0 для заблокированного дня
}
