package get_caretaker_calendar

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

const day = 24 * time.Hour

// buildCalendar считает загрузку по дням периода [from, to].
// Бронирование учитывается в каждом дне, который задевает его полуинтервал,
// поэтому Booked это верхняя оценка одновременной загрузки внутри дня.
func buildCalendar(from, to time.Time, availability *domain.Availability, bookings []*domain.Booking) []Day {
	capacity := availability.Capacity()
	days := make([]Day, 0, int(to.Sub(from)/day)+1)

	for cur := from; !cur.After(to); cur = cur.Add(day) {
		date := cur.Format(domain.DateFormat)
		dayInterval := domain.Interval{Start: cur, End: cur.Add(day)}

		booked := domain.CountOverlapping(dayInterval, bookings, 0)
		free := capacity - booked
		if free < 0 {
			free = 0
		}

		blocked := availability.IsBlocked(date)
		if blocked {
			free = 0
		}

		days = append(days, Day{
			Date:    date,
			Blocked: blocked,
			Open:    availability.WeeklyOpen.IsOpen(cur.Weekday()),
			Booked:  booked,
			Free:    free,
		})
	}

	return days
}

// truncateToDay приводит время к началу суток в UTC
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
