package order

import (
	"time"

	"bagbot/internal/catalog"
)

// AvailableDateCount is how many selectable delivery dates are computed per
// enumeration.
const AvailableDateCount = 8

type DeliveryDate struct {
	Date    string
	Display string
}

var weekdayNames = [...]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}

// AvailableDeliveryDates enumerates delivery dates starting at
// from + MinimumDays, scanning forward day by day and skipping Sundays,
// until exactly AvailableDateCount qualifying dates are collected. The
// window stretches as needed to absorb Sundays in range.
func AvailableDeliveryDates(from time.Time, settings catalog.DeliverySettings) []DeliveryDate {
	dates := make([]DeliveryDate, 0, AvailableDateCount)
	day := from.AddDate(0, 0, settings.MinimumDays)

	for len(dates) < AvailableDateCount {
		if day.Weekday() != time.Sunday {
			dates = append(dates, DeliveryDate{
				Date:    day.Format("2006-01-02"),
				Display: day.Format("01/02") + " " + weekdayNames[day.Weekday()],
			})
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates
}
