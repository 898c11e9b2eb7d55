package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bagbot/internal/catalog"
)

var testDelivery = catalog.DeliverySettings{MinimumDays: 7, MaxSelectableDays: 14}

func TestAvailableDeliveryDates_CountAndNoSundays(t *testing.T) {
	// Scan every starting weekday; the count must hold no matter how many
	// Sundays fall inside the window.
	base := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC) // a Monday
	for offset := 0; offset < 7; offset++ {
		from := base.AddDate(0, 0, offset)
		dates := AvailableDeliveryDates(from, testDelivery)

		require.Len(t, dates, AvailableDateCount, "start %s", from.Weekday())
		for _, d := range dates {
			day, err := time.Parse("2006-01-02", d.Date)
			require.NoError(t, err)
			assert.NotEqual(t, time.Sunday, day.Weekday(), "date %s", d.Date)
		}
	}
}

func TestAvailableDeliveryDates_StartsAtMinimumLeadTime(t *testing.T) {
	from := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC) // Monday
	dates := AvailableDeliveryDates(from, testDelivery)

	// Monday + 7 days is a Monday, which qualifies.
	assert.Equal(t, "2026-08-31", dates[0].Date)
}

func TestAvailableDeliveryDates_SkipsSundayAtWindowStart(t *testing.T) {
	from := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC) // a Sunday
	dates := AvailableDeliveryDates(from, testDelivery)

	// Sunday + 7 days is again a Sunday; the first offered date must be the
	// following Monday.
	assert.Equal(t, "2026-08-31", dates[0].Date)
}

func TestAvailableDeliveryDates_SortedAndDistinct(t *testing.T) {
	from := time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC)
	dates := AvailableDeliveryDates(from, testDelivery)

	for i := 1; i < len(dates); i++ {
		assert.Less(t, dates[i-1].Date, dates[i].Date)
	}
}

func TestAvailableDeliveryDates_DisplayFormat(t *testing.T) {
	from := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	dates := AvailableDeliveryDates(from, testDelivery)

	assert.Equal(t, "08/31 週一", dates[0].Display)
}
