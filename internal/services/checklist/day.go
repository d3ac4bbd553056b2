package checklist

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/homebot/internal/models"
)

// DefaultTimezone is the reference timezone for checklist days
const DefaultTimezone = "America/Los_Angeles"

// DefaultDayStartHour is the local hour a checklist day begins
const DefaultDayStartHour = 4

// DayRule maps instants to checklist days. A day runs from StartHour on its
// date to StartHour on the next date, in Location.
type DayRule struct {
	Location  *time.Location
	StartHour int
}

// CurrentDay returns the checklist day containing now
func (r DayRule) CurrentDay(now time.Time) string {
	local := now.In(r.Location)
	if local.Hour() < r.StartHour {
		local = local.AddDate(0, 0, -1)
	}
	return local.Format(models.DayLayout)
}

// Window returns the start and end of a checklist day
func (r DayRule) Window(day string) (time.Time, time.Time, error) {
	date, err := time.ParseInLocation(models.DayLayout, day, r.Location)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid checklist day %q: %w", day, err)
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), r.StartHour, 0, 0, 0, r.Location)
	end := time.Date(date.Year(), date.Month(), date.Day()+1, r.StartHour, 0, 0, 0, r.Location)
	return start, end, nil
}
