package aggregate

import (
	"fmt"

	"time"

	pkgerrors "rifq-petcare/pkg/errors"
)

// DateOption is one selectable booking date. Today/tomorrow tags are display
// hints only and carry no workflow meaning.
type DateOption struct {
	Date       string `json:"date"`
	IsToday    bool   `json:"isToday"`
	IsTomorrow bool   `json:"isTomorrow"`
}

// AvailableDates returns the next 30 calendar days starting from today
func AvailableDates(now time.Time) []DateOption {
	out := make([]DateOption, 0, 30)
	for i := 0; i < 30; i++ {
		d := now.AddDate(0, 0, i)
		out = append(out, DateOption{
			Date:       d.Format("2006-01-02"),
			IsToday:    i == 0,
			IsTomorrow: i == 1,
		})
	}
	return out
}

// Morning/afternoon markers as shown in the app's Arabic locale
const (
	PeriodAM = "ص"
	PeriodPM = "م"
)

// TimeSlots returns the fixed half-hour appointment slots, 9 AM to 8 PM
func TimeSlots() []string {
	return []string{
		"09:00 " + PeriodAM, "09:30 " + PeriodAM, "10:00 " + PeriodAM, "10:30 " + PeriodAM,
		"11:00 " + PeriodAM, "11:30 " + PeriodAM,
		"12:00 " + PeriodPM, "12:30 " + PeriodPM, "01:00 " + PeriodPM, "01:30 " + PeriodPM,
		"02:00 " + PeriodPM, "02:30 " + PeriodPM, "03:00 " + PeriodPM, "03:30 " + PeriodPM,
		"04:00 " + PeriodPM, "04:30 " + PeriodPM, "05:00 " + PeriodPM, "05:30 " + PeriodPM,
		"06:00 " + PeriodPM, "06:30 " + PeriodPM, "07:00 " + PeriodPM, "07:30 " + PeriodPM,
		"08:00 " + PeriodPM,
	}
}

// FormatCustomTime resolves the free-form hour/minute/period picker to the
// same string representation the fixed slot list uses. Hours run 9 through 20
// on a 24-hour dial, minutes in 5-minute increments.
func FormatCustomTime(hour, minute int, period string) (string, error) {
	if hour < 9 || hour > 20 {
		return "", pkgerrors.NewValidationError("hour must be between 9 and 20")
	}
	if minute < 0 || minute > 55 || minute%5 != 0 {
		return "", pkgerrors.NewValidationError("minute must be a multiple of 5")
	}
	if period != PeriodAM && period != PeriodPM {
		return "", pkgerrors.NewValidationError("period must be ص or م")
	}

	displayHour := hour
	if displayHour > 12 {
		displayHour -= 12
	}
	return fmt.Sprintf("%02d:%02d %s", displayHour, minute, period), nil
}
