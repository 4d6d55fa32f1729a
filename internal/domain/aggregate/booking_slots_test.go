package aggregate

import (
	"testing"
	"time"
)

func TestAvailableDatesCoversThirtyDays(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)
	dates := AvailableDates(now)

	if len(dates) != 30 {
		t.Fatalf("expected 30 dates, got %d", len(dates))
	}
	if dates[0].Date != "2025-03-10" || !dates[0].IsToday {
		t.Errorf("first option should be today: %+v", dates[0])
	}
	if dates[1].Date != "2025-03-11" || !dates[1].IsTomorrow {
		t.Errorf("second option should be tomorrow: %+v", dates[1])
	}
	if dates[2].IsToday || dates[2].IsTomorrow {
		t.Errorf("later options should carry no tags: %+v", dates[2])
	}
}

func TestTimeSlotsRunNineToEight(t *testing.T) {
	slots := TimeSlots()

	if len(slots) != 23 {
		t.Fatalf("expected 23 half-hour slots, got %d", len(slots))
	}
	if slots[0] != "09:00 ص" {
		t.Errorf("expected first slot 09:00 ص, got %q", slots[0])
	}
	if slots[len(slots)-1] != "08:00 م" {
		t.Errorf("expected last slot 08:00 م, got %q", slots[len(slots)-1])
	}
}

func TestFormatCustomTime(t *testing.T) {
	got, err := FormatCustomTime(14, 5, PeriodPM)
	if err != nil {
		t.Fatalf("FormatCustomTime: %v", err)
	}
	if got != "02:05 م" {
		t.Errorf("expected 02:05 م, got %q", got)
	}

	// A custom pick of a slot time resolves to the slot's exact string
	got, err = FormatCustomTime(9, 0, PeriodAM)
	if err != nil {
		t.Fatalf("FormatCustomTime: %v", err)
	}
	if got != TimeSlots()[0] {
		t.Errorf("custom 9:00 AM should match the first fixed slot, got %q", got)
	}

	for _, tc := range []struct {
		hour, minute int
		period       string
	}{
		{8, 0, PeriodAM},
		{21, 0, PeriodPM},
		{10, 7, PeriodAM},
		{10, 0, "AM"},
	} {
		if _, err := FormatCustomTime(tc.hour, tc.minute, tc.period); err == nil {
			t.Errorf("expected error for %02d:%02d %s", tc.hour, tc.minute, tc.period)
		}
	}
}
