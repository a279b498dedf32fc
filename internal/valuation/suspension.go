package valuation

import (
	"time"

	"github.com/Luisfch1/CONTROL/internal/model"
)

// ShiftDate pushes a planned-curve date past contractual suspensions: the
// inclusive day lengths of every suspension ending on or before the date
// are summed and added to it. A suspension freezes contractual time, so
// planned dates after it must move forward to stay comparable with real
// calendar progress.
func ShiftDate(date time.Time, suspensions []model.Suspension) time.Time {
	days := 0
	for _, s := range suspensions {
		if !s.To.After(date) {
			days += s.Days()
		}
	}
	if days == 0 {
		return date
	}
	return date.AddDate(0, 0, days)
}
