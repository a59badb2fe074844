package orchestrator

import (
	"fmt"
	"time"
)

// buildTimeContext tells the model what day it is in loc.
func buildTimeContext(now time.Time, loc *time.Location) string {
	now = now.In(loc)

	// Monday-Sunday week.
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		now.Weekday().String(),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		loc.String(),
	)
}
