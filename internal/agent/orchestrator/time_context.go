package orchestrator

import (
	"fmt"
	"time"
)

// buildTimeContext describes today, this week (Monday to Sunday) and tomorrow.
func buildTimeContext(now time.Time) string {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	tomorrow := now.AddDate(0, 0, 1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(time.DateOnly),
		now.Weekday().String(),
		weekStart.Format(time.DateOnly),
		weekEnd.Format(time.DateOnly),
		tomorrow.Format(time.DateOnly),
	)
}
