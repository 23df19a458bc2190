package fitness

import "time"

// Streak counts consecutive workout days ending at the most recent
// workout. dates must be distinct calendar days ordered newest first,
// covering the full history so long streaks are not truncated.
func Streak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		prev := dates[i-1].Truncate(24 * time.Hour)
		cur := dates[i].Truncate(24 * time.Hour)
		if prev.Sub(cur) == 24*time.Hour {
			streak++
		} else {
			break
		}
	}
	return streak
}
