package stats

// HistoryWindowDays is the bounded window HistoryStats folds over.
const HistoryWindowDays = 30

// HistoryStats is the cross-day aggregate, recomputed by folding a window
// of DailyData. BestDate always names a day whose daily best score equals
// BestScore.
type HistoryStats struct {
	TotalGames    int
	TotalJumps    int
	TotalTime     int // seconds
	TotalCalories float64
	BestScore     int
	BestDate      string
	BestJumps     int // most jumps in a single day
	StreakDays    int
}

// FoldHistory computes the aggregate from a day window. The slice is
// expected newest-first (today at index 0), the order used for the streak;
// the totals are order-independent. Calling it twice over the same days
// yields identical results.
func FoldHistory(days []DailyData) HistoryStats {
	var h HistoryStats
	for _, d := range days {
		h.TotalGames += d.Total.SessionCount
		h.TotalJumps += d.Total.TotalJumps
		h.TotalTime += d.Total.TotalDuration
		h.TotalCalories += d.Total.TotalCalories

		if d.Total.SessionCount > 0 {
			// Strictly-greater keeps the first day seen on ties, so
			// refolding the same window always lands on the same date.
			if h.BestDate == "" || d.Total.BestScore > h.BestScore {
				h.BestScore = d.Total.BestScore
				h.BestDate = d.Date
			}
		}
		if d.Total.TotalJumps > h.BestJumps {
			h.BestJumps = d.Total.TotalJumps
		}
	}
	h.StreakDays = streak(days)
	return h
}

// streak counts consecutive active days ending today (index 0). An empty
// today breaks the streak immediately.
func streak(days []DailyData) int {
	n := 0
	for _, d := range days {
		if d.Empty() {
			break
		}
		n++
	}
	return n
}

// WeeklySummary is the rolling seven-day roll-up for the stats surface.
type WeeklySummary struct {
	Workouts int
	Jumps    int
	Calories float64
	Duration int // seconds
}

// FoldWeekly sums the first seven days of the window.
func FoldWeekly(days []DailyData) WeeklySummary {
	var w WeeklySummary
	for i, d := range days {
		if i >= 7 {
			break
		}
		w.Workouts += d.Total.SessionCount
		w.Jumps += d.Total.TotalJumps
		w.Calories += d.Total.TotalCalories
		w.Duration += d.Total.TotalDuration
	}
	return w
}
