package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sheacoding/jumprocket/internal/game"
	"github.com/sheacoding/jumprocket/internal/stats"
	"github.com/sheacoding/jumprocket/internal/storage"
)

var flagStatsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workout statistics",
	Long: `Display today's sessions plus the rolling history aggregate.

Examples:
  jumprocket stats
  jumprocket stats --days 7`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsDays, "days", stats.HistoryWindowDays, "History window in days")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	now := time.Now()
	today, err := store.Day(now.Format(stats.DateLayout))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading today's sessions: %v\n", err)
		os.Exit(1)
	}

	days := store.History(now, flagStatsDays)
	history := stats.FoldHistory(days)
	week := stats.FoldWeekly(days)

	fmt.Printf("Today - %s\n\n", today.Date)
	if today.Empty() {
		fmt.Println("No sessions yet. Play 'jumprocket play' to start the day!")
	} else {
		fmt.Printf("  %-8s  %-8s  %-6s  %-6s  %-8s  %-6s\n",
			"Start", "Level", "Jumps", "Time", "Calories", "Score")
		fmt.Printf("  %-8s  %-8s  %-6s  %-6s  %-8s  %-6s\n",
			"-----", "-----", "-----", "----", "--------", "-----")
		for _, s := range today.Sessions {
			mark := " "
			if s.TargetAchieved {
				mark = "*"
			}
			fmt.Printf("  %-8s  %-8s  %-6d  %-6s  %-8.1f  %-5d%s\n",
				s.StartTime, s.Difficulty, s.JumpCount,
				formatSeconds(s.DurationSecs), s.Calories, s.Score, mark)
		}
		fmt.Printf("\n  Total: %d sessions, %d jumps, %.1f kcal, best score %d\n",
			today.Total.SessionCount, today.Total.TotalJumps,
			today.Total.TotalCalories, today.Total.BestScore)
	}

	fmt.Printf("\nLast 7 days\n\n")
	fmt.Printf("  Workouts  %d\n", week.Workouts)
	fmt.Printf("  Jumps     %d\n", week.Jumps)
	fmt.Printf("  Time      %s\n", formatSeconds(week.Duration))
	fmt.Printf("  Calories  %.1f\n", week.Calories)

	fmt.Printf("\nLast %d days\n\n", flagStatsDays)
	fmt.Printf("  Games       %d\n", history.TotalGames)
	fmt.Printf("  Jumps       %d\n", history.TotalJumps)
	fmt.Printf("  Time        %s\n", formatSeconds(history.TotalTime))
	fmt.Printf("  Calories    %.1f\n", history.TotalCalories)
	fmt.Printf("  Streak      %d days\n", history.StreakDays)
	if history.BestDate != "" {
		fmt.Printf("  Best score  %d (%s)\n", history.BestScore, history.BestDate)
		fmt.Printf("  Best day    %d jumps\n", history.BestJumps)
	}

	recommended := game.RecommendDifficulty(history.TotalGames, history.BestScore)
	fmt.Printf("\nRecommended difficulty: %s\n", recommended)
}

func formatSeconds(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
