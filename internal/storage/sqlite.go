// Package storage persists completed sessions and the history roll-up in
// SQLite. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Single writer by design: only the game task records
// sessions, through the completion handoff.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/sheacoding/jumprocket/internal/game"
	"github.com/sheacoding/jumprocket/internal/stats"
)

// Store manages the SQLite database holding session history.
type Store struct {
	db *sql.DB
}

// Open creates or opens the database at the given path. It creates parent
// directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			date TEXT NOT NULL,
			start_time TEXT NOT NULL,
			duration_secs INTEGER NOT NULL,
			difficulty INTEGER NOT NULL,
			jump_count INTEGER NOT NULL,
			calories REAL NOT NULL,
			max_height REAL NOT NULL,
			avg_frequency REAL NOT NULL,
			score INTEGER NOT NULL,
			target_achieved INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date);

		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			total_games INTEGER NOT NULL,
			total_jumps INTEGER NOT NULL,
			total_time INTEGER NOT NULL,
			total_calories REAL NOT NULL,
			best_score INTEGER NOT NULL,
			best_date TEXT NOT NULL,
			best_jumps INTEGER NOT NULL,
			streak_days INTEGER NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// AddSession appends a completed session under its calendar day.
func (s *Store) AddSession(rec stats.SessionRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO sessions
		 (date, start_time, duration_secs, difficulty, jump_count, calories,
		  max_height, avg_frequency, score, target_achieved)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Date,
		rec.StartTime,
		rec.DurationSecs,
		int(rec.Difficulty),
		rec.JumpCount,
		rec.Calories,
		rec.MaxHeight,
		rec.AvgFrequency,
		rec.Score,
		boolToInt(rec.TargetAchieved),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session: %w", err)
	}
	return nil
}

// Day loads one calendar day with its total refolded from the rows.
func (s *Store) Day(date string) (stats.DailyData, error) {
	day := stats.DailyData{Date: date}

	rows, err := s.db.Query(
		`SELECT date, start_time, duration_secs, difficulty, jump_count,
		        calories, max_height, avg_frequency, score, target_achieved
		 FROM sessions
		 WHERE date = ?
		 ORDER BY id ASC`,
		date,
	)
	if err != nil {
		return day, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rec stats.SessionRecord
		var difficulty, achieved int
		if err := rows.Scan(
			&rec.Date,
			&rec.StartTime,
			&rec.DurationSecs,
			&difficulty,
			&rec.JumpCount,
			&rec.Calories,
			&rec.MaxHeight,
			&rec.AvgFrequency,
			&rec.Score,
			&achieved,
		); err != nil {
			return day, fmt.Errorf("storage: cannot scan session row: %w", err)
		}
		rec.Difficulty = game.Difficulty(difficulty)
		rec.TargetAchieved = achieved != 0
		day.Sessions = append(day.Sessions, rec)
	}
	if err := rows.Err(); err != nil {
		return day, fmt.Errorf("storage: row iteration error: %w", err)
	}

	day.Recompute()
	return day, nil
}

// History loads the last n calendar days ending at today, newest first.
// Days that fail to load degrade to empty placeholders; corrupt history
// must never block new sessions.
func (s *Store) History(today time.Time, n int) []stats.DailyData {
	if n <= 0 {
		n = stats.HistoryWindowDays
	}

	days := make([]stats.DailyData, 0, n)
	for i := 0; i < n; i++ {
		date := today.AddDate(0, 0, -i).Format(stats.DateLayout)
		day, err := s.Day(date)
		if err != nil {
			day = stats.DailyData{Date: date}
		}
		days = append(days, day)
	}
	return days
}

// RefreshHistory refolds the history aggregate over the bounded window and
// persists it. Idempotent: refolding with no new sessions yields the same
// result.
func (s *Store) RefreshHistory(today time.Time) (stats.HistoryStats, error) {
	h := stats.FoldHistory(s.History(today, stats.HistoryWindowDays))

	_, err := s.db.Exec(
		`INSERT INTO history
		 (id, total_games, total_jumps, total_time, total_calories,
		  best_score, best_date, best_jumps, streak_days)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		  total_games = excluded.total_games,
		  total_jumps = excluded.total_jumps,
		  total_time = excluded.total_time,
		  total_calories = excluded.total_calories,
		  best_score = excluded.best_score,
		  best_date = excluded.best_date,
		  best_jumps = excluded.best_jumps,
		  streak_days = excluded.streak_days`,
		h.TotalGames,
		h.TotalJumps,
		h.TotalTime,
		h.TotalCalories,
		h.BestScore,
		h.BestDate,
		h.BestJumps,
		h.StreakDays,
	)
	if err != nil {
		return h, fmt.Errorf("storage: cannot save history stats: %w", err)
	}
	return h, nil
}

// LoadHistory returns the persisted history aggregate, or a zero value when
// none has been stored yet.
func (s *Store) LoadHistory() (stats.HistoryStats, error) {
	var h stats.HistoryStats
	err := s.db.QueryRow(
		`SELECT total_games, total_jumps, total_time, total_calories,
		        best_score, best_date, best_jumps, streak_days
		 FROM history WHERE id = 1`,
	).Scan(
		&h.TotalGames,
		&h.TotalJumps,
		&h.TotalTime,
		&h.TotalCalories,
		&h.BestScore,
		&h.BestDate,
		&h.BestJumps,
		&h.StreakDays,
	)
	if err == sql.ErrNoRows {
		return stats.HistoryStats{}, nil
	}
	if err != nil {
		return h, fmt.Errorf("storage: cannot load history stats: %w", err)
	}
	return h, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
