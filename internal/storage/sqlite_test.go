package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sheacoding/jumprocket/internal/config"
	"github.com/sheacoding/jumprocket/internal/game"
	"github.com/sheacoding/jumprocket/internal/stats"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "jumprocket.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRecord(date, start string, jumps, score int) stats.SessionRecord {
	return stats.SessionRecord{
		Date:           date,
		StartTime:      start,
		DurationSecs:   120,
		Difficulty:     game.Normal,
		JumpCount:      jumps,
		Calories:       float64(jumps) * 0.5,
		MaxHeight:      0.45,
		AvgFrequency:   float64(jumps) / 120.0,
		Score:          score,
		TargetAchieved: jumps >= 20,
	}
}

func TestOpenCreatesNestedDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "deep", "nested", "jumprocket.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	store.Close()
}

func TestAddSessionAndDay(t *testing.T) {
	store := testStore(t)

	if err := store.AddSession(testRecord("2026-08-29", "09:00:00", 40, 800)); err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}
	if err := store.AddSession(testRecord("2026-08-29", "18:30:00", 25, 500)); err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}

	day, err := store.Day("2026-08-29")
	if err != nil {
		t.Fatalf("Day() error = %v", err)
	}
	if len(day.Sessions) != 2 {
		t.Fatalf("Day() sessions = %d, want 2", len(day.Sessions))
	}
	if day.Sessions[0].StartTime != "09:00:00" {
		t.Errorf("sessions out of insertion order, first = %s", day.Sessions[0].StartTime)
	}
	if day.Total.TotalJumps != 65 {
		t.Errorf("Total.TotalJumps = %d, want 65", day.Total.TotalJumps)
	}
	if day.Total.BestScore != 800 {
		t.Errorf("Total.BestScore = %d, want 800", day.Total.BestScore)
	}
	if day.Total.TargetsAchieved != 2 {
		t.Errorf("Total.TargetsAchieved = %d, want 2", day.Total.TargetsAchieved)
	}
}

func TestDayRoundTripsFields(t *testing.T) {
	store := testStore(t)

	want := testRecord("2026-08-29", "12:00:00", 33, 730)
	want.Difficulty = game.Hard
	if err := store.AddSession(want); err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}

	day, err := store.Day("2026-08-29")
	if err != nil {
		t.Fatalf("Day() error = %v", err)
	}
	got := day.Sessions[0]
	if got.Difficulty != game.Hard {
		t.Errorf("Difficulty = %v, want Hard", got.Difficulty)
	}
	if !got.TargetAchieved {
		t.Error("TargetAchieved not preserved")
	}
	if got.Score != want.Score || got.JumpCount != want.JumpCount {
		t.Errorf("got score=%d jumps=%d, want score=%d jumps=%d",
			got.Score, got.JumpCount, want.Score, want.JumpCount)
	}
}

func TestDayMissingIsEmpty(t *testing.T) {
	store := testStore(t)

	day, err := store.Day("2020-01-01")
	if err != nil {
		t.Fatalf("Day() error = %v", err)
	}
	if !day.Empty() {
		t.Error("missing day should be empty")
	}
	if day.Date != "2020-01-01" {
		t.Errorf("Date = %s, want 2020-01-01", day.Date)
	}
}

func TestHistorySynthesizesEmptyDays(t *testing.T) {
	store := testStore(t)
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	if err := store.AddSession(testRecord("2026-08-29", "10:00:00", 30, 600)); err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}
	if err := store.AddSession(testRecord("2026-08-27", "10:00:00", 10, 200)); err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}

	days := store.History(today, 7)
	if len(days) != 7 {
		t.Fatalf("History() returned %d days, want 7", len(days))
	}
	if days[0].Date != "2026-08-29" || days[0].Empty() {
		t.Errorf("day 0 = %s empty=%v, want active 2026-08-29", days[0].Date, days[0].Empty())
	}
	if !days[1].Empty() {
		t.Error("2026-08-28 should be a synthesized empty day")
	}
	if days[2].Empty() {
		t.Error("2026-08-27 should carry its session")
	}
}

func TestRefreshHistoryIdempotent(t *testing.T) {
	store := testStore(t)
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	if err := store.AddSession(testRecord("2026-08-29", "10:00:00", 45, 900)); err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}
	if err := store.AddSession(testRecord("2026-08-28", "10:00:00", 20, 400)); err != nil {
		t.Fatalf("AddSession() error = %v", err)
	}

	first, err := store.RefreshHistory(today)
	if err != nil {
		t.Fatalf("RefreshHistory() error = %v", err)
	}
	second, err := store.RefreshHistory(today)
	if err != nil {
		t.Fatalf("RefreshHistory() error = %v", err)
	}
	if first != second {
		t.Errorf("refresh not idempotent: first = %+v, second = %+v", first, second)
	}
	if first.TotalGames != 2 || first.BestScore != 900 || first.BestDate != "2026-08-29" {
		t.Errorf("unexpected aggregate: %+v", first)
	}
	if first.StreakDays != 2 {
		t.Errorf("StreakDays = %d, want 2", first.StreakDays)
	}

	loaded, err := store.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if loaded != second {
		t.Errorf("LoadHistory() = %+v, want %+v", loaded, second)
	}
}

func TestLoadHistoryBeforeRefresh(t *testing.T) {
	store := testStore(t)

	h, err := store.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if h != (stats.HistoryStats{}) {
		t.Errorf("LoadHistory() on fresh store = %+v, want zero value", h)
	}
}

func TestRecorderPersistsCompletion(t *testing.T) {
	store := testStore(t)
	cfg := config.Default()
	rec := NewRecorder(store, cfg, nil)

	started := time.Date(2026, 8, 29, 9, 30, 0, 0, time.UTC)
	done := game.Completion{
		StartedAt:    started,
		Difficulty:   game.Normal,
		JumpCount:    30,
		Duration:     90 * time.Second,
		Fuel:         100,
		FlightHeight: 25000,
	}
	if err := rec.Record(done); err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	day, err := store.Day("2026-08-29")
	if err != nil {
		t.Fatalf("Day() error = %v", err)
	}
	if len(day.Sessions) != 1 {
		t.Fatalf("Day() sessions = %d, want 1", len(day.Sessions))
	}
	if day.Sessions[0].StartTime != "09:30:00" {
		t.Errorf("StartTime = %s, want 09:30:00", day.Sessions[0].StartTime)
	}

	// Record also refreshes the aggregate.
	h, err := store.LoadHistory()
	if err != nil {
		t.Fatalf("LoadHistory() error = %v", err)
	}
	if h.TotalGames != 1 || h.TotalJumps != 30 {
		t.Errorf("history not refreshed: %+v", h)
	}
}
