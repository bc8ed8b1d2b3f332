package storage

import (
	"github.com/charmbracelet/log"

	"github.com/sheacoding/jumprocket/internal/config"
	"github.com/sheacoding/jumprocket/internal/game"
	"github.com/sheacoding/jumprocket/internal/stats"
)

// Recorder turns session completions into persisted records and keeps the
// history aggregate current. It satisfies game.Recorder.
type Recorder struct {
	store  *Store
	cfg    config.System
	logger *log.Logger
}

// NewRecorder wires a store to the game's completion handoff. The config is
// captured at construction; target thresholds for scoring come from it.
func NewRecorder(store *Store, cfg config.System, logger *log.Logger) *Recorder {
	return &Recorder{store: store, cfg: cfg, logger: logger}
}

// Record derives the session record from a completion and persists it, then
// refolds the history aggregate. A failed history refresh is logged but does
// not fail the record: the session rows are the source of truth and the
// aggregate can be rebuilt on the next refresh.
func (r *Recorder) Record(done game.Completion) error {
	rec := stats.NewSessionRecord(r.cfg, done)

	if err := r.store.AddSession(rec); err != nil {
		return err
	}

	if _, err := r.store.RefreshHistory(done.StartedAt); err != nil {
		if r.logger != nil {
			r.logger.Error("history refresh failed", "date", rec.Date, "error", err)
		}
	}
	return nil
}
