package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Outcomes recorded in the run log.
const (
	OutcomeLost    = "lost"
	OutcomeCleared = "cleared"
)

// RoundRecord is one finished round, written as a line of runs.jsonl.
type RoundRecord struct {
	Finished          time.Time     `json:"finished"`
	Level             string        `json:"level"`
	Round             int           `json:"round"`
	Outcome           string        `json:"outcome"`
	Duration          time.Duration `json:"duration_ns"`
	BricksBroken      int           `json:"bricks_broken"`
	PowerUpsCollected int           `json:"power_ups_collected"`
	Bounces           int           `json:"bounces"`
}

// saveRunLog appends rec as a single JSON line to runs.jsonl. Failures are
// logged and otherwise ignored so a disk problem never stops the game.
func saveRunLog(rec RoundRecord, log *zap.Logger) {
	dir, err := runLogDir()
	if err != nil {
		log.Warn("run log skipped", zap.Error(err))
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("run log skipped", zap.Error(err))
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Warn("run log skipped", zap.Error(err))
		return
	}
	defer f.Close()

	data, err := json.Marshal(rec)
	if err != nil {
		log.Warn("run log skipped", zap.Error(err))
		return
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		log.Warn("run log write", zap.Error(err))
	}
}

// runLogDir returns $XDG_DATA_HOME/brickout, defaulting to
// ~/.local/share/brickout.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "brickout"), nil
}
