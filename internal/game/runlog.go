package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunLog records one play session.
type RunLog struct {
	ID      string    `json:"id"`
	Maze    string    `json:"maze"`
	Outcome string    `json:"outcome"` // won, lost or abandoned
	Started time.Time `json:"started"`
	Seconds float64   `json:"seconds"` // simulated play time
	Kills   int       `json:"kills"`
	Shots   int       `json:"shots"`
	Hits    int       `json:"hits"` // times an enemy reached the player

	elapsed float64
}

func newRunLog(mazePath string) RunLog {
	return RunLog{
		ID:      uuid.NewString(),
		Maze:    mazePath,
		Started: time.Now().UTC(),
	}
}

// saveRunLog appends the run as a single JSON line to runs.jsonl in dir, or
// in the XDG data directory when dir is empty.
func saveRunLog(dir string, log RunLog) error {
	if dir == "" {
		d, err := runLogDir()
		if err != nil {
			return err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return err
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// runLogDir returns $XDG_DATA_HOME/maze-shooter, defaulting to
// ~/.local/share/maze-shooter.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "maze-shooter"), nil
}
