package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const runLogFile = "runs.jsonl"

// RunLog summarises one play session.
type RunLog struct {
	Timestamp time.Time      `json:"timestamp"`
	RunID     string         `json:"run_id"`
	Frames    int            `json:"frames"`
	Seconds   float64        `json:"seconds"`
	Tags      []string       `json:"tags"`
	Cursors   map[string]int `json:"cursors"` // character name -> script cursor
	Finished  bool           `json:"finished"`
}

// appendRunLog writes rl as one JSON line at the end of runs.jsonl in the
// data dir.
func appendRunLog(rl RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return fmt.Errorf("run log dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	line, err := json.Marshal(rl)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, runLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()
	_, err = f.Write(append(line, '\n'))
	return err
}

// runLogDir returns the XDG data directory for the game:
// $XDG_DATA_HOME/winternight, defaulting to ~/.local/share/winternight.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "winternight"), nil
}
