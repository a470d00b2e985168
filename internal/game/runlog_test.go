package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunLogDirXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := runLogDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(tmp, "winternight"); dir != want {
		t.Errorf("runLogDir() = %q, want %q", dir, want)
	}
}

func TestRunLogDirHomeFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "")

	dir, err := runLogDir()
	if err != nil {
		t.Skip("no home directory")
	}
	suffix := filepath.Join(".local", "share", "winternight")
	if !strings.HasSuffix(dir, suffix) {
		t.Errorf("dir %q does not end with %q", dir, suffix)
	}
}

func TestAppendRunLog(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	for i := 0; i < 3; i++ {
		err := appendRunLog(RunLog{
			RunID:   "run",
			Frames:  i + 1,
			Tags:    []string{"OpenedDoor"},
			Cursors: map[string]int{"Door": 8},
		})
		if err != nil {
			t.Fatalf("appendRunLog: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(tmp, "winternight", runLogFile))
	if err != nil {
		t.Fatalf("runs.jsonl not found: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 log lines, got %d", len(lines))
	}
	var last RunLog
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("last line is not JSON: %v", err)
	}
	if last.Frames != 3 || last.Cursors["Door"] != 8 {
		t.Errorf("last entry = %+v", last)
	}
}
