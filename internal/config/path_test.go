package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	if got := ExpandPath("~/data/expenses.json"); got != filepath.Join(home, "data/expenses.json") {
		t.Errorf("ExpandPath(~/...) = %q", got)
	}
	if got := ExpandPath("~"); got != home {
		t.Errorf("ExpandPath(~) = %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(empty) = %q", got)
	}

	t.Setenv("OUTFLOW_TEST_DIR", "/tmp/outflow")
	if got := ExpandPath("$OUTFLOW_TEST_DIR/x.json"); got != "/tmp/outflow/x.json" {
		t.Errorf("ExpandPath($VAR) = %q", got)
	}
}

func TestDefaultDataPath(t *testing.T) {
	if got := DefaultDataPath("file"); !strings.HasSuffix(got, "expenses.json") {
		t.Errorf("DefaultDataPath(file) = %q", got)
	}
	if got := DefaultDataPath("sqlite"); !strings.HasSuffix(got, "outflow.db") {
		t.Errorf("DefaultDataPath(sqlite) = %q", got)
	}
}
