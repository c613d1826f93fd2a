package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spacehole-rogue/supertrek/internal/config"
)

func TestNewRespectsLevelAndFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := New(&buf, config.LoggingConfig{Level: "warn", JSONFormat: true})
	logger.Info("hidden")
	logger.Warn("shown", "slot", 3)

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line logged at warn level: %q", out)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("output is not json: %v (%q)", err, out)
	}
	if rec["msg"] != "shown" || rec["slot"] != float64(3) {
		t.Fatalf("record = %v", rec)
	}
}

func TestInitWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trek.log")
	logger, closer := Init(config.LoggingConfig{Level: "info"}, path)
	logger.Info("engine ready")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "engine ready") {
		t.Fatalf("log file = %q", data)
	}
}
