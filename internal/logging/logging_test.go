package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewFile_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	log := NewFile(dir)
	log.Info().Str("event", "507f1f77bcf86cd799439011").Msg("opened detail")

	b, err := os.ReadFile(filepath.Join(dir, "eventhive.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := strings.TrimSpace(string(b))
	if !strings.HasPrefix(line, "{") || !strings.Contains(line, `"opened detail"`) {
		t.Fatalf("expected a JSON log line, got %q", line)
	}
}

func TestNewFile_EmptyDirDiscards(t *testing.T) {
	log := NewFile("")
	// Must not panic or create files anywhere; the logger just swallows it.
	log.Info().Msg("dropped")
}

func TestNewFile_DebugEnvRaisesLevel(t *testing.T) {
	t.Setenv("EVENTHIVE_DEBUG", "1")
	dir := t.TempDir()

	log := NewFile(dir)
	log.Debug().Msg("verbose")

	b, err := os.ReadFile(filepath.Join(dir, "eventhive.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), `"verbose"`) {
		t.Fatalf("debug line should be written with EVENTHIVE_DEBUG set, got %q", string(b))
	}
}
