package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"casino-sim/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestInitWritesToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	Init(config.LogConfig{Level: "warn", File: path, MaxMB: 1, Service: "test-svc"})
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		setWriter(os.Stdout)
	})

	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("global level = %v, want warn", zerolog.GlobalLevel())
	}
	log.Info().Msg("dropped")
	log.Warn().Msg("kept")
	if _, err := Writer().Write([]byte("raw line\n")); err != nil {
		t.Fatalf("raw write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should be filtered: %s", out)
	}
	if !strings.Contains(out, `"message":"kept"`) || !strings.Contains(out, `"service":"test-svc"`) {
		t.Fatalf("missing warn line: %s", out)
	}
	if !strings.Contains(out, "raw line") {
		t.Fatalf("missing raw writer output: %s", out)
	}
}

func TestInitFallsBackOnBadLevel(t *testing.T) {
	Init(config.LogConfig{Level: "shouting"})
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })
	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("global level = %v, want info", zerolog.GlobalLevel())
	}
}
