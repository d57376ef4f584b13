package logging_test

import (
	"bytes"
	"errors"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/valentin-kaiser/go-deviceid/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logging.Level{
		"trace":    logging.TraceLevel,
		"DEBUG":    logging.DebugLevel,
		" info ":   logging.InfoLevel,
		"warning":  logging.WarnLevel,
		"error":    logging.ErrorLevel,
		"off":      logging.DisabledLevel,
		"whatever": logging.InfoLevel,
	}

	for name, expected := range tests {
		if got := logging.ParseLevel(name); got != expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", name, got, expected)
		}
	}
}

func TestStandardAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := logging.NewStandardAdapterWithLogger(log.New(&buf, "", 0)).WithPackage("identity")

	adapter.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug message should be filtered at info level, got %q", buf.String())
	}

	adapter.Warn().Field("path", "/tmp/x").Err(errors.New("boom")).Msg("write failed")
	line := buf.String()
	for _, part := range []string{"[WARN]", "(identity)", "write failed", "path=/tmp/x", "error=boom"} {
		if !strings.Contains(line, part) {
			t.Errorf("expected %q in %q", part, line)
		}
	}
}

func TestZerologAdapterLevel(t *testing.T) {
	var buf bytes.Buffer
	adapter := logging.NewZerologAdapterWithLogger(zerolog.New(&buf))

	adapter.SetLevel(logging.WarnLevel)
	adapter.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info message should be dropped at warn level, got %q", buf.String())
	}

	adapter.WithPackage("identity").Error().Field("location", 1).Msg("kept")
	out := buf.String()
	if !strings.Contains(out, `"package":"identity"`) || !strings.Contains(out, `"location":1`) {
		t.Errorf("unexpected zerolog output %q", out)
	}
}

func TestPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	logging.SetGlobalAdapter(logging.NewZerologAdapterWithLogger(zerolog.New(&buf)))
	defer logging.SetGlobalAdapter(logging.NewNoOpAdapter())

	logger := logging.GetPackageLogger("cache-test")
	logger.Debug().Msg("filtered")
	if buf.Len() != 0 {
		t.Fatalf("debug should be filtered by the global info level, got %q", buf.String())
	}

	logging.SetPackageLevel("cache-test", logging.DebugLevel)
	defer logging.EnablePackage("cache-test")

	logger.Debug().Msg("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug should be visible after SetPackageLevel, got %q", buf.String())
	}

	if logging.GetPackageLevel("cache-test") != logging.DebugLevel {
		t.Errorf("GetPackageLevel = %v", logging.GetPackageLevel("cache-test"))
	}

	found := false
	for _, pkg := range logging.ListPackages() {
		if pkg == "cache-test" {
			found = true
		}
	}
	if !found {
		t.Error("ListPackages should contain cache-test")
	}

	logging.DisablePackage("cache-test")
	buf.Reset()
	logger.Error().Msg("silenced")
	if buf.Len() != 0 {
		t.Errorf("disabled package should not log, got %q", buf.String())
	}
}

func TestNewFileWriter(t *testing.T) {
	if logging.NewFileWriter(t.TempDir(), logging.FileConfig{}) != nil {
		t.Error("NewFileWriter should return nil without a file name")
	}

	dir := t.TempDir()
	w := logging.NewFileWriter(dir, logging.FileConfig{Name: "deviceid.log", MaxSize: 1})
	if w == nil {
		t.Fatal("NewFileWriter returned nil")
	}
	defer w.Close()

	if w.Filename != filepath.Join(dir, "deviceid.log") {
		t.Errorf("Filename = %q", w.Filename)
	}

	if _, err := w.Write([]byte("line\n")); err != nil {
		t.Errorf("Write failed: %v", err)
	}
}
