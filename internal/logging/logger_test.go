package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func resetLogging() {
	CloseAll()
	enabled = false
	logsDir = ""
}

func TestInitialize_DisabledByDefault(t *testing.T) {
	t.Setenv("ADWASTE_DEBUG", "")
	defer resetLogging()

	dir := t.TempDir()
	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if IsEnabled() {
		t.Error("IsEnabled() = true, want false without ADWASTE_DEBUG=1")
	}

	// No log directory should be created, and logging calls are no-ops.
	Ads("this should go nowhere")
	if _, err := os.Stat(filepath.Join(dir, ".adwaste")); !os.IsNotExist(err) {
		t.Error("log directory should not exist when logging is disabled")
	}
}

func TestInitialize_EmptyWorkspace(t *testing.T) {
	defer resetLogging()

	if err := Initialize(""); err == nil {
		t.Error("Initialize(\"\") should error")
	}
}

func TestInitialize_EnabledWritesFiles(t *testing.T) {
	t.Setenv("ADWASTE_DEBUG", "1")
	defer resetLogging()

	dir := t.TempDir()
	if err := Initialize(dir); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if !IsEnabled() {
		t.Fatal("IsEnabled() = false, want true")
	}

	Ads("fetched %d rows", 3)
	AdsError("boom")
	CloseAll()

	entries, err := os.ReadDir(filepath.Join(dir, ".adwaste", "logs"))
	if err != nil {
		t.Fatalf("reading logs dir: %v", err)
	}

	var adsLog string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_ads.log") {
			adsLog = filepath.Join(dir, ".adwaste", "logs", e.Name())
		}
	}
	if adsLog == "" {
		t.Fatalf("no ads log file found, entries: %v", entries)
	}

	data, err := os.ReadFile(adsLog)
	if err != nil {
		t.Fatalf("reading ads log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "[INFO] fetched 3 rows") {
		t.Errorf("ads log missing info line: %q", content)
	}
	if !strings.Contains(content, "[ERROR] boom") {
		t.Errorf("ads log missing error line: %q", content)
	}
}

func TestGet_ReturnsSameLoggerPerCategory(t *testing.T) {
	t.Setenv("ADWASTE_DEBUG", "1")
	defer resetLogging()

	if err := Initialize(t.TempDir()); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	a := Get(CategoryGemini)
	b := Get(CategoryGemini)
	if a != b {
		t.Error("Get should return the cached logger for a category")
	}
}

func TestNoOpLoggerDoesNotPanic(t *testing.T) {
	defer resetLogging()

	l := Get(CategoryDryRun)
	l.Debug("debug %s", "x")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
}
