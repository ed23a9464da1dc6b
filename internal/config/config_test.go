package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no stray .env

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.DBPath != "./data/patungan.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.DefaultCurrency != "IDR" {
		t.Errorf("DefaultCurrency = %q, want IDR", cfg.DefaultCurrency)
	}
	if cfg.ReceiptExtractorURL != "" {
		t.Errorf("expected receipt extraction disabled by default, got %q", cfg.ReceiptExtractorURL)
	}
	if cfg.ReceiptExtractorTimeout != 20*time.Second {
		t.Errorf("ReceiptExtractorTimeout = %v", cfg.ReceiptExtractorTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PATUNGAN_ADDR", ":9090")
	t.Setenv("PATUNGAN_DEFAULT_CURRENCY", " usd ")
	t.Setenv("PATUNGAN_RECEIPT_EXTRACTOR_URL", "http://ocr.local/extract")
	t.Setenv("PATUNGAN_RECEIPT_EXTRACTOR_TIMEOUT", "5s")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != ":9090" {
		t.Errorf("Addr = %q, want :9090", cfg.Addr)
	}
	if cfg.DefaultCurrency != "USD" {
		t.Errorf("DefaultCurrency = %q, want USD", cfg.DefaultCurrency)
	}
	if cfg.ReceiptExtractorURL != "http://ocr.local/extract" || cfg.ReceiptExtractorTimeout != 5*time.Second {
		t.Errorf("unexpected extractor config: %q %v", cfg.ReceiptExtractorURL, cfg.ReceiptExtractorTimeout)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("PATUNGAN_DB_PATH=/tmp/from-file.db\nPATUNGAN_CORS_ORIGIN=https://patungan.example\n"), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	// godotenv does not override variables that are already set
	t.Setenv("PATUNGAN_CORS_ORIGIN", "https://override.example")
	t.Setenv("PATUNGAN_DB_PATH", "")
	os.Unsetenv("PATUNGAN_DB_PATH")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "/tmp/from-file.db" {
		t.Errorf("DBPath = %q, want value from file", cfg.DBPath)
	}
	if cfg.CORSOrigin != "https://override.example" {
		t.Errorf("CORSOrigin = %q, want environment to win", cfg.CORSOrigin)
	}

	if _, err := Load(filepath.Join(dir, "missing.env")); err == nil {
		t.Error("expected error for explicit missing env file")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"currency", "PATUNGAN_DEFAULT_CURRENCY", "RUPIAH"},
		{"log format", "LOG_FORMAT", "xml"},
		{"timeout", "PATUNGAN_RECEIPT_EXTRACTOR_TIMEOUT", "0s"},
		{"unparsable duration", "PATUNGAN_SHUTDOWN_TIMEOUT", "soon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (stand-in for testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
