package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	score2pdf "github.com/yabed/go-score2pdf"
	"github.com/yabed/go-score2pdf/internal/config"
)

func TestSingleFileName(t *testing.T) {
	t.Parallel()

	rec := &score2pdf.Record{
		Subject:   "数学",
		LastName:  "山田",
		FirstName: "太郎",
	}

	got := singleFileName(rec)
	if !strings.HasPrefix(got, "山田太郎_数学_") {
		t.Errorf("name = %q, want 山田太郎_数学_ prefix", got)
	}
	if !strings.HasSuffix(got, ".pdf") {
		t.Errorf("name = %q, want .pdf suffix", got)
	}
	datePart := strings.TrimSuffix(strings.TrimPrefix(got, "山田太郎_数学_"), ".pdf")
	if _, err := time.Parse("20060102", datePart); err != nil {
		t.Errorf("date part %q should be YYYYMMDD: %v", datePart, err)
	}
}

func TestArchiveFileName(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 14, 30, 45, 0, time.UTC)
	got := archiveFileName(now)
	if got != "成績表_20260315_143045.zip" {
		t.Errorf("name = %q, want 成績表_20260315_143045.zip", got)
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	tests := []struct {
		name       string
		output     string
		defaultDir string
		want       string
	}{
		{
			name:   "explicit file path",
			output: filepath.Join(base, "out.pdf"),
			want:   filepath.Join(base, "out.pdf"),
		},
		{
			name:   "directory gets default name",
			output: base,
			want:   filepath.Join(base, "cert.pdf"),
		},
		{
			name:       "empty uses default dir",
			defaultDir: filepath.Join(base, "sub"),
			want:       filepath.Join(base, "sub", "cert.pdf"),
		},
		{
			name: "empty with empty default dir",
			want: "cert.pdf",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveOutputPath(tt.output, tt.defaultDir, "cert.pdf")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("path = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveOutputPath_CreatesParentDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "a", "b")
	got, err := resolveOutputPath(filepath.Join(dir, "out.zip"), "", "ignored.zip")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join(dir, "out.zip") {
		t.Errorf("path = %q", got)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("parent directory should exist: %v", err)
	}
}

func TestGeneratorOptions_FlagPrecedence(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Render.TimeoutSeconds = 60
	cfg.Render.SettleDelayMillis = 2000
	cfg.Assets.BasePath = "/from/config"

	flags := &cliFlags{timeout: 5, settle: 0, assetDir: "/from/flag"}

	opts := generatorOptions(flags, cfg)

	// Three overrides produce three options: timeout, settle, assets.
	if len(opts) != 3 {
		t.Fatalf("len(opts) = %d, want 3", len(opts))
	}
}

func TestGeneratorOptions_ConfigDefaults(t *testing.T) {
	t.Parallel()

	flags := &cliFlags{settle: -1} // unset sentinel, as parseFlags leaves it
	opts := generatorOptions(flags, config.DefaultConfig())

	// Default config carries timeout and settle; no asset dir.
	if len(opts) != 2 {
		t.Fatalf("len(opts) = %d, want 2", len(opts))
	}
}

func TestLoadConfigFlag(t *testing.T) {
	t.Parallel()

	cfg, err := loadConfig(&cliFlags{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Render.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want default 30", cfg.Render.TimeoutSeconds)
	}

	if _, err := loadConfig(&cliFlags{config: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Error("expected error for missing config file")
	}
}
