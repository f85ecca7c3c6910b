package main

import (
	"errors"
	"testing"

	flag "github.com/spf13/pflag"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	args := []string{"score2pdf",
		"-i", "scores.csv",
		"-o", "out",
		"--template", "score-up-display",
		"--assets", "/opt/assets",
		"--timeout", "15",
		"--settle", "500",
		"-q",
	}

	flags, err := parseFlags(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flags.input != "scores.csv" {
		t.Errorf("input = %q, want scores.csv", flags.input)
	}
	if flags.output != "out" {
		t.Errorf("output = %q, want out", flags.output)
	}
	if flags.template != "score-up-display" {
		t.Errorf("template = %q, want score-up-display", flags.template)
	}
	if flags.assetDir != "/opt/assets" {
		t.Errorf("assetDir = %q, want /opt/assets", flags.assetDir)
	}
	if flags.timeout != 15 {
		t.Errorf("timeout = %d, want 15", flags.timeout)
	}
	if flags.settle != 500 {
		t.Errorf("settle = %d, want 500", flags.settle)
	}
	if !flags.quiet {
		t.Error("quiet should be set")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags, err := parseFlags([]string{"score2pdf"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if flags.input != "" || flags.output != "" || flags.template != "" {
		t.Errorf("string flags should default to empty: %+v", flags)
	}
	if flags.timeout != 0 {
		t.Errorf("timeout = %d, want 0 (config default applies)", flags.timeout)
	}
	if flags.settle != -1 {
		t.Errorf("settle = %d, want -1 (config default applies)", flags.settle)
	}
	if flags.quiet || flags.verbose {
		t.Error("bool flags should default to false")
	}
}

func TestParseFlags_RecordFields(t *testing.T) {
	t.Parallel()

	args := []string{"score2pdf",
		"--subject", "数学",
		"--test-name", "期末テスト",
		"--score", "85",
		"--year", "中2",
		"--last-name", "山田",
		"--first-name", "太郎",
	}

	flags, err := parseFlags(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := flags.record
	if rec.subject != "数学" || rec.testName != "期末テスト" || rec.score != 85 ||
		rec.year != "中2" || rec.lastName != "山田" || rec.firstName != "太郎" {
		t.Errorf("unexpected record flags: %+v", rec)
	}
}

func TestParseFlags_Version(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"score2pdf", "--version"})
	if !errors.Is(err, ErrVersionRequested) {
		t.Errorf("error = %v, want %v", err, ErrVersionRequested)
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	_, err := parseFlags([]string{"score2pdf", "--help"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want %v", err, flag.ErrHelp)
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"score2pdf", "--bogus"}); err == nil {
		t.Error("expected error for unknown flag")
	}
}
