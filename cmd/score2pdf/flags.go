package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// ErrVersionRequested signals that --version was given; main prints and exits.
var ErrVersionRequested = errors.New("version requested")

// recordFlags holds the single-record input fields.
type recordFlags struct {
	subject   string
	testName  string
	score     int
	year      string
	lastName  string
	firstName string
}

// cliFlags holds all parsed command-line options.
type cliFlags struct {
	config   string
	input    string // bulk table file (.csv or .xlsx); empty = single-record mode
	output   string // output file or directory
	template string
	assetDir string
	timeout  int // seconds
	settle   int // milliseconds
	quiet    bool
	verbose  bool
	record   recordFlags
}

// parseFlags parses command-line arguments into cliFlags.
func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("score2pdf", flag.ContinueOnError)

	fs.StringVarP(&flags.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&flags.input, "input", "i", "", "bulk table file (.csv or .xlsx); omit for single-record mode")
	fs.StringVarP(&flags.output, "output", "o", "", "output file or directory")
	fs.StringVar(&flags.template, "template", "", "template type: score-display or score-up-display")
	fs.StringVar(&flags.assetDir, "assets", "", "custom asset directory (templates/, styles/, images/)")
	fs.IntVar(&flags.timeout, "timeout", 0, "per-render timeout in seconds")
	fs.IntVar(&flags.settle, "settle", -1, "post-load settle delay in milliseconds")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose diagnostics")
	version := fs.BoolP("version", "V", false, "print version and exit")

	fs.StringVar(&flags.record.subject, "subject", "", "subject name (single-record mode)")
	fs.StringVar(&flags.record.testName, "test-name", "", "test name (single-record mode)")
	fs.IntVar(&flags.record.score, "score", 0, "score 0-100 (single-record mode)")
	fs.StringVar(&flags.record.year, "year", "", "grade label, e.g. 小3 (single-record mode)")
	fs.StringVar(&flags.record.lastName, "last-name", "", "last name (single-record mode)")
	fs.StringVar(&flags.record.firstName, "first-name", "", "first name (single-record mode)")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}

	if *version {
		fmt.Println("score2pdf " + Version)
		return nil, ErrVersionRequested
	}

	return flags, nil
}
