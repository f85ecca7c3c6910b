package score2pdf

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Template type constants.
const (
	TemplateScoreDisplay   = "score-display"    // plain score
	TemplateScoreUpDisplay = "score-up-display" // score followed by an "UP" suffix
)

// Score bounds.
const (
	MinScore = 0
	MaxScore = 100
)

// Field name constants. These double as the required column names for
// bulk table input.
const (
	FieldSubject    = "subject"
	FieldTestName   = "test_name"
	FieldScore      = "score"
	FieldSchoolYear = "sc_year"
	FieldLastName   = "last_name"
	FieldFirstName  = "first_name"
)

// RequiredColumns lists the six record fields in canonical column order.
func RequiredColumns() []string {
	return []string{
		FieldSubject,
		FieldTestName,
		FieldScore,
		FieldSchoolYear,
		FieldLastName,
		FieldFirstName,
	}
}

// SubjectAssets maps a subject to its decorative images and, for subjects
// whose name must wrap, a two-line display label.
type SubjectAssets struct {
	Medal   string // image asset name (without extension)
	Ribbon  string // image asset name (without extension)
	TwoLine string // two-line display label, empty for single-line subjects
}

// defaultSubject is used when asset lookup receives an unknown subject.
// Lookup after validation always succeeds, so this is a safety net only.
const defaultSubject = "国語"

// subjectAssets is process-wide read-only configuration, never mutated
// after package init.
var subjectAssets = map[string]SubjectAssets{
	"国語":   {Medal: "n_lang1", Ribbon: "n_lang2"},
	"数学":   {Medal: "math1", Ribbon: "math2"},
	"社会":   {Medal: "social1", Ribbon: "social2"},
	"理科":   {Medal: "science1", Ribbon: "science2"},
	"英語":   {Medal: "eng1", Ribbon: "eng2"},
	"技術家庭": {Medal: "tech1", Ribbon: "tech2", TwoLine: "技術\n家庭"},
	"音楽":   {Medal: "music1", Ribbon: "music2"},
	"保健体育": {Medal: "sport1", Ribbon: "sport2", TwoLine: "保健\n体育"},
}

// Subjects returns the known subject names in display order.
func Subjects() []string {
	return []string{"国語", "数学", "社会", "理科", "英語", "技術家庭", "音楽", "保健体育"}
}

// SchoolYears returns the known grade labels in display order.
func SchoolYears() []string {
	return []string{"小1", "小2", "小3", "小4", "小5", "小6", "中1", "中2", "中3"}
}

// IsValidSubject reports whether subject is one of the known subject names.
func IsValidSubject(subject string) bool {
	_, ok := subjectAssets[subject]
	return ok
}

// IsValidTemplateType reports whether t is a known template type.
func IsValidTemplateType(t string) bool {
	switch t {
	case TemplateScoreDisplay, TemplateScoreUpDisplay:
		return true
	}
	return false
}

// LookupSubjectAssets resolves the asset pair for a subject.
// Unknown subjects fall back to the default subject; validation upstream
// makes that case unreachable in practice.
func LookupSubjectAssets(subject string) SubjectAssets {
	if sa, ok := subjectAssets[subject]; ok {
		return sa
	}
	return subjectAssets[defaultSubject]
}

// Record is one student/subject/score entry to be turned into a PDF.
// The template type travels with the record so independent requests never
// share ambient state.
type Record struct {
	Subject      string
	TestName     string
	Score        int
	SchoolYear   string
	LastName     string
	FirstName    string
	TemplateType string
}

// Validate checks the record against required-field and range rules.
// All failing checks are collected into a single joined error rather than
// short-circuiting, so the caller can report every violation at once.
// Individual violations wrap sentinel errors for errors.Is checks.
func (r *Record) Validate() error {
	var errs []error

	for _, f := range []struct {
		name  string
		value string
	}{
		{FieldSubject, r.Subject},
		{FieldTestName, r.TestName},
		{FieldSchoolYear, r.SchoolYear},
		{FieldLastName, r.LastName},
		{FieldFirstName, r.FirstName},
	} {
		if strings.TrimSpace(f.value) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, f.name))
		}
	}

	if r.Subject != "" && !IsValidSubject(r.Subject) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidSubject, r.Subject))
	}

	if r.Score < MinScore || r.Score > MaxScore {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrScoreOutOfRange, r.Score))
	}

	if !IsValidTemplateType(r.TemplateType) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTemplate, r.TemplateType))
	}

	return errors.Join(errs...)
}

// ParseRecord builds a Record from a field-name-to-value mapping, such as
// one row of a bulk table or a set of form inputs. Like Validate, it
// collects every violation instead of stopping at the first. A score that
// does not parse as an integer is a distinct failure from one out of range.
func ParseRecord(fields map[string]string, templateType string) (*Record, error) {
	var errs []error

	get := func(name string) string { return strings.TrimSpace(fields[name]) }

	for _, name := range RequiredColumns() {
		if get(name) == "" {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingField, name))
		}
	}

	subject := get(FieldSubject)
	if subject != "" && !IsValidSubject(subject) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidSubject, subject))
	}

	var score int
	if raw := get(FieldScore); raw != "" {
		var err error
		score, err = strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: %q", ErrScoreNotInteger, raw))
		} else if score < MinScore || score > MaxScore {
			errs = append(errs, fmt.Errorf("%w: got %d", ErrScoreOutOfRange, score))
		}
	}

	if !IsValidTemplateType(templateType) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidTemplate, templateType))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Record{
		Subject:      subject,
		TestName:     get(FieldTestName),
		Score:        score,
		SchoolYear:   get(FieldSchoolYear),
		LastName:     get(FieldLastName),
		FirstName:    get(FieldFirstName),
		TemplateType: templateType,
	}, nil
}
