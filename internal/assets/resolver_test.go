package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewResolver_EmbeddedOnly(t *testing.T) {
	t.Parallel()

	resolver, err := NewResolver("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := resolver.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	if !strings.Contains(content, "[subject]{.subject}") {
		t.Error("embedded template should be served")
	}
}

func TestNewResolver_InvalidCustomPath(t *testing.T) {
	t.Parallel()

	_, err := NewResolver(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("error = %v, want %v", err, ErrInvalidBasePath)
	}
}

func TestResolver_CustomTakesPrecedence(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "templates"), 0o750); err != nil {
		t.Fatalf("creating templates dir: %v", err)
	}
	custom := "<html><body>override</body></html>"
	path := filepath.Join(base, "templates", DefaultTemplateName+".html")
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatalf("writing template: %v", err)
	}

	resolver, err := NewResolver(base)
	if err != nil {
		t.Fatalf("creating resolver: %v", err)
	}

	content, err := resolver.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate: %v", err)
	}
	if content != custom {
		t.Errorf("custom template should win, got %q", content)
	}
}

func TestResolver_FallsBackToEmbedded(t *testing.T) {
	t.Parallel()

	// Custom dir exists but holds nothing; every load falls through.
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "images"), 0o750); err != nil {
		t.Fatalf("creating images dir: %v", err)
	}

	resolver, err := NewResolver(base)
	if err != nil {
		t.Fatalf("creating resolver: %v", err)
	}

	raw, err := resolver.LoadImage("crest")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if len(raw) == 0 {
		t.Error("embedded image should be served as fallback")
	}

	css, err := resolver.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if !strings.Contains(css, ".medal") {
		t.Error("embedded stylesheet should be served as fallback")
	}
}

func TestResolver_ValidationErrorsDoNotFallBack(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "templates"), 0o750); err != nil {
		t.Fatalf("creating templates dir: %v", err)
	}

	resolver, err := NewResolver(base)
	if err != nil {
		t.Fatalf("creating resolver: %v", err)
	}

	if _, err := resolver.LoadTemplate("../escape"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("error = %v, want %v", err, ErrInvalidAssetName)
	}
}
