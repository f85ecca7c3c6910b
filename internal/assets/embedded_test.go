package assets

import (
	"errors"
	"strings"
	"testing"
)

// subjectImages lists every embedded medal/ribbon pair plus the two fixed
// decorative images.
var subjectImages = []string{
	"n_lang1", "n_lang2",
	"math1", "math2",
	"social1", "social2",
	"science1", "science2",
	"eng1", "eng2",
	"tech1", "tech2",
	"music1", "music2",
	"sport1", "sport2",
	"crest", "twinkle",
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	content, err := loader.LoadTemplate(DefaultTemplateName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content, "<body") {
		t.Error("template should contain a body element")
	}
	if !strings.Contains(content, "[subject]{.subject}") {
		t.Error("template should contain placeholder tokens")
	}
}

func TestEmbeddedLoader_LoadTemplate_NotFound(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	_, err := loader.LoadTemplate("missing")
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("error = %v, want %v", err, ErrTemplateNotFound)
	}
}

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	content, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(content, ".medal") {
		t.Error("stylesheet should contain the medal rule")
	}
	if !strings.Contains(content, ".ribbon") {
		t.Error("stylesheet should contain the ribbon rule")
	}
}

func TestEmbeddedLoader_LoadStyle_NotFound(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	_, err := loader.LoadStyle("missing")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("error = %v, want %v", err, ErrStyleNotFound)
	}
}

func TestEmbeddedLoader_LoadImage_AllSubjects(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()
	pngMagic := []byte{0x89, 'P', 'N', 'G'}

	for _, name := range subjectImages {
		raw, err := loader.LoadImage(name)
		if err != nil {
			t.Errorf("LoadImage(%q): %v", name, err)
			continue
		}
		if len(raw) < len(pngMagic) || string(raw[:4]) != string(pngMagic) {
			t.Errorf("LoadImage(%q): not a PNG", name)
		}
	}
}

func TestEmbeddedLoader_LoadImage_NotFound(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	_, err := loader.LoadImage("missing")
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("error = %v, want %v", err, ErrImageNotFound)
	}
}

func TestEmbeddedLoader_RejectsInvalidNames(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{"", "../x", "a.b"} {
		if _, err := loader.LoadTemplate(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate(%q) error = %v, want %v", name, err, ErrInvalidAssetName)
		}
		if _, err := loader.LoadImage(name); !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadImage(%q) error = %v, want %v", name, err, ErrInvalidAssetName)
		}
	}
}
