package assets

import (
	"embed"
	"fmt"
)

//go:embed templates/*
var templates embed.FS

//go:embed styles/*
var styles embed.FS

//go:embed images/*
var images embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
// Implements the Loader interface.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadTemplate loads an HTML template from embedded assets by name.
// The name should not include the .html extension.
func (e *EmbeddedLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// LoadStyle loads a CSS stylesheet from embedded assets by name.
// The name should not include the .css extension.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile("styles/" + name + ".css")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}

	return string(content), nil
}

// LoadImage loads raw image bytes from embedded assets by name.
// The name should not include the .png extension.
func (e *EmbeddedLoader) LoadImage(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	content, err := images.ReadFile("images/" + name + ".png")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrImageNotFound, name)
	}

	return content, nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
