package assets

import "errors"

// Resolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls
// back to embedded if the asset is not found in the custom location.
type Resolver struct {
	custom   Loader // nil if no custom path configured
	embedded Loader
}

// NewResolver creates a Resolver. If customBasePath is empty, only
// embedded assets are used. Otherwise custom assets take precedence with
// fallback to embedded. Returns error if customBasePath is set but invalid.
func NewResolver(customBasePath string) (*Resolver, error) {
	resolver := &Resolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadTemplate loads an HTML template, trying the custom loader first.
func (r *Resolver) LoadTemplate(name string) (string, error) {
	return loadWithFallback(r, name, Loader.LoadTemplate)
}

// LoadStyle loads a CSS stylesheet, trying the custom loader first.
func (r *Resolver) LoadStyle(name string) (string, error) {
	return loadWithFallback(r, name, Loader.LoadStyle)
}

// LoadImage loads image bytes, trying the custom loader first.
func (r *Resolver) LoadImage(name string) ([]byte, error) {
	return loadWithFallback(r, name, Loader.LoadImage)
}

// loadWithFallback implements the custom-first, fallback-to-embedded logic.
// Only "not found" errors trigger the fallback; validation and I/O errors
// surface immediately.
func loadWithFallback[T any](r *Resolver, name string, loadFn func(Loader, string) (T, error)) (T, error) {
	if r.custom == nil {
		return loadFn(r.embedded, name)
	}

	content, err := loadFn(r.custom, name)
	if err == nil {
		return content, nil
	}
	if !isNotFoundError(err) {
		var zero T
		return zero, err
	}

	return loadFn(r.embedded, name)
}

// isNotFoundError reports whether err is one of the not-found sentinels.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrTemplateNotFound) ||
		errors.Is(err, ErrStyleNotFound) ||
		errors.Is(err, ErrImageNotFound)
}

// Compile-time interface check.
var _ Loader = (*Resolver)(nil)
