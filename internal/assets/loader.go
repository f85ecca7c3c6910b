package assets

// Default asset names for the built-in certificate layout.
const (
	DefaultTemplateName = "scorecard"
	DefaultStyleName    = "scorecard"
)

// Loader defines the contract for loading certificate assets.
// Implementations may load from embedded files, the filesystem, or both.
type Loader interface {
	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadStyle loads a CSS stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadImage loads raw image bytes by name (without .png extension).
	// Returns ErrImageNotFound if the image doesn't exist.
	LoadImage(name string) ([]byte, error)
}
