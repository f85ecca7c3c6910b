// Package assets provides the HTML template, CSS stylesheet, and image
// files used to compose certificate markup.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (defaults)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in scorecard template, stylesheet,
// and the subject medal/ribbon images embedded at compile time.
//
// FilesystemLoader allows users to supply replacement assets from a
// directory, with path traversal protection and symlink resolution.
//
// Resolver is the loader used by the generator. It tries the custom
// FilesystemLoader first, falling back to EmbeddedLoader when an asset is
// not found, so users can override one image without copying everything.
//
// # Directory Structure
//
//	{basePath}/
//	├── templates/
//	│   └── {name}.html          # certificate HTML with typed placeholders
//	├── styles/
//	│   └── {name}.css           # certificate CSS with .medal/.ribbon rules
//	└── images/
//	    └── {name}.png           # medal, ribbon, and decorative images
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
