// Package assets provides the embedded page template and built-in styles
// used by the preview renderer.
//
// # Directory Structure
//
//	styles/
//	└── {name}.css     # built-in stylesheets (e.g., default.css)
//	templates/
//	└── {name}.html    # page templates (e.g., page.html)
//
// # Security
//
// Asset names are validated to prevent path traversal: a name never contains
// separators or dots, so it always resolves inside the embedded directories.
package assets
