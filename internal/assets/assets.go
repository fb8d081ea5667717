package assets

// PageTemplateName is the template wrapping every preview page.
const PageTemplateName = "page"

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a built-in CSS style by name using the embedded loader.
// Returns ErrStyleNotFound if the style does not exist.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// LoadPageTemplate loads the embedded page template.
func LoadPageTemplate() (string, error) {
	return defaultLoader.LoadTemplate(PageTemplateName)
}
