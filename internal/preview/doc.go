// Package preview renders a setlist document to a standalone HTML page.
//
// Two body renderers are available:
//   - builtin: a line-oriented converter for the subset the setlist uses
//     (headings 1-3, ordered and bullet lists, bold, italic, links);
//   - goldmark: full CommonMark with GFM extensions via Goldmark.
//
// The rendered body is wrapped by a PageBuilder into the page template with
// the stylesheet text injected into a <style> block.
package preview
