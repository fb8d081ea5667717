// Package songlist maintains a livestream setlist archive kept as markdown.
//
// # Annotating
//
// Every ordered-list entry under a "## " section heading is rewritten so its
// time reads hh:mm:ss and its title links to the stream at that moment:
//
//	## 2025/03/16 歌枠 (https://www.youtube.com/watch?v=abc)
//	1. 5:19 Song
//
// becomes
//
//	## 2025/03/16 歌枠 (https://www.youtube.com/watch?v=abc)
//	1. 00:05:19 [Song](https://www.youtube.com/watch?v=abc&t=319s)
//
// Running the annotator again leaves the document unchanged.
//
//	a := songlist.NewAnnotator(songlist.WithBackup(true, "YYYYMMDD-HHmmss"))
//	report, err := a.AnnotateFile(ctx, "README.md")
//
// A section heading without a link aborts the run before anything is
// written. Entries whose time cannot be read are kept verbatim and reported
// as warnings, or abort the run under MalformedAbort.
//
// # Previewing
//
// The document can be rendered to a standalone HTML page with a stylesheet
// inlined:
//
//	p, err := songlist.NewPreviewer(songlist.WithEngine("goldmark"))
//	report, err := p.RenderFile(ctx, "README.md", "assets/css/style.css", "preview.html")
//
// The builtin engine understands headings, lists, paragraphs, bold, italic
// and links. The goldmark engine renders full CommonMark with GFM extensions.
package songlist
