// Package timestamp rewrites setlist entries into deep links.
//
// A setlist document is a markdown file made of stream sections. Each section
// starts with a level-2 heading that carries the stream URL in parentheses:
//
//	## 2025-03-16 [【弾き語り】確定申告終わりました歌枠](https://www.youtube.com/watch?v=uUTYwl_U9RY)
//
//	1. 5:19 チェリー / スピッツ
//	1. 16:44 怪獣の花唄 / Vaundy
//
// Annotate walks the document once, carrying the base URL of the current
// section, and rewrites every entry to a normalized time plus a link that
// starts playback where the song begins:
//
//	1. 00:05:19 [チェリー / スピッツ](https://www.youtube.com/watch?v=uUTYwl_U9RY&t=319s)
//
// The rewrite is idempotent: entries that are already linked keep their title
// and get the link recomputed, so a second pass produces the same bytes.
package timestamp
