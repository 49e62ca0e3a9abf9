// Package blogscrap provides a CLI-based blog archiving crawler.
// It detects which of two publishing-platform layouts (Blogspot or
// WordPress) a blog uses, walks the site's pagination chain, extracts each
// article's main content, caches it as a minimal HTML artifact, and converts
// it to Markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, fs/, htmltomarkdown/).
package blogscrap
