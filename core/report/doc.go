// Package report holds the small document model the calculators render their
// human-readable output from, together with the number formatting they share.
//
// A [Document] renders to plain text by default. When the caller attaches
// [FormatMarkdown] to the context with [WithFormat], [Render] produces Markdown
// instead: the document is laid out as HTML and converted with
// html-to-markdown, so headings, bullet lists and emphasis come out the way
// chat front-ends expect.
package report
