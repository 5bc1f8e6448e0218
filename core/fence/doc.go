// Package fence recognises and removes Markdown code fences in raw model
// answers.
//
// [Strip] performs a best-effort, single-pass unwrap of one outer fence pair
// (and, with [WithDocComment], one documentation-comment wrapper) from a
// whole answer. It never strips a marker that is not at the absolute start or
// end of the trimmed input, and it never strips an opening marker without its
// closing counterpart.
//
// [ParseLine] is the shared fence-line recogniser used by the block segmenter
// and the envelope extractor: a line made of a run of three or more identical
// marker characters, optionally followed by a single language token.
package fence
