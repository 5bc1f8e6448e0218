// Package blocks splits a raw model answer into an ordered sequence of
// displayable segments: plain text and fenced code tagged with a language.
//
// [Segment] is total: any input, including truncated output with an
// unterminated fence, is representable as a sequence of [Block] values.
// [ToSource] rebuilds Markdown from a block sequence so that a segmented
// answer can be re-rendered or diffed against the original. [Response] ties
// a segmented answer to the query that produced it and the files it refers
// to.
package blocks
