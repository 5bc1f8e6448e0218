// Package markup turns answers that arrive as rendered HTML back into
// Markdown, so that code blocks reach the segmenter as fences.
package markup
