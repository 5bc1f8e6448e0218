package blocks

import (
	"encoding/json"
	"slices"
)

// Response is a segmented answer together with the query that produced it
// and the identifiers of the files the query referenced.
type Response struct {
	query  string
	files  []string
	blocks []Block
}

// NewResponse segments raw and records query and files. Duplicate file
// identifiers are dropped; the first occurrence keeps its position.
func NewResponse(query, raw string, files ...string) *Response {
	return &Response{
		query:  query,
		files:  uniqueFiles(files),
		blocks: Segment(raw),
	}
}

// Query returns the query that produced the answer.
func (r *Response) Query() string {
	return r.query
}

// Files returns a copy of the referenced file identifiers.
func (r *Response) Files() []string {
	out := make([]string, len(r.files))
	copy(out, r.files)
	return out
}

// Blocks returns a copy of the answer's blocks in source order.
func (r *Response) Blocks() []Block {
	out := make([]Block, len(r.blocks))
	copy(out, r.blocks)
	return out
}

// SetBlocks replaces the whole block list. Callers that post-process an
// answer (for example to drop blocks already applied to the editor) use it
// instead of mutating individual blocks.
func (r *Response) SetBlocks(blocks []Block) {
	r.blocks = make([]Block, len(blocks))
	copy(r.blocks, blocks)
}

// CodeBlocks returns the fenced blocks, optionally restricted to the given
// languages.
func (r *Response) CodeBlocks(languages ...string) []Block {
	out := []Block{}
	for _, b := range r.blocks {
		if b.Kind != KindFenced {
			continue
		}
		if len(languages) == 0 || slices.Contains(languages, b.Language) {
			out = append(out, b)
		}
	}
	return out
}

// Source rebuilds Markdown from the current blocks with [ToSource].
func (r *Response) Source() string {
	return ToSource(r.blocks)
}

// MarshalJSON exposes the response fields for logging and CLI output.
func (r *Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Query  string   `json:"query,omitempty"`
		Files  []string `json:"files"`
		Blocks []Block  `json:"blocks"`
	}{
		Query:  r.query,
		Files:  r.files,
		Blocks: r.blocks,
	})
}

func uniqueFiles(files []string) []string {
	out := make([]string, 0, len(files))
	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
