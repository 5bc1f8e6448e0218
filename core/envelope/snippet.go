package envelope

// Snippet is one structured result: the payload text, the imports it needs
// and, for description-bearing envelopes, a human-readable rationale.
type Snippet struct {
	Content     string   `json:"content"`
	Imports     []string `json:"imports"`
	Description *string  `json:"description,omitempty"`
}

// HasDescription reports whether the envelope element carried a description.
func (s Snippet) HasDescription() bool {
	return s.Description != nil
}

// DescriptionOr returns the description, or fallback when there is none.
func (s Snippet) DescriptionOr(fallback string) string {
	if s.Description == nil {
		return fallback
	}
	return *s.Description
}
