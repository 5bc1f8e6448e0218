package envelope

import (
	"encoding/json"
	"strings"

	"github.com/leofalp/answerkit/core/fence"
)

// jsonFenceMarker opens the fenced JSON block models are asked to return.
const jsonFenceMarker = fence.Marker + "json"

// Option is a functional option for [Extract].
type Option func(*config)

type config struct {
	repair bool
}

// WithRepair enables lenient decoding: a payload that fails strict decoding
// is run through jsonrepair and decoded again, and field values wrapped in a
// schema-like {"type": ..., "value": ...} object are unwrapped.
func WithRepair() Option {
	return func(c *config) {
		c.repair = true
	}
}

func applyOptions(opts ...Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Extract decodes the snippets held by raw, reading each element's payload
// text from field. Snippets are returned in array order, which usually
// reflects the model's preference ranking.
//
// The payload is located as follows: when raw contains a "```json" fence,
// the text between it and the next "```" (or the end of raw) is used;
// otherwise raw is unwrapped with [fence.Strip]. A single JSON object is
// accepted and treated as a one-element array.
//
// Every failure is a [*DecodeError]; no partial result is returned.
//
// Example:
//
//	snippets, err := envelope.Extract(`[{"imports":["a.b.C"],"snippet":"x();"}]`, envelope.FieldSnippet)
//	// snippets[0].Content == "x();", snippets[0].Imports == []string{"a.b.C"}
func Extract(raw string, field Field, opts ...Option) ([]Snippet, error) {
	cfg := applyOptions(opts...)

	payload := locatePayload(raw)
	elements, err := decodeElements(payload, cfg.repair)
	if err != nil {
		return nil, err
	}

	snippets := make([]Snippet, 0, len(elements))
	for i, element := range elements {
		snippet, err := decodeSnippet(i, element, field, cfg.repair)
		if err != nil {
			return nil, err
		}
		snippets = append(snippets, snippet)
	}
	return snippets, nil
}

// ExtractOptional is [Extract] for answers that may be absent: a nil raw
// yields an empty, non-nil slice and no error.
func ExtractOptional(raw *string, field Field, opts ...Option) ([]Snippet, error) {
	if raw == nil {
		return []Snippet{}, nil
	}
	return Extract(*raw, field, opts...)
}

// locatePayload returns the text expected to hold the JSON envelope.
func locatePayload(raw string) string {
	if idx := strings.Index(raw, jsonFenceMarker); idx >= 0 {
		body := raw[idx+len(jsonFenceMarker):]
		if end := strings.Index(body, fence.Marker); end >= 0 {
			body = body[:end]
		}
		return strings.TrimSpace(body)
	}
	return fence.Strip(raw, fence.WithLanguages(fence.DefaultLanguage, "json"))
}

func decodeSnippet(index int, element json.RawMessage, field Field, repair bool) (Snippet, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(element, &obj); err != nil || obj == nil {
		return Snippet{}, &DecodeError{Index: index, Payload: string(element), Err: ErrElementType}
	}

	fieldErr := func(name string, cause error) error {
		return &DecodeError{Index: index, Field: name, Payload: string(element), Err: cause}
	}

	value, ok := lookup(obj, field.Name(), repair)
	if !ok {
		return Snippet{}, fieldErr(field.Name(), ErrMissingField)
	}
	var content string
	if err := json.Unmarshal(value, &content); err != nil {
		return Snippet{}, fieldErr(field.Name(), ErrFieldType)
	}

	snippet := Snippet{Content: content, Imports: []string{}}

	if value, ok := lookup(obj, importsKey, repair); ok {
		var imports []string
		if err := json.Unmarshal(value, &imports); err != nil {
			return Snippet{}, fieldErr(importsKey, ErrFieldType)
		}
		if imports != nil {
			snippet.Imports = imports
		}
	}

	if value, ok := lookup(obj, descriptionKey, repair); ok {
		var description string
		if err := json.Unmarshal(value, &description); err != nil {
			return Snippet{}, fieldErr(descriptionKey, ErrFieldType)
		}
		snippet.Description = &description
	}

	return snippet, nil
}

// lookup returns the raw value of key, treating an explicit JSON null as
// absent. In repair mode a schema-wrapped value is unwrapped first.
func lookup(obj map[string]json.RawMessage, key string, repair bool) (json.RawMessage, bool) {
	value, ok := obj[key]
	if !ok {
		return nil, false
	}
	if repair {
		value = unwrapSchemaValue(value)
	}
	if isNull(value) {
		return nil, false
	}
	return value, true
}
