// Package envelope extracts structured code-generation results from a raw
// model answer that is expected to hold a JSON array of objects, or a single
// JSON object, optionally wrapped in a Markdown fence.
//
// Each element yields a [Snippet]: the payload text read from a
// caller-chosen [Field], an ordered import list and an optional description.
// Extraction is all-or-nothing. A payload that is not an array or object, an
// element that is not an object, or a missing payload field fails the whole
// call with a [*DecodeError]; an empty result is only ever returned for a
// nil answer (see [ExtractOptional]) or an empty array.
//
// Strict decoding is the default. [WithRepair] opts into a lenient mode that
// repairs malformed JSON with jsonrepair and unwraps values the model
// wrapped in a schema-like {"type": ..., "value": ...} object before
// giving up.
package envelope
