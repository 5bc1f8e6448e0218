package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kaptinlin/jsonrepair"
)

// decodeElements decodes payload as a JSON array of raw elements, accepting
// a single JSON object as a one-element array. In repair mode a payload that
// fails strict decoding is repaired with jsonrepair and decoded once more.
func decodeElements(payload string, repair bool) ([]json.RawMessage, error) {
	elements, err := decodeArrayOrObject([]byte(payload))
	if err == nil {
		return elements, nil
	}

	if repair {
		repaired, repairErr := jsonrepair.JSONRepair(payload)
		if repairErr == nil {
			if elements, retryErr := decodeArrayOrObject([]byte(repaired)); retryErr == nil {
				return elements, nil
			}
		}
	}

	return nil, &DecodeError{
		Index:   -1,
		Payload: payload,
		Err:     fmt.Errorf("%w: %w", ErrNotEnvelope, err),
	}
}

func decodeArrayOrObject(data []byte) ([]json.RawMessage, error) {
	var elements []json.RawMessage
	arrayErr := json.Unmarshal(data, &elements)
	if arrayErr == nil && elements != nil {
		return elements, nil
	}

	var obj map[string]json.RawMessage
	objectErr := json.Unmarshal(data, &obj)
	if objectErr == nil && obj != nil {
		return []json.RawMessage{json.RawMessage(bytes.TrimSpace(data))}, nil
	}

	if arrayErr != nil {
		return nil, arrayErr
	}
	// "null" decodes into both targets without error.
	return nil, fmt.Errorf("unexpected JSON value %.20q", data)
}

func isNull(value json.RawMessage) bool {
	return len(value) == 0 || string(bytes.TrimSpace(value)) == "null"
}

// unwrapSchemaValue unwraps values that a model emitted in schema form,
// {"type": "string", "value": "x"}, instead of the value itself. Anything
// else is returned unchanged.
func unwrapSchemaValue(value json.RawMessage) json.RawMessage {
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(value, &wrapper); err != nil || len(wrapper) != 2 {
		return value
	}
	if _, hasType := wrapper["type"]; !hasType {
		return value
	}
	inner, hasValue := wrapper["value"]
	if !hasValue {
		return value
	}
	return unwrapSchemaValue(inner)
}
