package syncer

import "encoding/json"

// envelopeKeys are persistence-level fields that may appear inside a remote
// payload (rows written by earlier backends flattened them into the record).
// They are stripped before merging so they never leak into domain state.
var envelopeKeys = map[string]bool{
	"id":         true,
	"owner_id":   true,
	"user_id":    true,
	"updated_at": true,
}

// hydrate merges a raw remote payload over the domain's default value at the
// key level: known fields present in the payload replace the default, known
// fields absent from the payload keep the default, and unknown fields are
// returned separately so they can be retained and written back verbatim.
// Returns an error when the payload is malformed or a known field has an
// incompatible shape; callers fall back to the default in that case.
func hydrate[T any](defaults T, raw json.RawMessage) (T, map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return defaults, nil, err
	}

	base, err := json.Marshal(defaults)
	if err != nil {
		return defaults, nil, err
	}
	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &merged); err != nil {
		return defaults, nil, err
	}

	extra := make(map[string]json.RawMessage)
	for key, value := range fields {
		if envelopeKeys[key] {
			continue
		}
		if _, known := merged[key]; known {
			merged[key] = value
		} else {
			extra[key] = value
		}
	}

	buf, err := json.Marshal(merged)
	if err != nil {
		return defaults, nil, err
	}
	var out T
	if err := json.Unmarshal(buf, &out); err != nil {
		return defaults, nil, err
	}
	return out, extra, nil
}

// flatten serializes a domain value together with retained unknown fields
// into the payload persisted to the remote store. Known fields always win
// over retained ones.
func flatten(value any, extra map[string]json.RawMessage) (json.RawMessage, error) {
	base, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}

	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, val := range extra {
		if _, known := merged[key]; !known {
			merged[key] = val
		}
	}
	return json.Marshal(merged)
}
