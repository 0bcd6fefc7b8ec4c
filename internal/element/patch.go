package element

import (
	"encoding/json"
	"fmt"
)

// ApplyPatch merges a partial JSON patch onto a copy of el and returns the
// result. Known fields overwrite the copy field-wise; unknown patch keys
// are routed into Extra. Identity is stable: id and type from the patch
// are ignored.
func ApplyPatch(el Element, patch []byte) (Element, error) {
	a := elementAlias(el.Clone())
	if err := json.Unmarshal(patch, &a); err != nil {
		return el, fmt.Errorf("invalid element patch: %w", err)
	}

	out := Element(a)
	out.ID = el.ID
	out.Type = el.Type

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(patch, &raw); err != nil {
		return el, fmt.Errorf("invalid element patch: %w", err)
	}
	for k, v := range raw {
		if knownKeys[k] {
			continue
		}
		if out.Extra == nil {
			out.Extra = make(map[string]json.RawMessage)
		}
		out.Extra[k] = v
	}

	return out, nil
}
