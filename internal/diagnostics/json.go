package diagnostics

import "encoding/json"

// Encoded is the wire shape for one diagnostic, grounded on the
// teacher's error-reporting envelope (schema tag, phase, code,
// message, plus a free-form context bag for whatever fields that
// particular diagnostic carries).
type Encoded struct {
	Schema  string         `json:"schema"`
	SID     string         `json:"sid,omitempty"`
	Phase   string         `json:"phase"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Pos     string         `json:"pos"`
	Context map[string]any `json:"context,omitempty"`
}

const schemaTag = "checklam.diagnostic/v1"

// Encode converts a single Diagnostic into its JSON envelope. sid
// identifies the checking session that produced it (see
// internal/scope's session tag); callers that don't track one may
// pass the empty string.
func Encode(d Diagnostic, sid string) Encoded {
	e := Encoded{
		Schema:  schemaTag,
		SID:     sid,
		Phase:   "check",
		Code:    d.Code(),
		Message: d.Message(),
		Pos:     d.Pos().String(),
	}

	switch v := d.(type) {
	case *BindingNotFound:
		e.Context = map[string]any{"name": v.Name}
	case *UnificationFailed:
		e.Context = map[string]any{"left": v.Left.String(), "right": v.Right.String()}
	case *ArityMismatch:
		e.Context = map[string]any{"left": v.Left.String(), "right": v.Right.String()}
	case *InfiniteType:
		e.Context = map[string]any{"var": v.Var.String(), "type": v.Type.String()}
	}
	return e
}

// EncodeAll converts every diagnostic to its JSON envelope, preserving
// emission order.
func EncodeAll(diags []Diagnostic, sid string) []Encoded {
	out := make([]Encoded, len(diags))
	for i, d := range diags {
		out[i] = Encode(d, sid)
	}
	return out
}

// MarshalJSON renders the full diagnostic list as a deterministic,
// indented JSON array, supporting a compact mode for log shipping.
func MarshalJSON(diags []Diagnostic, sid string, compact bool) ([]byte, error) {
	encoded := EncodeAll(diags, sid)
	if compact {
		return json.Marshal(encoded)
	}
	return json.MarshalIndent(encoded, "", "  ")
}
