package response_models

import "encoding/json"

// TemplatePreview is the resolved rendering state for an invitation.
// Found=false means the unknown-variant fallback, not an error.
type TemplatePreview struct {
	Found      bool            `json:"found"`
	UniqueName string          `json:"unique_name,omitempty"`
	EventID    string          `json:"event_id,omitempty"`
	TemplateID string          `json:"template_id,omitempty"`
	Config     json.RawMessage `json:"config,omitempty"`
}
