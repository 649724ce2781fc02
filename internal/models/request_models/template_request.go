package request_models

import "encoding/json"

type CreateTemplateRequest struct {
	Name          string          `json:"name" binding:"required"`
	UniqueName    string          `json:"unique_name" binding:"required"`
	Thumbnail     string          `json:"thumbnail"`
	DefaultConfig json.RawMessage `json:"default_config"`
}

type AttachTemplateRequest struct {
	TemplateID string          `json:"template_id" binding:"required"`
	IsDefault  bool            `json:"is_default"`
	Config     json.RawMessage `json:"config"`
}
