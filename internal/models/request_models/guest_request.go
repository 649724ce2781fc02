package request_models

type CreateGuestRequest struct {
	Name      string   `json:"name" binding:"required"`
	Phone     string   `json:"phone"`
	Status    string   `json:"status" binding:"omitempty,oneof=confirmed pending rejected"`
	HeadCount int      `json:"head_count"`
	Wishing   string   `json:"wishing"`
	TagIDs    []string `json:"tag_ids"`
	GroupIDs  []string `json:"group_ids"`
}

type UpdateGuestRequest struct {
	Name      *string  `json:"name"`
	Phone     *string  `json:"phone"`
	Status    *string  `json:"status" binding:"omitempty,oneof=confirmed pending rejected"`
	HeadCount *int     `json:"head_count"`
	Wishing   *string  `json:"wishing"`
	Invited   *bool    `json:"invited"`
	TagIDs    []string `json:"tag_ids"`
	GroupIDs  []string `json:"group_ids"`
}

type LabelRequest struct {
	NameEn string `json:"name_en" binding:"required"`
	NameKh string `json:"name_kh"`
}
