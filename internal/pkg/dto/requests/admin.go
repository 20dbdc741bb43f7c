package requests

type RejectProfessional struct {
	Reason string `json:"reason,omitempty"`
}

type Category struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type Activity struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	CategoryID  *int64 `json:"category_id,omitempty"`
}
