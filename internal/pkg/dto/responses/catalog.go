package responses

import (
	"bytes"

	"github.com/goccy/go-json"
)

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryRef is what a professional or activity carries for its category.
// Search endpoints send the bare category name, admin endpoints the object.
type CategoryRef struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &c.Name)
	}

	type plain CategoryRef
	var out plain
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return err
	}
	*c = CategoryRef(out)
	return nil
}

type Activity struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name,omitempty"`
	ActivityName    string       `json:"activity_name,omitempty"`
	Description     string       `json:"description,omitempty"`
	Price           float64      `json:"price,omitempty"`
	ExperienceYears int          `json:"experience_years,omitempty"`
	CategoryID      *int64       `json:"category_id,omitempty"`
	Category        *CategoryRef `json:"category,omitempty"`
}

// DisplayName prefers the offer name a professional gave over the catalog name.
func (a Activity) DisplayName() string {
	if a.ActivityName != "" {
		return a.ActivityName
	}
	return a.Name
}
