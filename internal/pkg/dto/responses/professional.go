package responses

import "github.com/goccy/go-json"

type Professional struct {
	ID             int64        `json:"id"`
	UserID         int64        `json:"user_id,omitempty"`
	Name           string       `json:"name"`
	Email          string       `json:"email,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	DocumentNumber string       `json:"document_number,omitempty"`
	ApprovalStatus string       `json:"approval_status,omitempty"`
	Category       *CategoryRef `json:"category,omitempty"`
	Activities     []Activity   `json:"activities,omitempty"`
	AverageRating  float64      `json:"average_rating"`
	ReviewCount    int          `json:"review_count"`
}

// UnmarshalJSON also reads the rating, reviews_count and category_name
// spellings the search pages use. The canonical keys win when both are sent.
func (p *Professional) UnmarshalJSON(data []byte) error {
	type plain Professional
	var out plain
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}

	var spellings struct {
		AverageRating *float64 `json:"average_rating"`
		ReviewCount   *int     `json:"review_count"`
		Rating        *float64 `json:"rating"`
		ReviewsCount  *int     `json:"reviews_count"`
		CategoryName  string   `json:"category_name"`
	}
	if err := json.Unmarshal(data, &spellings); err != nil {
		return err
	}

	*p = Professional(out)
	if spellings.AverageRating == nil && spellings.Rating != nil {
		p.AverageRating = *spellings.Rating
	}
	if spellings.ReviewCount == nil && spellings.ReviewsCount != nil {
		p.ReviewCount = *spellings.ReviewsCount
	}
	if p.Category == nil && spellings.CategoryName != "" {
		p.Category = &CategoryRef{Name: spellings.CategoryName}
	}
	return nil
}
