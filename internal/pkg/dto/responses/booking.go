package responses

// BookingCreated accepts the new booking's id under either key the backend
// has used for it.
type BookingCreated struct {
	Message   string `json:"message,omitempty"`
	BookingID int64  `json:"booking_id"`
	ID        int64  `json:"id,omitempty"`
}

func (b *BookingCreated) Reference() int64 {
	if b.BookingID != 0 {
		return b.BookingID
	}
	return b.ID
}

type BookingParty struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type Booking struct {
	ID             int64         `json:"id"`
	ProfessionalID int64         `json:"professional_id,omitempty"`
	ActivityID     int64         `json:"activity_id,omitempty"`
	BookingDate    string        `json:"booking_date"`
	Address        string        `json:"address,omitempty"`
	City           string        `json:"city,omitempty"`
	State          string        `json:"state,omitempty"`
	Notes          string        `json:"notes,omitempty"`
	Status         string        `json:"status"`
	Reviewed       bool          `json:"reviewed"`
	Professional   *BookingParty `json:"professional,omitempty"`
	Patient        *BookingParty `json:"patient,omitempty"`
	Activity       *Activity     `json:"activity,omitempty"`
}

// ProfessionalRef resolves the professional either from the flat id or the
// nested object, whichever the listing carried.
func (b Booking) ProfessionalRef() int64 {
	if b.ProfessionalID != 0 {
		return b.ProfessionalID
	}
	if b.Professional != nil {
		return b.Professional.ID
	}
	return 0
}

type Review struct {
	ID        int64         `json:"id,omitempty"`
	BookingID int64         `json:"booking_id,omitempty"`
	Rating    int           `json:"rating"`
	Comment   string        `json:"comment,omitempty"`
	CreatedAt string        `json:"created_at,omitempty"`
	Patient   *BookingParty `json:"patient,omitempty"`
}

type ReviewSummary struct {
	Reviews       []Review `json:"reviews"`
	Count         int      `json:"count"`
	AverageRating float64  `json:"average_rating"`
}

func EmptyReviewSummary() *ReviewSummary {
	return &ReviewSummary{Reviews: []Review{}}
}
