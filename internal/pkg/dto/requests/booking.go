package requests

type CreateBooking struct {
	ProfessionalID int64  `json:"professional_id" validate:"required,gt=0"`
	ActivityID     int64  `json:"activity_id" validate:"required,gt=0"`
	BookingDate    string `json:"booking_date" validate:"required"`
	Address        string `json:"address,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

type ProcessPayment struct {
	PaymentMethod string `json:"payment_method" validate:"required,payment_method"`
}

type UpdateBookingStatus struct {
	Status string `json:"status" validate:"required,booking_status"`
}

type CreateReview struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment,omitempty"`
}
