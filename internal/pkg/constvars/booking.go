package constvars

const (
	BookingStatusPending   = "pending"
	BookingStatusPaid      = "paid"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodDebitCard    = "debit_card"
	PaymentMethodPix          = "pix"
	PaymentMethodBankTransfer = "bank_transfer"
)

const (
	ReviewMinRating = 1
	ReviewMaxRating = 5
)

// Event types published after booking operations succeed.
const (
	EventBookingCreated          = "booking.created"
	EventBookingPaymentRequested = "booking.payment_requested"
	EventBookingStatusRequested  = "booking.status_requested"
	EventReviewCreated           = "review.created"
)

var AllowedDiplomaExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

var ValidPaymentMethods = map[string]bool{
	PaymentMethodCreditCard:   true,
	PaymentMethodDebitCard:    true,
	PaymentMethodPix:          true,
	PaymentMethodBankTransfer: true,
}

var ValidBookingStatuses = map[string]bool{
	BookingStatusPending:   true,
	BookingStatusPaid:      true,
	BookingStatusConfirmed: true,
	BookingStatusCompleted: true,
	BookingStatusCancelled: true,
}
