package contracts

import (
	"context"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingCreated, error)
	GetUserBookings(ctx context.Context, status string) ([]responses.Booking, error)
	ProcessPayment(ctx context.Context, bookingID int64, paymentMethod string) (*responses.Message, error)
	UpdateBookingStatus(ctx context.Context, bookingID int64, status string) (*responses.Message, error)
	CreateReview(ctx context.Context, bookingID int64, request *requests.CreateReview) (*responses.Message, error)
	GetProfessionalReviews(ctx context.Context, professionalID int64) (*responses.ReviewSummary, error)
	ReviewableBookings(ctx context.Context, professionalID int64) ([]responses.Booking, error)
}
