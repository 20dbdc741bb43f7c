package bookings

import (
	"context"
	"net/url"
	"saude-connect/internal/app/contracts"
	"saude-connect/internal/app/models"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
	"saude-connect/internal/pkg/exceptions"
	"saude-connect/internal/pkg/utils"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	APIClient      contracts.APIClient
	SessionService contracts.SessionService
	EventPublisher contracts.EventPublisher
	Log            *zap.Logger
}

func NewBookingUsecase(
	apiClient contracts.APIClient,
	sessionService contracts.SessionService,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		APIClient:      apiClient,
		SessionService: sessionService,
		EventPublisher: eventPublisher,
		Log:            logger,
	}
}

func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.BookingCreated, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeCreateBookingRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	response := &responses.BookingCreated{}
	if _, err := uc.APIClient.Do(ctx, models.APICall{
		Operation: constvars.OperationCreateBooking,
		JSON:      request,
	}, response); err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingProfessionalIDKey, request.ProfessionalID),
			zap.Error(err),
		)
		return nil, err
	}
	response.BookingID = response.Reference()

	uc.publish(ctx, constvars.EventBookingCreated, map[string]interface{}{
		"booking_id":      response.BookingID,
		"professional_id": request.ProfessionalID,
		"activity_id":     request.ActivityID,
		"booking_date":    request.BookingDate,
	})

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, response.BookingID),
	)
	return response, nil
}

// GetUserBookings lists the caller's bookings, optionally narrowed to one
// status. Having none is an empty slice.
func (uc *bookingUsecase) GetUserBookings(ctx context.Context, status string) ([]responses.Booking, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("bookingUsecase.GetUserBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("status", status),
	)

	call := models.APICall{Operation: constvars.OperationGetUserBookings}
	status = strings.TrimSpace(status)
	if status != "" {
		if err := utils.ValidateStruct(&requests.UpdateBookingStatus{Status: status}); err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		call.Query = url.Values{"status": []string{status}}
	}

	bookings := []responses.Booking{}
	ok, err := uc.APIClient.Do(ctx, call, &bookings)
	if err != nil {
		uc.Log.Error("bookingUsecase.GetUserBookings error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !ok || bookings == nil {
		bookings = []responses.Booking{}
	}

	uc.Log.Info("bookingUsecase.GetUserBookings succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(bookings)),
	)
	return bookings, nil
}

// ProcessPayment asks the backend to settle a booking. The status change
// itself is decided server side.
func (uc *bookingUsecase) ProcessPayment(ctx context.Context, bookingID int64, paymentMethod string) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("bookingUsecase.ProcessPayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	request := &requests.ProcessPayment{PaymentMethod: strings.TrimSpace(paymentMethod)}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	response, err := uc.mutate(ctx, models.APICall{
		Operation:  constvars.OperationProcessPayment,
		PathParams: []string{formatID(bookingID)},
		JSON:       request,
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventBookingPaymentRequested, map[string]interface{}{
		"booking_id":     bookingID,
		"payment_method": request.PaymentMethod,
	})
	return response, nil
}

func (uc *bookingUsecase) UpdateBookingStatus(ctx context.Context, bookingID int64, status string) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("bookingUsecase.UpdateBookingStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	request := &requests.UpdateBookingStatus{Status: strings.TrimSpace(status)}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	response, err := uc.mutate(ctx, models.APICall{
		Operation:  constvars.OperationUpdateBookingStatus,
		PathParams: []string{formatID(bookingID)},
		JSON:       request,
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventBookingStatusRequested, map[string]interface{}{
		"booking_id": bookingID,
		"status":     request.Status,
	})
	return response, nil
}

func (uc *bookingUsecase) CreateReview(ctx context.Context, bookingID int64, request *requests.CreateReview) (*responses.Message, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("bookingUsecase.CreateReview called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	request.Comment = strings.TrimSpace(request.Comment)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	response, err := uc.mutate(ctx, models.APICall{
		Operation:  constvars.OperationCreateReview,
		PathParams: []string{formatID(bookingID)},
		JSON:       request,
	})
	if err != nil {
		return nil, err
	}

	uc.publish(ctx, constvars.EventReviewCreated, map[string]interface{}{
		"booking_id": bookingID,
		"rating":     request.Rating,
	})
	return response, nil
}

// GetProfessionalReviews always yields a summary. Any failure is a summary
// with no reviews, so pages can render the rating block unconditionally.
func (uc *bookingUsecase) GetProfessionalReviews(ctx context.Context, professionalID int64) (*responses.ReviewSummary, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("bookingUsecase.GetProfessionalReviews called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
	)

	summary := responses.EmptyReviewSummary()
	ok, err := uc.APIClient.Do(ctx, models.APICall{
		Operation:  constvars.OperationGetProfessionalReviews,
		PathParams: []string{formatID(professionalID)},
	}, summary)
	if err != nil {
		return nil, err
	}
	if !ok {
		return responses.EmptyReviewSummary(), nil
	}
	return normalizeSummary(summary), nil
}

// ReviewableBookings are the caller's completed bookings with the given
// professional that have not been reviewed yet.
func (uc *bookingUsecase) ReviewableBookings(ctx context.Context, professionalID int64) ([]responses.Booking, error) {
	ctx, requestID := utils.WithRequestID(ctx)
	uc.Log.Info("bookingUsecase.ReviewableBookings called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingProfessionalIDKey, professionalID),
	)

	completed, err := uc.GetUserBookings(ctx, constvars.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}

	reviewable := []responses.Booking{}
	for _, booking := range completed {
		if booking.Status == constvars.BookingStatusCompleted && !booking.Reviewed && booking.ProfessionalRef() == professionalID {
			reviewable = append(reviewable, booking)
		}
	}
	return reviewable, nil
}

func (uc *bookingUsecase) mutate(ctx context.Context, call models.APICall) (*responses.Message, error) {
	requestID := utils.RequestIDFromContext(ctx)
	response := &responses.Message{}
	if _, err := uc.APIClient.Do(ctx, call, response); err != nil {
		uc.Log.Error("bookingUsecase.mutate error calling backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, call.Operation),
			zap.Error(err),
		)
		return nil, err
	}
	uc.Log.Info("bookingUsecase.mutate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, call.Operation),
	)
	return response, nil
}

// publish reports a finished operation. Events are best effort: a broker
// failure never fails the booking call that produced it.
func (uc *bookingUsecase) publish(ctx context.Context, eventType string, payload map[string]interface{}) {
	event := &models.ClientEvent{
		Type:       eventType,
		RequestID:  utils.RequestIDFromContext(ctx),
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	if user, ok := uc.SessionService.User(ctx); ok {
		event.UserID = user.ID
	}
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("bookingUsecase.publish error publishing event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.String(constvars.LoggingEventTypeKey, eventType),
			zap.Error(err),
		)
	}
}

func normalizeSummary(summary *responses.ReviewSummary) *responses.ReviewSummary {
	if summary.Reviews == nil {
		summary.Reviews = []responses.Review{}
	}
	if summary.Count == 0 {
		summary.Count = len(summary.Reviews)
	}
	if summary.AverageRating == 0 && len(summary.Reviews) > 0 {
		total := 0
		for _, review := range summary.Reviews {
			total += review.Rating
		}
		summary.AverageRating = float64(total) / float64(len(summary.Reviews))
	}
	return summary
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
