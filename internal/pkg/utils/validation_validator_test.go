package utils

import (
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	t.Run("Valid Login", func(t *testing.T) {
		err := ValidateStruct(requests.Login{Email: "ana@example.com", Password: "x"})
		assert.NoError(t, err)
	})

	t.Run("Field Names Follow JSON Tags", func(t *testing.T) {
		err := ValidateStruct(requests.Login{Email: "not-an-email", Password: "x"})
		require.Error(t, err)
		assert.Equal(t, "email deve ser um e-mail válido", exceptions.FormatFirstValidationError(err))
	})

	t.Run("Payment Method", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(requests.ProcessPayment{PaymentMethod: "pix"}))

		err := ValidateStruct(requests.ProcessPayment{PaymentMethod: "cash"})
		require.Error(t, err)
		assert.Contains(t, exceptions.FormatFirstValidationError(err), "payment_method")
	})

	t.Run("Rating Bounds", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(requests.CreateReview{Rating: 5}))
		assert.Error(t, ValidateStruct(requests.CreateReview{Rating: 6}))
		assert.Error(t, ValidateStruct(requests.CreateReview{Rating: 0}))
	})

	t.Run("Booking Status", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(requests.UpdateBookingStatus{Status: "completed"}))
		assert.Error(t, ValidateStruct(requests.UpdateBookingStatus{Status: "done"}))
	})
}
