package utils

import (
	"saude-connect/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizeLoginRequest only trims the email. The backend matches it as
// typed, so its case is kept.
func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.TrimSpace(input.Email)
}

func SanitizeRegisterPatientRequest(input *requests.RegisterPatient) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.DocumentNumber = strings.TrimSpace(input.DocumentNumber)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.State = strings.ToUpper(strings.TrimSpace(input.State))
}

func SanitizeRegisterProfessionalRequest(input *requests.RegisterProfessional) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.DocumentNumber = strings.TrimSpace(input.DocumentNumber)
	input.Bio = strings.TrimSpace(input.Bio)
	for i := range input.Activities {
		input.Activities[i].Description = strings.TrimSpace(input.Activities[i].Description)
	}
	if input.Diploma != nil {
		input.Diploma.Filename = strings.TrimSpace(input.Diploma.Filename)
	}
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.DocumentNumber = strings.TrimSpace(input.DocumentNumber)
	input.BirthDate = strings.TrimSpace(input.BirthDate)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.State = strings.ToUpper(strings.TrimSpace(input.State))
	input.Bio = strings.TrimSpace(input.Bio)
}

func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	input.BookingDate = strings.TrimSpace(input.BookingDate)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.State = strings.ToUpper(strings.TrimSpace(input.State))
	input.Notes = strings.TrimSpace(input.Notes)
}

func SanitizeProfessionalSearch(input *requests.ProfessionalSearch) {
	fields := cleanWhiteSpaceFromEachStringOfAnArray([]string{input.Activity, input.Category, input.Name})
	input.Activity, input.Category, input.Name = fields[0], fields[1], fields[2]
}
