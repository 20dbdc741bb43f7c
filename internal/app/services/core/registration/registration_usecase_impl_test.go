package registration_test

import (
	"context"
	"io"
	"net/http"
	"saude-connect/internal/app/services/core/auth"
	"saude-connect/internal/app/services/core/registration"
	"saude-connect/internal/app/services/shared/apiclient/apiclienttest"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patientRequest() *requests.RegisterPatient {
	return &requests.RegisterPatient{
		Name:            " Ana Souza ",
		Email:           "Ana@Example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		Phone:           "11999990000",
		State:           "sp",
	}
}

func TestRegisterPatient(t *testing.T) {
	ctx := context.Background()

	t.Run("Sends Sanitized JSON", func(t *testing.T) {
		h := apiclienttest.New(t)
		h.Router.Post("/api/auth/register/patient", func(w http.ResponseWriter, r *http.Request) {
			body := map[string]interface{}{}
			apiclienttest.DecodeJSON(t, r, &body)
			assert.Equal(t, "Ana Souza", body["name"])
			assert.Equal(t, "ana@example.com", body["email"])
			assert.Equal(t, "SP", body["state"])
			assert.NotContains(t, body, "confirm_password")
			apiclienttest.WriteJSON(w, http.StatusCreated, map[string]interface{}{"message": "Paciente cadastrado", "user_id": 5})
		})
		uc := registration.NewRegistrationUsecase(h.Client, auth.NewAuthUsecase(h.Client, h.Session, h.Log), h.Log)

		response, err := uc.RegisterPatient(ctx, patientRequest())
		require.NoError(t, err)
		assert.Equal(t, int64(5), response.UserID)
		assert.Equal(t, "Paciente cadastrado", response.Message)
	})

	t.Run("Passwords Must Match", func(t *testing.T) {
		h := apiclienttest.New(t)
		uc := registration.NewRegistrationUsecase(h.Client, auth.NewAuthUsecase(h.Client, h.Session, h.Log), h.Log)
		request := patientRequest()
		request.ConfirmPassword = "other"

		_, err := uc.RegisterPatient(ctx, request)

		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		assert.Equal(t, constvars.ErrClientPasswordsDoNotMatch, exceptions.ClientMessage(err))
		assert.Equal(t, 0, h.Requests())
	})

	t.Run("Invalid Email", func(t *testing.T) {
		h := apiclienttest.New(t)
		uc := registration.NewRegistrationUsecase(h.Client, auth.NewAuthUsecase(h.Client, h.Session, h.Log), h.Log)
		request := patientRequest()
		request.Email = "ana"

		_, err := uc.RegisterPatient(ctx, request)

		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		assert.Equal(t, "email deve ser um e-mail válido", exceptions.ClientMessage(err))
		assert.Equal(t, 0, h.Requests())
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		h := apiclienttest.New(t)
		h.Router.Post("/api/auth/register/patient", func(w http.ResponseWriter, r *http.Request) {
			apiclienttest.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "Email já cadastrado"})
		})
		uc := registration.NewRegistrationUsecase(h.Client, auth.NewAuthUsecase(h.Client, h.Session, h.Log), h.Log)

		_, err := uc.RegisterPatient(ctx, patientRequest())

		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		assert.Equal(t, constvars.ErrClientEmailAlreadyInUse, exceptions.ClientMessage(err))
	})

	t.Run("Document Conflict Keeps Server Message", func(t *testing.T) {
		h := apiclienttest.New(t)
		h.Router.Post("/api/auth/register/patient", func(w http.ResponseWriter, r *http.Request) {
			apiclienttest.WriteJSON(w, http.StatusConflict, map[string]string{"error": "CPF já cadastrado"})
		})
		uc := registration.NewRegistrationUsecase(h.Client, auth.NewAuthUsecase(h.Client, h.Session, h.Log), h.Log)

		_, err := uc.RegisterPatient(ctx, patientRequest())

		assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
		assert.Equal(t, "CPF já cadastrado", exceptions.ClientMessage(err))
	})
}

func TestRegisterProfessional(t *testing.T) {
	ctx := context.Background()
	request := func() *requests.RegisterProfessional {
		return &requests.RegisterProfessional{
			Name:           "Bia",
			Email:          "bia@example.com",
			Password:       "secret1",
			DocumentNumber: "PROF1",
			Bio:            "Personal trainer",
			Activities: []requests.ProfessionalActivityOffer{
				{ActivityID: 3, Description: "Funcional", ExperienceYears: 4, Price: 120.5},
				{ActivityID: 7, ExperienceYears: 1, Price: 80},
			},
			Diploma: &requests.FileUpload{Filename: "diploma.PDF", Content: []byte("%PDF-1.4")},
		}
	}

	t.Run("Sends Multipart Form", func(t *testing.T) {
		h := apiclienttest.New(t)
		h.Router.Post("/api/auth/register/professional", func(w http.ResponseWriter, r *http.Request) {
			if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
				return
			}
			assert.Equal(t, "Bia", r.FormValue("name"))
			assert.Equal(t, "PROF1", r.FormValue("document_number"))
			assert.Equal(t, []string{"3", "7"}, r.MultipartForm.Value["activities[]"])
			assert.Equal(t, []string{"Funcional", ""}, r.MultipartForm.Value["descriptions[]"])
			assert.Equal(t, []string{"4", "1"}, r.MultipartForm.Value["experience_years[]"])
			assert.Equal(t, []string{"120.5", "80"}, r.MultipartForm.Value["prices[]"])

			file, header, err := r.FormFile("diploma")
			if !assert.NoError(t, err) {
				return
			}
			defer file.Close()
			content, _ := io.ReadAll(file)
			assert.Equal(t, "diploma.PDF", header.Filename)
			assert.Equal(t, constvars.MIMEApplicationPDF, header.Header.Get("Content-Type"))
			assert.Equal(t, "%PDF-1.4", string(content))

			apiclienttest.WriteJSON(w, http.StatusCreated, map[string]interface{}{"message": "Aguarde a aprovação", "user_id": 9})
		})
		uc := registration.NewRegistrationUsecase(h.Client, auth.NewAuthUsecase(h.Client, h.Session, h.Log), h.Log)

		response, err := uc.RegisterProfessional(ctx, request())
		require.NoError(t, err)
		assert.Equal(t, int64(9), response.UserID)
	})

	t.Run("Diploma Required", func(t *testing.T) {
		h := apiclienttest.New(t)
		uc := registration.NewRegistrationUsecase(h.Client, auth.NewAuthUsecase(h.Client, h.Session, h.Log), h.Log)
		req := request()
		req.Diploma = nil

		_, err := uc.RegisterProfessional(ctx, req)

		assert.Equal(t, constvars.ErrClientDiplomaRequired, exceptions.ClientMessage(err))
		assert.Equal(t, 0, h.Requests())
	})

	t.Run("Diploma Format", func(t *testing.T) {
		h := apiclienttest.New(t)
		uc := registration.NewRegistrationUsecase(h.Client, auth.NewAuthUsecase(h.Client, h.Session, h.Log), h.Log)
		req := request()
		req.Diploma.Filename = "diploma.docx"

		_, err := uc.RegisterProfessional(ctx, req)

		assert.Equal(t, constvars.ErrClientDiplomaInvalidFormat, exceptions.ClientMessage(err))
		assert.Equal(t, 0, h.Requests())
	})

	t.Run("Server Failure", func(t *testing.T) {
		h := apiclienttest.New(t)
		h.Router.Post("/api/auth/register/professional", func(w http.ResponseWriter, r *http.Request) {
			apiclienttest.WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "disk full"})
		})
		uc := registration.NewRegistrationUsecase(h.Client, auth.NewAuthUsecase(h.Client, h.Session, h.Log), h.Log)

		_, err := uc.RegisterProfessional(ctx, request())

		assert.True(t, exceptions.IsKind(err, exceptions.KindServer))
		assert.Equal(t, "disk full", exceptions.ClientMessage(err))
	})
}

func TestSignUpPatient(t *testing.T) {
	ctx := context.Background()
	h := apiclienttest.New(t)
	h.Router.Post("/api/auth/register/patient", func(w http.ResponseWriter, r *http.Request) {
		apiclienttest.WriteJSON(w, http.StatusCreated, map[string]interface{}{"message": "ok", "user_id": 1})
	})
	h.Router.Post("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body requests.Login
		apiclienttest.DecodeJSON(t, r, &body)
		assert.Equal(t, "ana@example.com", body.Email)
		apiclienttest.WriteRaw(w, http.StatusOK, `{"token":"tok-9","user":`+apiclienttest.PatientUser+`}`)
	})
	authUsecase := auth.NewAuthUsecase(h.Client, h.Session, h.Log)
	uc := registration.NewRegistrationUsecase(h.Client, authUsecase, h.Log)

	session, err := uc.SignUpPatient(ctx, patientRequest())
	require.NoError(t, err)

	assert.Equal(t, "tok-9", session.Token)
	assert.True(t, authUsecase.IsAuthenticated(ctx))
	assert.Equal(t, 2, h.Requests())
}
