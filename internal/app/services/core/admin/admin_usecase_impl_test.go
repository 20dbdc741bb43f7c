package admin_test

import (
	"context"
	"errors"
	"net/http"
	"saude-connect/internal/app/services/core/admin"
	"saude-connect/internal/app/services/shared/apiclient/apiclienttest"
	"saude-connect/internal/app/services/shared/storage"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/dto/requests"
	"saude-connect/internal/pkg/dto/responses"
	"saude-connect/internal/pkg/exceptions"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockDiplomaArchive struct {
	mock.Mock
}

func (m *mockDiplomaArchive) Store(ctx context.Context, diploma *responses.Diploma) (*responses.ArchivedDiploma, error) {
	args := m.Called(diploma)
	archived, _ := args.Get(0).(*responses.ArchivedDiploma)
	return archived, args.Error(1)
}

func newAdmin(t *testing.T) *apiclienttest.Harness {
	h := apiclienttest.New(t)
	h.LoginAs(t, apiclienttest.AdminUser)
	return h
}

func TestGetPendingProfessionals(t *testing.T) {
	ctx := context.Background()

	t.Run("List", func(t *testing.T) {
		h := newAdmin(t)
		h.Router.Get("/api/admin/professionals/pending", func(w http.ResponseWriter, r *http.Request) {
			apiclienttest.WriteRaw(w, http.StatusOK, `[{"id":5,"user_id":9,"name":"Bia","email":"bia@example.com","document_number":"P1","diploma_file":"dp.pdf","approval_status":"pending"}]`)
		})
		uc := admin.NewAdminUsecase(h.Client, storage.NewDisabledDiplomaArchive(), h.Log)

		pending, err := uc.GetPendingProfessionals(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)
		assert.Equal(t, "dp.pdf", pending[0].DiplomaFile)
	})

	t.Run("Not Found Is Empty", func(t *testing.T) {
		h := newAdmin(t)
		h.Router.Get("/api/admin/professionals/pending", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		uc := admin.NewAdminUsecase(h.Client, storage.NewDisabledDiplomaArchive(), h.Log)

		pending, err := uc.GetPendingProfessionals(ctx)
		require.NoError(t, err)
		assert.NotNil(t, pending)
		assert.Empty(t, pending)
	})

	t.Run("Requires Session", func(t *testing.T) {
		h := apiclienttest.New(t)
		uc := admin.NewAdminUsecase(h.Client, storage.NewDisabledDiplomaArchive(), h.Log)

		_, err := uc.GetPendingProfessionals(ctx)

		assert.True(t, exceptions.IsKind(err, exceptions.KindAuthRequired))
		assert.Equal(t, 0, h.Requests())
	})
}

func TestApproveAndReject(t *testing.T) {
	ctx := context.Background()
	h := newAdmin(t)
	h.Router.Post("/api/admin/professionals/{id}/approve", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "id") != "5" {
			apiclienttest.WriteJSON(w, http.StatusNotFound, map[string]string{})
			return
		}
		apiclienttest.WriteJSON(w, http.StatusOK, map[string]string{"message": "Profissional aprovado"})
	})
	h.Router.Post("/api/admin/professionals/{id}/reject", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{}
		apiclienttest.DecodeJSON(t, r, &body)
		assert.Equal(t, "Diploma ilegível", body["reason"])
		apiclienttest.WriteJSON(w, http.StatusOK, map[string]string{"message": "Profissional rejeitado"})
	})
	uc := admin.NewAdminUsecase(h.Client, storage.NewDisabledDiplomaArchive(), h.Log)

	response, err := uc.ApproveProfessional(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Profissional aprovado", response.Message)

	_, err = uc.ApproveProfessional(ctx, 6)
	assert.True(t, exceptions.IsKind(err, exceptions.KindNotFound))
	assert.Equal(t, constvars.ErrClientProfessionalNotFound, exceptions.ClientMessage(err))

	response, err = uc.RejectProfessional(ctx, 5, " Diploma ilegível ")
	require.NoError(t, err)
	assert.Equal(t, "Profissional rejeitado", response.Message)
}

func TestCategoryCRUD(t *testing.T) {
	ctx := context.Background()
	h := newAdmin(t)
	h.Router.Post("/api/admin/categories", func(w http.ResponseWriter, r *http.Request) {
		var body requests.Category
		apiclienttest.DecodeJSON(t, r, &body)
		assert.Equal(t, "Yoga", body.Name)
		apiclienttest.WriteJSON(w, http.StatusCreated, map[string]interface{}{"message": "Categoria criada", "id": 4})
	})
	h.Router.Put("/api/admin/categories/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "4", chi.URLParam(r, "id"))
		apiclienttest.WriteJSON(w, http.StatusOK, map[string]string{"message": "Categoria atualizada"})
	})
	h.Router.Delete("/api/admin/categories/{id}", func(w http.ResponseWriter, r *http.Request) {
		apiclienttest.WriteJSON(w, http.StatusConflict, map[string]string{"error": "Categoria em uso"})
	})
	uc := admin.NewAdminUsecase(h.Client, storage.NewDisabledDiplomaArchive(), h.Log)

	created, err := uc.CreateCategory(ctx, &requests.Category{Name: " Yoga "})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)

	_, err = uc.UpdateCategory(ctx, 4, &requests.Category{Name: "Yoga e Meditação"})
	assert.NoError(t, err)

	_, err = uc.DeleteCategory(ctx, 4)
	assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	assert.Equal(t, "Categoria em uso", exceptions.ClientMessage(err))

	requestsBefore := h.Requests()
	_, err = uc.CreateCategory(ctx, &requests.Category{Name: "  "})
	assert.True(t, exceptions.IsKind(err, exceptions.KindValidation))
	assert.Equal(t, requestsBefore, h.Requests())
}

func TestActivityCRUD(t *testing.T) {
	ctx := context.Background()
	categoryID := int64(2)
	h := newAdmin(t)
	h.Router.Get("/api/admin/activities", func(w http.ResponseWriter, r *http.Request) {
		apiclienttest.WriteRaw(w, http.StatusOK, `[{"id":1,"name":"Hatha","category_id":2,"category":{"id":2,"name":"Yoga"}}]`)
	})
	h.Router.Post("/api/admin/activities", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{}
		apiclienttest.DecodeJSON(t, r, &body)
		assert.Equal(t, float64(2), body["category_id"])
		apiclienttest.WriteJSON(w, http.StatusCreated, map[string]interface{}{"message": "ok", "id": 8})
	})
	h.Router.Put("/api/admin/activities/{id}", func(w http.ResponseWriter, r *http.Request) {
		apiclienttest.WriteJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	h.Router.Delete("/api/admin/activities/{id}", func(w http.ResponseWriter, r *http.Request) {
		apiclienttest.WriteJSON(w, http.StatusForbidden, map[string]string{})
	})
	uc := admin.NewAdminUsecase(h.Client, storage.NewDisabledDiplomaArchive(), h.Log)

	activities, err := uc.ListActivities(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Yoga", activities[0].Category.Name)

	created, err := uc.CreateActivity(ctx, &requests.Activity{Name: "Vinyasa", CategoryID: &categoryID})
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)

	_, err = uc.UpdateActivity(ctx, 8, &requests.Activity{Name: "Vinyasa Flow"})
	assert.NoError(t, err)

	_, err = uc.DeleteActivity(ctx, 8)
	assert.Equal(t, exceptions.ReasonForbidden, exceptions.ReasonOf(err))
}

func TestDiploma(t *testing.T) {
	ctx := context.Background()
	serveDiploma := func(h *apiclienttest.Harness) {
		h.Router.Get("/api/admin/diploma/{id}", func(w http.ResponseWriter, r *http.Request) {
			if chi.URLParam(r, "id") != "5" {
				apiclienttest.WriteJSON(w, http.StatusNotFound, map[string]string{})
				return
			}
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationPDF)
			w.Header().Set(constvars.HeaderContentDisposition, `attachment; filename="dp_5.pdf"`)
			w.Write([]byte("%PDF-1.7"))
		})
	}

	t.Run("Download", func(t *testing.T) {
		h := newAdmin(t)
		serveDiploma(h)
		uc := admin.NewAdminUsecase(h.Client, storage.NewDisabledDiplomaArchive(), h.Log)

		diploma, err := uc.GetDiploma(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "dp_5.pdf", diploma.Filename)
		assert.Equal(t, constvars.MIMEApplicationPDF, diploma.ContentType)
		assert.Equal(t, []byte("%PDF-1.7"), diploma.Content)

		_, err = uc.GetDiploma(ctx, 6)
		assert.Equal(t, constvars.ErrClientDiplomaNotFound, exceptions.ClientMessage(err))
	})

	t.Run("Archive", func(t *testing.T) {
		h := newAdmin(t)
		serveDiploma(h)
		archive := new(mockDiplomaArchive)
		archive.On("Store", mock.MatchedBy(func(d *responses.Diploma) bool {
			return d.ProfessionalID == 5 && d.Filename == "dp_5.pdf"
		})).Return(&responses.ArchivedDiploma{ProfessionalID: 5, Bucket: "diplomas", ObjectName: "professional-5/dp_5.pdf", Size: 8}, nil)
		uc := admin.NewAdminUsecase(h.Client, archive, h.Log)

		archived, err := uc.ArchiveDiploma(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "professional-5/dp_5.pdf", archived.ObjectName)
		archive.AssertExpectations(t)
	})

	t.Run("Archive Failure", func(t *testing.T) {
		h := newAdmin(t)
		serveDiploma(h)
		archive := new(mockDiplomaArchive)
		archive.On("Store", mock.Anything).Return(nil, errors.New("bucket gone"))
		uc := admin.NewAdminUsecase(h.Client, archive, h.Log)

		_, err := uc.ArchiveDiploma(ctx, 5)
		assert.Error(t, err)
	})

	t.Run("Archive Disabled", func(t *testing.T) {
		h := newAdmin(t)
		serveDiploma(h)
		uc := admin.NewAdminUsecase(h.Client, storage.NewDisabledDiplomaArchive(), h.Log)

		_, err := uc.ArchiveDiploma(ctx, 5)
		assert.Equal(t, constvars.ErrClientDiplomaArchiveMissing, exceptions.ClientMessage(err))
	})
}
