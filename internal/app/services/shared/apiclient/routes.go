package apiclient

import (
	"net/url"
	"saude-connect/internal/pkg/constvars"
	"saude-connect/internal/pkg/exceptions"
	"strings"
)

type BodyEncoding int

const (
	BodyNone BodyEncoding = iota
	BodyJSON
	BodyMultipart
	// BodyJSONOrMultipart sends multipart when the call carries a form.
	BodyJSONOrMultipart
)

// ErrorPolicy selects how a non-2xx answer is classified.
type ErrorPolicy int

const (
	PolicyDefault ErrorPolicy = iota
	PolicyLogin
	PolicyRegistration
	PolicySearch
)

type Route struct {
	Operation       string
	Method          string
	Path            string
	RequiresAuth    bool
	Body            BodyEncoding
	Policy          ErrorPolicy
	EmptyOnNotFound bool
	EmptyOnFailure  bool
	Fallback        string
	NotFoundMessage string
}

var routes = []Route{
	{Operation: constvars.OperationLogin, Method: constvars.MethodPost, Path: "/api/auth/login", Body: BodyJSON, Policy: PolicyLogin, Fallback: constvars.FallbackLogin},
	{Operation: constvars.OperationRegisterPatient, Method: constvars.MethodPost, Path: "/api/auth/register/patient", Body: BodyJSON, Policy: PolicyRegistration, Fallback: constvars.FallbackRegisterPatient},
	{Operation: constvars.OperationRegisterProfessional, Method: constvars.MethodPost, Path: "/api/auth/register/professional", Body: BodyMultipart, Policy: PolicyRegistration, Fallback: constvars.FallbackRegisterProfessional},

	{Operation: constvars.OperationGetActivities, Method: constvars.MethodGet, Path: "/api/search/activities", Policy: PolicySearch, EmptyOnFailure: true, Fallback: constvars.FallbackGetActivities},
	{Operation: constvars.OperationGetCategories, Method: constvars.MethodGet, Path: "/api/search/categories", Policy: PolicySearch, EmptyOnFailure: true, Fallback: constvars.FallbackGetCategories},
	{Operation: constvars.OperationSearchProfessionals, Method: constvars.MethodGet, Path: "/api/search/professionals", Policy: PolicySearch, EmptyOnNotFound: true, Fallback: constvars.FallbackSearchProfessionals},
	{Operation: constvars.OperationGetProfessionalDetails, Method: constvars.MethodGet, Path: "/api/search/professional/{id}", Policy: PolicySearch, Fallback: constvars.FallbackGetProfessionalDetails, NotFoundMessage: constvars.ErrClientProfessionalNotFound},
	{Operation: constvars.OperationGetProfessionalActivities, Method: constvars.MethodGet, Path: "/api/search/professional/{id}/activities", Policy: PolicySearch, EmptyOnNotFound: true, Fallback: constvars.FallbackGetProfessionalActivities},

	{Operation: constvars.OperationGetPendingProfessionals, Method: constvars.MethodGet, Path: "/api/admin/professionals/pending", RequiresAuth: true, EmptyOnNotFound: true, Fallback: constvars.FallbackGetPendingProfessionals},
	{Operation: constvars.OperationApproveProfessional, Method: constvars.MethodPost, Path: "/api/admin/professionals/{id}/approve", RequiresAuth: true, Fallback: constvars.FallbackApproveProfessional, NotFoundMessage: constvars.ErrClientProfessionalNotFound},
	{Operation: constvars.OperationRejectProfessional, Method: constvars.MethodPost, Path: "/api/admin/professionals/{id}/reject", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackRejectProfessional, NotFoundMessage: constvars.ErrClientProfessionalNotFound},
	{Operation: constvars.OperationCreateCategory, Method: constvars.MethodPost, Path: "/api/admin/categories", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackCreateCategory},
	{Operation: constvars.OperationUpdateCategory, Method: constvars.MethodPut, Path: "/api/admin/categories/{id}", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackUpdateCategory},
	{Operation: constvars.OperationDeleteCategory, Method: constvars.MethodDelete, Path: "/api/admin/categories/{id}", RequiresAuth: true, Fallback: constvars.FallbackDeleteCategory},
	{Operation: constvars.OperationListActivities, Method: constvars.MethodGet, Path: "/api/admin/activities", RequiresAuth: true, Fallback: constvars.FallbackListActivities},
	{Operation: constvars.OperationCreateActivity, Method: constvars.MethodPost, Path: "/api/admin/activities", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackCreateActivity},
	{Operation: constvars.OperationUpdateActivity, Method: constvars.MethodPut, Path: "/api/admin/activities/{id}", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackUpdateActivity},
	{Operation: constvars.OperationDeleteActivity, Method: constvars.MethodDelete, Path: "/api/admin/activities/{id}", RequiresAuth: true, Fallback: constvars.FallbackDeleteActivity},
	{Operation: constvars.OperationGetDiploma, Method: constvars.MethodGet, Path: "/api/admin/diploma/{id}", RequiresAuth: true, Fallback: constvars.FallbackGetDiploma, NotFoundMessage: constvars.ErrClientDiplomaNotFound},

	{Operation: constvars.OperationGetPatientProfile, Method: constvars.MethodGet, Path: "/api/patient/{id}", RequiresAuth: true, Fallback: constvars.FallbackGetProfile, NotFoundMessage: constvars.ErrClientProfileNotFound},
	{Operation: constvars.OperationUpdatePatientProfile, Method: constvars.MethodPut, Path: "/api/patient/{id}", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackUpdateProfile, NotFoundMessage: constvars.ErrClientProfileNotFound},
	{Operation: constvars.OperationGetProfessionalProfile, Method: constvars.MethodGet, Path: "/api/professional/{id}", RequiresAuth: true, Fallback: constvars.FallbackGetProfile, NotFoundMessage: constvars.ErrClientProfileNotFound},
	{Operation: constvars.OperationUpdateProfessionalProfile, Method: constvars.MethodPut, Path: "/api/professional/{id}", RequiresAuth: true, Body: BodyJSONOrMultipart, Fallback: constvars.FallbackUpdateProfile, NotFoundMessage: constvars.ErrClientProfileNotFound},
	{Operation: constvars.OperationUpdateUserProfile, Method: constvars.MethodPut, Path: "/api/user/{id}", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackUpdateProfile},

	{Operation: constvars.OperationCreateBooking, Method: constvars.MethodPost, Path: "/api/booking/", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackCreateBooking},
	{Operation: constvars.OperationGetUserBookings, Method: constvars.MethodGet, Path: "/api/booking/", RequiresAuth: true, EmptyOnNotFound: true, Fallback: constvars.FallbackGetUserBookings},
	{Operation: constvars.OperationProcessPayment, Method: constvars.MethodPost, Path: "/api/booking/{id}/payment", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackProcessPayment},
	{Operation: constvars.OperationUpdateBookingStatus, Method: constvars.MethodPut, Path: "/api/booking/{id}/status", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackUpdateBookingStatus},
	{Operation: constvars.OperationCreateReview, Method: constvars.MethodPost, Path: "/api/booking/{id}/review", RequiresAuth: true, Body: BodyJSON, Fallback: constvars.FallbackCreateReview},
	{Operation: constvars.OperationGetProfessionalReviews, Method: constvars.MethodGet, Path: "/api/booking/professional/{id}/reviews", EmptyOnFailure: true, Fallback: constvars.FallbackGetProfessionalReviews},
}

var routeTable = buildRouteTable(routes)

func buildRouteTable(routes []Route) map[string]Route {
	table := make(map[string]Route, len(routes))
	for _, route := range routes {
		table[route.Operation] = route
	}
	return table
}

// Routes returns a copy of the route table in declaration order.
func Routes() []Route {
	out := make([]Route, len(routes))
	copy(out, routes)
	return out
}

func LookupRoute(operation string) (Route, error) {
	route, ok := routeTable[operation]
	if !ok {
		return Route{}, exceptions.ErrUnknownOperation(operation)
	}
	return route, nil
}

// BuildPath fills each {placeholder} of the template, in order, with an
// escaped path parameter.
func (r Route) BuildPath(params []string) (string, error) {
	var builder strings.Builder
	template := r.Path
	used := 0
	for {
		start := strings.IndexByte(template, '{')
		if start < 0 {
			builder.WriteString(template)
			break
		}
		end := strings.IndexByte(template[start:], '}')
		if end < 0 {
			builder.WriteString(template)
			break
		}
		if used >= len(params) || params[used] == "" {
			return "", exceptions.ErrMissingPathParam(r.Operation)
		}
		builder.WriteString(template[:start])
		builder.WriteString(url.PathEscape(params[used]))
		used++
		template = template[start+end+1:]
	}
	if used != len(params) {
		return "", exceptions.ErrMissingPathParam(r.Operation)
	}
	return builder.String(), nil
}
