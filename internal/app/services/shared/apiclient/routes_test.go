package apiclient

import (
	"saude-connect/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteTable(t *testing.T) {
	t.Run("Every Route Is Well Formed", func(t *testing.T) {
		seen := map[string]bool{}
		for _, route := range Routes() {
			assert.False(t, seen[route.Operation], "duplicate operation %s", route.Operation)
			seen[route.Operation] = true
			assert.True(t, strings.HasPrefix(route.Path, "/api/"), route.Operation)
			assert.NotEmpty(t, route.Fallback, "%s needs a fallback message", route.Operation)
			assert.NotEmpty(t, route.Method, route.Operation)
		}
		assert.Len(t, seen, len(routeTable))
	})

	t.Run("Public Routes", func(t *testing.T) {
		public := []string{
			constvars.OperationLogin,
			constvars.OperationRegisterPatient,
			constvars.OperationRegisterProfessional,
			constvars.OperationGetActivities,
			constvars.OperationGetCategories,
			constvars.OperationSearchProfessionals,
			constvars.OperationGetProfessionalDetails,
			constvars.OperationGetProfessionalActivities,
			constvars.OperationGetProfessionalReviews,
		}
		for _, operation := range public {
			route, err := LookupRoute(operation)
			require.NoError(t, err)
			assert.False(t, route.RequiresAuth, operation)
		}
	})

	t.Run("Admin Routes Need Auth", func(t *testing.T) {
		for _, route := range Routes() {
			if strings.HasPrefix(route.Path, "/api/admin/") || strings.HasPrefix(route.Path, "/api/patient/") {
				assert.True(t, route.RequiresAuth, route.Operation)
			}
		}
	})

	t.Run("Unknown Operation", func(t *testing.T) {
		_, err := LookupRoute("teleport")
		assert.Error(t, err)
	})
}

func TestRouteBuildPath(t *testing.T) {
	details, err := LookupRoute(constvars.OperationGetProfessionalActivities)
	require.NoError(t, err)

	t.Run("Fills Placeholders", func(t *testing.T) {
		path, err := details.BuildPath([]string{"42"})
		require.NoError(t, err)
		assert.Equal(t, "/api/search/professional/42/activities", path)
	})

	t.Run("Escapes Parameters", func(t *testing.T) {
		path, err := details.BuildPath([]string{"a/b"})
		require.NoError(t, err)
		assert.Equal(t, "/api/search/professional/a%2Fb/activities", path)
	})

	t.Run("Missing Parameter", func(t *testing.T) {
		_, err := details.BuildPath(nil)
		assert.Error(t, err)
	})

	t.Run("Extra Parameter", func(t *testing.T) {
		login, err := LookupRoute(constvars.OperationLogin)
		require.NoError(t, err)
		_, err = login.BuildPath([]string{"1"})
		assert.Error(t, err)
	})

	t.Run("Trailing Slash Kept", func(t *testing.T) {
		booking, err := LookupRoute(constvars.OperationCreateBooking)
		require.NoError(t, err)
		path, err := booking.BuildPath(nil)
		require.NoError(t, err)
		assert.Equal(t, "/api/booking/", path)
	})
}
