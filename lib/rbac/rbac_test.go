package rbac

import (
	"testing"

	"github.com/stretchr/testify/require"

	"company-portal-backend/models"
)

func newTestImpl() *impl {
	i := &impl{
		rules:       map[HTTPMethod]*PathRule{},
		permissions: map[models.UserRole]map[models.Module][]models.Permission{},
	}
	i.initRules()
	return i
}

func TestRbac(t *testing.T) {
	t.Run(`pathToRegex check`, func(t *testing.T) {
		path, method, err := parseRoutePattern("/api/v1/employees/{id} [put]")
		require.Nil(t, err)
		require.Equal(t, PUT, method)
		r1 := pathToRegex(path)

		validUri := "/api/v1/employees/123-321"
		isMatch := r1.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri := "/api/v1/employees"
		isMatch = r1.MatchString(invalidUri)
		require.Equal(t, false, isMatch)

		path, method, err = parseRoutePattern("/api/v1/timesheets/{id}/status [patch]")
		require.Nil(t, err)
		require.Equal(t, PATCH, method)
		r2 := pathToRegex(path)

		validUri = "/api/v1/timesheets/qwe-ewr123-wr-12/status"
		isMatch = r2.MatchString(validUri)
		require.Equal(t, true, isMatch)

		invalidUri = "/api/v1/timesheets/status"
		isMatch = r2.MatchString(invalidUri)
		require.Equal(t, false, isMatch)
	})

	t.Run(`register only for admin`, func(t *testing.T) {
		i := newTestImpl()
		handler, found := i.GetRuleFunc("POST", "/api/v1/auth/register")
		require.True(t, found)
		require.True(t, handler("user-1", models.AdminRole, "/api/v1/auth/register"))
		require.False(t, handler("user-1", models.HRRole, "/api/v1/auth/register"))
		require.False(t, handler("user-1", models.EmployeeRole, "/api/v1/auth/register"))
	})

	t.Run(`employee routes closed for employee role`, func(t *testing.T) {
		i := newTestImpl()
		handler, found := i.GetRuleFunc("GET", "/api/v1/employees")
		require.True(t, found)
		require.True(t, handler("user-1", models.HRRole, "/api/v1/employees"))
		require.True(t, handler("user-1", models.ManagerRole, "/api/v1/employees"))
		require.False(t, handler("user-1", models.EmployeeRole, "/api/v1/employees"))
		require.False(t, handler("user-1", models.MarketingRole, "/api/v1/employees"))

		handler, found = i.GetRuleFunc("DELETE", "/api/v1/employees/123-321")
		require.True(t, found)
		require.True(t, handler("user-1", models.AdminRole, "/api/v1/employees/123-321"))
		require.False(t, handler("user-1", models.EmployeeRole, "/api/v1/employees/123-321"))
	})

	t.Run(`timesheet flow restricted`, func(t *testing.T) {
		i := newTestImpl()
		handler, found := i.GetRuleFunc("POST", "/api/v1/timesheets")
		require.True(t, found)
		require.True(t, handler("user-1", models.EmployeeRole, "/api/v1/timesheets"))

		handler, found = i.GetRuleFunc("PATCH", "/api/v1/timesheets/123-321/status")
		require.True(t, found)
		require.True(t, handler("user-1", models.ManagerRole, "/api/v1/timesheets/123-321/status"))
		require.False(t, handler("user-1", models.EmployeeRole, "/api/v1/timesheets/123-321/status"))
		require.False(t, handler("user-1", models.MarketingRole, "/api/v1/timesheets/123-321/status"))
	})

	t.Run(`marketing routes for marketing set`, func(t *testing.T) {
		i := newTestImpl()
		handler, found := i.GetRuleFunc("GET", "/api/v1/marketing/candidates")
		require.True(t, found)
		require.True(t, handler("user-1", models.MarketingRole, "/api/v1/marketing/candidates"))
		require.True(t, handler("user-1", models.ManagerRole, "/api/v1/marketing/candidates"))
		require.False(t, handler("user-1", models.HRRole, "/api/v1/marketing/candidates"))
		require.False(t, handler("user-1", models.EmployeeRole, "/api/v1/marketing/candidates"))
	})

	t.Run(`document upload for admin and hr`, func(t *testing.T) {
		i := newTestImpl()
		handler, found := i.GetRuleFunc("POST", "/api/v1/documents")
		require.True(t, found)
		require.True(t, handler("user-1", models.HRRole, "/api/v1/documents"))
		require.False(t, handler("user-1", models.ManagerRole, "/api/v1/documents"))

		// скачивание открыто всем аутентифицированным
		handler, found = i.GetRuleFunc("GET", "/api/v1/documents/123-321/download")
		require.True(t, found)
		require.True(t, handler("user-1", models.EmployeeRole, "/api/v1/documents/123-321/download"))
	})

	t.Run(`route without rule is not found`, func(t *testing.T) {
		i := newTestImpl()
		_, found := i.GetRuleFunc("GET", "/api/v1/rbac/permissions")
		require.False(t, found)
	})

	t.Run(`permissions map filled per role`, func(t *testing.T) {
		i := newTestImpl()
		employeePermissions := i.GetPermissions(models.EmployeeRole)
		require.NotContains(t, employeePermissions, models.EmployeeModule)
		require.Contains(t, employeePermissions[models.TimesheetModule], models.ViewPermission)
		require.NotContains(t, employeePermissions[models.TimesheetModule], models.ManagePermission)

		hrPermissions := i.GetPermissions(models.HRRole)
		require.Contains(t, hrPermissions[models.EmployeeModule], models.ExportPermission)
		require.Contains(t, hrPermissions[models.DocumentModule], models.FilesPermission)
		require.NotContains(t, hrPermissions, models.MarketingModule)
	})
}
