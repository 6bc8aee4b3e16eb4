package rbac

import (
	"company-portal-backend/models"
)

var (
	AdminHrManagerRoleSet    = []models.UserRole{models.AdminRole, models.ManagerRole, models.HRRole}
	AdminHrRoleSet           = []models.UserRole{models.AdminRole, models.HRRole}
	AdminManagerMarketingSet = []models.UserRole{models.AdminRole, models.ManagerRole, models.MarketingRole}
	AdminOnlyRoleSet         = []models.UserRole{models.AdminRole}
	AllRoles                 = []models.UserRole{models.AdminRole, models.ManagerRole, models.EmployeeRole, models.HRRole, models.MarketingRole}
)

func (i *impl) initRules() {
	i.addUsersRbac()
	i.addEmployeeRbac()
	i.addTimesheetRbac()
	i.addMarketingRbac()
	i.addDocumentRbac()
}

func (i *impl) addUsersRbac() {
	// регистрация доступна только администратору,
	// в исходном портале маршрут не был защищен, здесь это исправлено
	i.RegisterRule(models.UsersModule, models.ManagePermission, AdminOnlyRoleSet, "/api/v1/auth/register [post]", nil)
}

func (i *impl) addEmployeeRbac() {
	//VIEW
	i.RegisterRule(models.EmployeeModule, models.ViewPermission, AdminHrManagerRoleSet, "/api/v1/employees [get]", nil)
	i.RegisterRule(models.EmployeeModule, models.ExportPermission, AdminHrManagerRoleSet, "/api/v1/employees/export [get]", nil)
	//MANAGE
	i.RegisterRule(models.EmployeeModule, models.CreatePermission, AdminHrManagerRoleSet, "/api/v1/employees [post]", nil)
	i.RegisterRule(models.EmployeeModule, models.EditPermission, AdminHrManagerRoleSet, "/api/v1/employees/{id} [put]", nil)
	i.RegisterRule(models.EmployeeModule, models.EditPermission, AdminHrManagerRoleSet, "/api/v1/employees/{id} [delete]", nil)
}

func (i *impl) addTimesheetRbac() {
	// просмотр и заведение доступны всем аутентифицированным
	i.RegisterRule(models.TimesheetModule, models.ViewPermission, AllRoles, "/api/v1/timesheets [get]", nil)
	i.RegisterRule(models.TimesheetModule, models.CreatePermission, AllRoles, "/api/v1/timesheets [post]", nil)
	i.RegisterRule(models.TimesheetModule, models.EditPermission, AllRoles, "/api/v1/timesheets/{id} [put]", nil)
	//FLOW
	i.RegisterRule(models.TimesheetModule, models.ManagePermission, AdminHrManagerRoleSet, "/api/v1/timesheets/{id}/status [patch]", nil)
	i.RegisterRule(models.TimesheetModule, models.ExportPermission, AdminHrManagerRoleSet, "/api/v1/timesheets/export [get]", nil)
}

func (i *impl) addMarketingRbac() {
	i.RegisterRule(models.MarketingModule, models.ViewPermission, AdminManagerMarketingSet, "/api/v1/marketing/candidates [get]", nil)
	i.RegisterRule(models.MarketingModule, models.CreatePermission, AdminManagerMarketingSet, "/api/v1/marketing/candidates [post]", nil)
	i.RegisterRule(models.MarketingModule, models.EditPermission, AdminManagerMarketingSet, "/api/v1/marketing/candidates/{id} [put]", nil)
}

func (i *impl) addDocumentRbac() {
	i.RegisterRule(models.DocumentModule, models.ViewPermission, AllRoles, "/api/v1/documents [get]", nil)
	i.RegisterRule(models.DocumentModule, models.ViewPermission, AllRoles, "/api/v1/documents/{id}/download [get]", nil)
	//FILES
	i.RegisterRule(models.DocumentModule, models.FilesPermission, AdminHrRoleSet, "/api/v1/documents [post]", nil)
	i.RegisterRule(models.DocumentModule, models.FilesPermission, AdminHrRoleSet, "/api/v1/documents/{id} [delete]", nil)
}
