package models

type RbacFunc func(userID string, role UserRole, path string) bool

type Module string

const (
	UsersModule     Module = "USERS"
	EmployeeModule  Module = "EMPLOYEES"
	TimesheetModule Module = "TIMESHEETS"
	MarketingModule Module = "MARKETING"
	DocumentModule  Module = "DOCUMENTS"
)

type Permission string

const (
	CreatePermission Permission = "CREATE"
	EditPermission   Permission = "EDIT"
	ViewPermission   Permission = "VIEW"
	ManagePermission Permission = "MANAGE"
	ExportPermission Permission = "EXPORT"
	FilesPermission  Permission = "FILES"
)
