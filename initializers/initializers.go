package initializers

import (
	"context"

	"company-portal-backend/config"
	"company-portal-backend/fiberlog"
	authhandler "company-portal-backend/lib/auth"
	documenthandler "company-portal-backend/lib/document"
	employeehandler "company-portal-backend/lib/employee"
	xlsexport "company-portal-backend/lib/export/xls"
	marketinghandler "company-portal-backend/lib/marketing"
	"company-portal-backend/lib/rbac"
	timesheethandler "company-portal-backend/lib/timesheet"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	authhandler.NewHandler()
	employeehandler.NewHandler()
	timesheethandler.NewHandler()
	marketinghandler.NewHandler()
	documenthandler.NewHandler()
	xlsexport.NewHandler()
	rbac.NewHandler()
}
