package models

type UserRole string

const (
	AdminRole     UserRole = "ADMIN"
	ManagerRole   UserRole = "MANAGER"
	EmployeeRole  UserRole = "EMPLOYEE"
	HRRole        UserRole = "HR"
	MarketingRole UserRole = "MARKETING_ASSOCIATE"
)

var roleHumanName = map[UserRole]string{
	AdminRole:     "Администратор",
	ManagerRole:   "Менеджер",
	EmployeeRole:  "Сотрудник",
	HRRole:        "HR-специалист",
	MarketingRole: "Специалист по маркетингу",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) IsAdmin() bool {
	return r == AdminRole
}
