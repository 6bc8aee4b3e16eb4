package models

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "Active"
	EmployeeStatusInactive EmployeeStatus = "Inactive"
)

var employeeStatusHumanName = map[EmployeeStatus]string{
	EmployeeStatusActive:   "Работает",
	EmployeeStatusInactive: "Неактивен",
}

func (s EmployeeStatus) ToHuman() string {
	if human, exist := employeeStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s EmployeeStatus) IsValid() bool {
	_, exist := employeeStatusHumanName[s]
	return exist
}

type TimesheetStatus string

const (
	TimesheetStatusDraft     TimesheetStatus = "Draft"
	TimesheetStatusSubmitted TimesheetStatus = "Submitted"
	TimesheetStatusApproved  TimesheetStatus = "Approved"
	TimesheetStatusRejected  TimesheetStatus = "Rejected"
)

var timesheetStatusHumanName = map[TimesheetStatus]string{
	TimesheetStatusDraft:     "Черновик",
	TimesheetStatusSubmitted: "Отправлен",
	TimesheetStatusApproved:  "Согласован",
	TimesheetStatusRejected:  "Отклонен",
}

func (s TimesheetStatus) ToHuman() string {
	if human, exist := timesheetStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s TimesheetStatus) IsValid() bool {
	_, exist := timesheetStatusHumanName[s]
	return exist
}

// CandidateStatusDefault статус нового кандидата, если не указан иной
const CandidateStatusDefault = "First Contact"
