package dbmodels

import (
	"time"

	"company-portal-backend/models"
	timesheetapimodels "company-portal-backend/models/api/timesheet"
)

type Timesheet struct {
	BaseModel
	EmployeeID   string    `gorm:"type:varchar(36);index"`
	Employee     *Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Date         time.Time `gorm:"index"`
	StartTime    string    `gorm:"type:varchar(5)"` // HH:MM
	EndTime      string    `gorm:"type:varchar(5)"` // HH:MM
	BreakMinutes int
	TotalHours   float64 `gorm:"type:decimal(4,2)"` // всегда вычисляется сервисом, с клиента не принимается
	Notes        string
	Status       models.TimesheetStatus `gorm:"type:varchar(50)"`
}

func (t Timesheet) ToModel() timesheetapimodels.TimesheetView {
	view := timesheetapimodels.TimesheetView{
		ID:           t.ID,
		EmployeeID:   t.EmployeeID,
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		BreakMinutes: t.BreakMinutes,
		TotalHours:   t.TotalHours,
		Notes:        t.Notes,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
	if !t.Date.IsZero() {
		view.Date = t.Date.Format(time.DateOnly)
	}
	if t.Employee != nil {
		view.EmployeeName = t.Employee.GetFIO()
	}
	return view
}
