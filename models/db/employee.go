package dbmodels

import (
	"fmt"
	"time"

	"company-portal-backend/models"
	employeeapimodels "company-portal-backend/models/api/employee"
)

type Employee struct {
	BaseModel
	FirstName    string                `gorm:"type:varchar(255)"`
	LastName     string                `gorm:"type:varchar(255)"`
	Email        string                `gorm:"type:varchar(255);uniqueIndex"`
	Position     string                `gorm:"type:varchar(255)"`
	Department   string                `gorm:"type:varchar(255)"`
	Status       models.EmployeeStatus `gorm:"type:varchar(50)"`
	JoinDate     time.Time
	ProfilePhoto string `gorm:"type:varchar(500)"`
}

func (e Employee) GetFIO() string {
	return fmt.Sprintf("%s %s", e.FirstName, e.LastName)
}

func (e Employee) ToModel() employeeapimodels.EmployeeView {
	view := employeeapimodels.EmployeeView{
		ID:           e.ID,
		Name:         e.GetFIO(),
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Position:     e.Position,
		Department:   e.Department,
		Status:       string(e.Status),
		ProfilePhoto: e.ProfilePhoto,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if !e.JoinDate.IsZero() {
		view.JoinDate = e.JoinDate.Format(time.DateOnly)
	}
	return view
}
