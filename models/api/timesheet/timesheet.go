package timesheetapimodels

import (
	"regexp"
	"time"

	"github.com/pkg/errors"
)

var clockRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

type TimesheetData struct {
	EmployeeID   string `json:"employeeId"`
	Date         string `json:"date"`      // YYYY-MM-DD
	StartTime    string `json:"startTime"` // HH:MM
	EndTime      string `json:"endTime"`   // HH:MM
	BreakMinutes int    `json:"breakMinutes"`
	Notes        string `json:"notes"`
	Status       string `json:"status"`
}

func (r TimesheetData) Validate() error {
	if r.EmployeeID == "" {
		return errors.New("не указан идентификатор сотрудника")
	}
	if _, err := r.GetDate(); err != nil {
		return err
	}
	if !clockRe.MatchString(r.StartTime) {
		return errors.New("время начала имеет неправильный формат")
	}
	if !clockRe.MatchString(r.EndTime) {
		return errors.New("время окончания имеет неправильный формат")
	}
	if r.BreakMinutes < 0 {
		return errors.New("перерыв не может быть отрицательным")
	}
	return nil
}

func (r TimesheetData) GetDate() (time.Time, error) {
	if r.Date == "" {
		return time.Time{}, errors.New("не указана дата")
	}
	date, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		return time.Time{}, errors.New("дата имеет неправильный формат")
	}
	return date, nil
}

type StatusChangeRequest struct {
	Status string `json:"status"`
}

type TimesheetView struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName,omitempty"`
	Date         string    `json:"date"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	BreakMinutes int       `json:"breakMinutes"`
	TotalHours   float64   `json:"totalHours"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
