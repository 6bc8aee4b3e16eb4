package employeeapimodels

import (
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"company-portal-backend/models"
)

type EmployeeData struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Position     string `json:"position"`
	Department   string `json:"department"`
	Status       string `json:"status"`
	JoinDate     string `json:"joinDate"` // YYYY-MM-DD
	ProfilePhoto string `json:"profilePhoto"`
}

func (r EmployeeData) Validate() error {
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("не указаны имя и фамилия сотрудника")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Status != "" && !models.EmployeeStatus(r.Status).IsValid() {
		return errors.New("неизвестный статус сотрудника")
	}
	if _, err := r.GetJoinDate(); err != nil {
		return err
	}
	return nil
}

func (r EmployeeData) GetJoinDate() (time.Time, error) {
	if r.JoinDate == "" {
		return time.Time{}, nil
	}
	date, err := time.Parse(time.DateOnly, r.JoinDate)
	if err != nil {
		return time.Time{}, errors.New("дата выхода имеет неправильный формат")
	}
	return date, nil
}

type EmployeeView struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"` // имя и фамилия одной строкой, как ожидает клиент
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Position     string    `json:"position"`
	Department   string    `json:"department"`
	Status       string    `json:"status"`
	JoinDate     string    `json:"joinDate,omitempty"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
