package marketingapimodels

import (
	"net/mail"
	"time"

	"github.com/pkg/errors"
)

type CandidateData struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Position    string `json:"position"`
	Source      string `json:"source"`
	Status      string `json:"status"`
	Submissions int    `json:"submissions"`
	Interviews  int    `json:"interviews"`
	Notes       string `json:"notes"`
}

func (r CandidateData) Validate() error {
	if r.Name == "" {
		return errors.New("не указано имя кандидата")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Submissions < 0 || r.Interviews < 0 {
		return errors.New("счетчики не могут быть отрицательными")
	}
	return nil
}

type CandidateView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	Position    string    `json:"position,omitempty"`
	Source      string    `json:"source,omitempty"`
	Status      string    `json:"status"`
	Submissions int       `json:"submissions"`
	Interviews  int       `json:"interviews"`
	LastContact string    `json:"lastContact,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
