package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"

	"company-portal-backend/models"
	userapimodels "company-portal-backend/models/api/users"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (r RegisterRequest) Validate() error {
	_, err := mail.ParseAddress(r.Email)
	if err != nil {
		return errors.New("почта имеет неправильный формат")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	if r.Name == "" {
		return errors.New("не указано имя")
	}
	if !models.UserRole(r.Role).IsValid() {
		return errors.New("неизвестная роль")
	}
	return nil
}

type JWTResponse struct {
	Token string                 `json:"token"`
	User  userapimodels.UserView `json:"user"`
}
