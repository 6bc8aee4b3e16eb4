package userapimodels

import "time"

type UserView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	RoleName  string    `json:"roleName"` // человекочитаемое название роли
	CreatedAt time.Time `json:"createdAt"`
}
