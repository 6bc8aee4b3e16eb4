package dbmodels

import (
	"time"

	"company-portal-backend/models"
	userapimodels "company-portal-backend/models/api/users"
)

type User struct {
	BaseModel
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(128)"`
	Name         string          `gorm:"type:varchar(255)"`
	Role         models.UserRole `gorm:"type:varchar(50)"`
	LastLogin    time.Time
}

// ToModel публичное представление пользователя, хэш пароля наружу не отдаем
func (u User) ToModel() userapimodels.UserView {
	return userapimodels.UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		RoleName:  u.Role.ToHuman(),
		CreatedAt: u.CreatedAt,
	}
}
