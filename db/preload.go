package db

import (
	log "github.com/sirupsen/logrus"

	"company-portal-backend/config"
	usersstore "company-portal-backend/lib/users/store"
	authutils "company-portal-backend/lib/utils/auth-utils"
	"company-portal-backend/models"
	dbmodels "company-portal-backend/models/db"
)

func InitPreload() {
	addAdminUser()
}

// регистрация закрыта ролью ADMIN, поэтому первый администратор
// добавляется из настроек при старте
func addAdminUser() {
	if config.Conf.Admin.Email == "" {
		log.Warn("администратор не добавлен, отсутствует настройка ADMIN_EMAIL")
		return
	}
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	rec := dbmodels.User{
		Email:        config.Conf.Admin.Email,
		PasswordHash: hash,
		Name:         config.Conf.Admin.Name,
		Role:         models.AdminRole,
	}
	if _, err = store.Create(rec); err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
	}
}
