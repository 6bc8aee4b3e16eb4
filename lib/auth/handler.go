package authhandler

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"company-portal-backend/db"
	usersstore "company-portal-backend/lib/users/store"
	authutils "company-portal-backend/lib/utils/auth-utils"
	"company-portal-backend/models"
	authapimodels "company-portal-backend/models/api/auth"
	userapimodels "company-portal-backend/models/api/users"
	dbmodels "company-portal-backend/models/db"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Register(request authapimodels.RegisterRequest) (user userapimodels.UserView, err error)
	Me(ctx *fiber.Ctx) (user userapimodels.UserView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.usersStore.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	// ответ не различает неизвестную почту и неверный пароль
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, models.ErrInvalidCredentials
	}
	if !authutils.CheckPassword(user.PasswordHash, password) {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, models.ErrInvalidCredentials
	}
	tokenString, err := authutils.GetToken(user.ID, user.Email, user.Name, user.Role)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	if err = i.usersStore.UpdateLastLogin(user.ID); err != nil {
		logger.
			WithError(err).
			Error("ошибка обновления даты последнего входа")
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
		User:  user.ToModel(),
	}, nil
}

func (i impl) Register(request authapimodels.RegisterRequest) (user userapimodels.UserView, err error) {
	logger := log.WithField("email", request.Email)
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		logger.WithError(err).Error("ошибка хэширования пароля")
		return userapimodels.UserView{}, err
	}
	rec := dbmodels.User{
		Email:        request.Email,
		PasswordHash: hash,
		Name:         request.Name,
		Role:         models.UserRole(request.Role),
	}
	created, err := i.usersStore.Create(rec)
	if err != nil {
		if err != models.ErrDuplicateEmail {
			logger.WithError(err).Error("ошибка создания пользователя")
		}
		return userapimodels.UserView{}, err
	}
	logger.
		WithField("rec_id", created.ID).
		WithField("role", created.Role).
		Info("зарегистрирован пользователь")
	return created.ToModel(), nil
}

func (i impl) Me(ctx *fiber.Ctx) (user userapimodels.UserView, err error) {
	claims := authutils.GetClaims(ctx)
	sub, _ := claims["sub"].(string)
	rec, err := i.usersStore.GetByID(sub)
	if err != nil {
		log.WithField("user_id", sub).WithError(err).Error("ошибка поиска пользователя")
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, models.ErrNotFound
	}
	return rec.ToModel(), nil
}
