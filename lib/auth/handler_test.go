package authhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"company-portal-backend/config"
	authutils "company-portal-backend/lib/utils/auth-utils"
	"company-portal-backend/models"
	authapimodels "company-portal-backend/models/api/auth"
	dbmodels "company-portal-backend/models/db"
)

type stubUsersStore struct {
	user           *dbmodels.User
	created        *dbmodels.User
	createErr      error
	lastLoginCalls int
}

func (s *stubUsersStore) Create(rec dbmodels.User) (*dbmodels.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	rec.ID = "user-1"
	s.created = &rec
	return &rec, nil
}

func (s *stubUsersStore) Update(userID string, updMap map[string]interface{}) error {
	return nil
}

func (s *stubUsersStore) FindByEmail(email string) (*dbmodels.User, error) {
	return s.user, nil
}

func (s *stubUsersStore) GetByID(userID string) (*dbmodels.User, error) {
	return s.user, nil
}

func (s *stubUsersStore) UpdateLastLogin(userID string) error {
	s.lastLoginCalls++
	return nil
}

func newTestHandler(t *testing.T, store *stubUsersStore) impl {
	t.Helper()
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 3600
	return impl{usersStore: store}
}

func storedUser(t *testing.T, password string) *dbmodels.User {
	t.Helper()
	hash, err := authutils.HashPassword(password)
	require.Nil(t, err)
	user := dbmodels.User{
		Email:        "user@example.com",
		PasswordHash: hash,
		Name:         "Иван Иванов",
		Role:         models.HRRole,
	}
	user.ID = "user-1"
	return &user
}

func TestLogin(t *testing.T) {
	t.Run(`успешный вход выдает токен и обновляет дату входа`, func(t *testing.T) {
		store := &stubUsersStore{user: storedUser(t, "secret-password")}
		handler := newTestHandler(t, store)

		resp, err := handler.Login("user@example.com", "secret-password")
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, "user@example.com", resp.User.Email)
		require.Equal(t, 1, store.lastLoginCalls)
	})

	t.Run(`неверный пароль дает ErrInvalidCredentials`, func(t *testing.T) {
		store := &stubUsersStore{user: storedUser(t, "secret-password")}
		handler := newTestHandler(t, store)

		_, err := handler.Login("user@example.com", "wrong-password")
		require.ErrorIs(t, err, models.ErrInvalidCredentials)
		require.Equal(t, 0, store.lastLoginCalls)
	})

	t.Run(`неизвестная почта дает ту же ошибку что и неверный пароль`, func(t *testing.T) {
		store := &stubUsersStore{}
		handler := newTestHandler(t, store)

		_, err := handler.Login("unknown@example.com", "secret-password")
		require.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	t.Run(`пароль сохраняется в виде хэша`, func(t *testing.T) {
		store := &stubUsersStore{}
		handler := newTestHandler(t, store)

		user, err := handler.Register(authapimodels.RegisterRequest{
			Email:    "new@example.com",
			Password: "secret-password",
			Name:     "Петр Петров",
			Role:     string(models.ManagerRole),
		})
		require.Nil(t, err)
		require.Equal(t, "new@example.com", user.Email)
		require.NotNil(t, store.created)
		require.NotEqual(t, "secret-password", store.created.PasswordHash)
		require.True(t, authutils.CheckPassword(store.created.PasswordHash, "secret-password"))
	})

	t.Run(`дубликат почты возвращается как есть`, func(t *testing.T) {
		store := &stubUsersStore{createErr: models.ErrDuplicateEmail}
		handler := newTestHandler(t, store)

		_, err := handler.Register(authapimodels.RegisterRequest{
			Email:    "user@example.com",
			Password: "secret-password",
			Name:     "Петр Петров",
			Role:     string(models.ManagerRole),
		})
		require.ErrorIs(t, err, models.ErrDuplicateEmail)
	})
}
