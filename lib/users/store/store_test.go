package usersstore

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"company-portal-backend/models"
	dbmodels "company-portal-backend/models/db"
)

func newMockStore(t *testing.T) (Provider, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.Nil(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		TranslateError: true,
	})
	require.Nil(t, err)
	return NewInstance(gormDB), mock
}

func TestUsersStore(t *testing.T) {
	t.Run(`нарушение уникальности почты дает ErrDuplicateEmail`, func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "users"`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		_, err := store.Create(dbmodels.User{
			Email:        "ivanov@example.com",
			PasswordHash: "hash",
			Name:         "Иван Иванов",
			Role:         models.HRRole,
		})
		require.ErrorIs(t, err, models.ErrDuplicateEmail)
		require.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run(`поиск по неизвестной почте дает nil без ошибки`, func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WithArgs("unknown@example.com", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		rec, err := store.FindByEmail("unknown@example.com")
		require.Nil(t, err)
		require.Nil(t, rec)
		require.Nil(t, mock.ExpectationsWereMet())
	})
}
