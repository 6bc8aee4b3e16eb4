package employeestore

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

func validEmployeeRec() dbmodels.Employee {
	return dbmodels.Employee{
		FirstName:  "Иван",
		LastName:   "Иванов",
		Email:      "ivanov@example.com",
		Position:   "Инженер",
		Department: "Разработка",
		Status:     models.EmployeeStatusActive,
	}
}

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

func TestEmployeeStore(t *testing.T) {
	t.Run(`удаление отсутствующей записи дает ErrNotFound`, func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "employees"`).
			WithArgs("123-321").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := store.Delete("123-321")
		require.ErrorIs(t, err, models.ErrNotFound)
		require.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run(`удаление существующей записи`, func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "employees"`).
			WithArgs("123-321").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.Delete("123-321")
		require.Nil(t, err)
		require.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run(`поиск отсутствующей записи дает ErrNotFound`, func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectQuery(`SELECT (.+) FROM "employees"`).
			WithArgs("123-321", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := store.GetByID("123-321")
		require.ErrorIs(t, err, models.ErrNotFound)
		require.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run(`нарушение уникальности почты дает ErrDuplicateEmail`, func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "employees"`).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		mock.ExpectRollback()

		_, err := store.Create(validEmployeeRec())
		require.ErrorIs(t, err, models.ErrDuplicateEmail)
		require.Nil(t, mock.ExpectationsWereMet())
	})

	t.Run(`обновление отсутствующей записи дает ErrNotFound`, func(t *testing.T) {
		store, mock := newMockStore(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "employees"`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		_, err := store.Update("123-321", map[string]interface{}{"first_name": "Иван"})
		require.ErrorIs(t, err, models.ErrNotFound)
		require.Nil(t, mock.ExpectationsWereMet())
	})
}
