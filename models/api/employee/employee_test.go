package employeeapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validEmployeeData() EmployeeData {
	return EmployeeData{
		FirstName:  "Иван",
		LastName:   "Иванов",
		Email:      "ivanov@example.com",
		Position:   "Инженер",
		Department: "Разработка",
		Status:     "Active",
		JoinDate:   "2026-01-15",
	}
}

func TestEmployeeDataValidate(t *testing.T) {
	t.Run(`корректный запрос`, func(t *testing.T) {
		require.Nil(t, validEmployeeData().Validate())
	})

	t.Run(`без имени или фамилии`, func(t *testing.T) {
		data := validEmployeeData()
		data.FirstName = ""
		require.NotNil(t, data.Validate())

		data = validEmployeeData()
		data.LastName = ""
		require.NotNil(t, data.Validate())
	})

	t.Run(`почта в неправильном формате`, func(t *testing.T) {
		data := validEmployeeData()
		data.Email = "не почта"
		require.NotNil(t, data.Validate())
	})

	t.Run(`неизвестный статус`, func(t *testing.T) {
		data := validEmployeeData()
		data.Status = "Fired"
		require.NotNil(t, data.Validate())
	})

	t.Run(`статус не обязателен`, func(t *testing.T) {
		data := validEmployeeData()
		data.Status = ""
		require.Nil(t, data.Validate())
	})

	t.Run(`дата выхода не обязательна`, func(t *testing.T) {
		data := validEmployeeData()
		data.JoinDate = ""
		require.Nil(t, data.Validate())
	})

	t.Run(`дата выхода в неправильном формате`, func(t *testing.T) {
		data := validEmployeeData()
		data.JoinDate = "15.01.2026"
		require.NotNil(t, data.Validate())
	})
}
