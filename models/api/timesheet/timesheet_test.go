package timesheetapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validTimesheetData() TimesheetData {
	return TimesheetData{
		EmployeeID:   "123-321",
		Date:         "2026-08-01",
		StartTime:    "09:00",
		EndTime:      "17:00",
		BreakMinutes: 60,
	}
}

func TestTimesheetDataValidate(t *testing.T) {
	t.Run(`корректный запрос`, func(t *testing.T) {
		require.Nil(t, validTimesheetData().Validate())
	})

	t.Run(`без сотрудника`, func(t *testing.T) {
		data := validTimesheetData()
		data.EmployeeID = ""
		require.NotNil(t, data.Validate())
	})

	t.Run(`дата в неправильном формате`, func(t *testing.T) {
		data := validTimesheetData()
		data.Date = "01.08.2026"
		require.NotNil(t, data.Validate())

		data.Date = ""
		require.NotNil(t, data.Validate())
	})

	t.Run(`время в неправильном формате`, func(t *testing.T) {
		data := validTimesheetData()
		data.StartTime = "9 утра"
		require.NotNil(t, data.Validate())

		data = validTimesheetData()
		data.EndTime = "25:00"
		require.NotNil(t, data.Validate())

		data = validTimesheetData()
		data.EndTime = "17:60"
		require.NotNil(t, data.Validate())
	})

	t.Run(`время без ведущего нуля допустимо`, func(t *testing.T) {
		data := validTimesheetData()
		data.StartTime = "9:00"
		require.Nil(t, data.Validate())
	})

	t.Run(`отрицательный перерыв`, func(t *testing.T) {
		data := validTimesheetData()
		data.BreakMinutes = -10
		require.NotNil(t, data.Validate())
	})
}
