package xlsexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "company-portal-backend/models/db"
)

type Provider interface {
	ExportEmployeeList(list []dbmodels.Employee) (*bytes.Buffer, error)
	ExportTimesheetList(list []dbmodels.Timesheet) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var employeeHeaders = []string{"ФИО", "Почта", "Должность", "Отдел", "Статус", "Дата выхода"}

func (i impl) ExportEmployeeList(list []dbmodels.Employee) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, employeeHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = writeEmployeeData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Сотрудники")
	return f.WriteToBuffer()
}

func writeEmployeeData(f *excelize.File, sheet string, list []dbmodels.Employee, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(employeeHeaders), len(list)+1); err != nil {
		return err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.GetFIO()); err != nil {
			return err
		}

		// "Почта"
		col++
		if err := writeColumn(f, sheet, col, row, item.Email); err != nil {
			return err
		}

		// "Должность"
		col++
		if err := writeColumn(f, sheet, col, row, item.Position); err != nil {
			return err
		}

		// "Отдел"
		col++
		if err := writeColumn(f, sheet, col, row, item.Department); err != nil {
			return err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return err
		}

		// "Дата выхода"
		col++
		joinDate := ""
		if !item.JoinDate.IsZero() {
			joinDate = item.JoinDate.Format(time.DateOnly)
		}
		if err := writeColumn(f, sheet, col, row, joinDate); err != nil {
			return err
		}
	}
	return nil
}

var timesheetHeaders = []string{"Сотрудник", "Дата", "Начало", "Окончание", "Перерыв (мин)", "Часы", "Статус"}

func (i impl) ExportTimesheetList(list []dbmodels.Timesheet) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, timesheetHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = writeTimesheetData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Табели")
	return f.WriteToBuffer()
}

func writeTimesheetData(f *excelize.File, sheet string, list []dbmodels.Timesheet, row int) error {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(timesheetHeaders), len(list)+1); err != nil {
		return err
	}
	for _, item := range list {
		row++
		// "Сотрудник"
		col := 1
		employeeName := item.EmployeeID
		if item.Employee != nil {
			employeeName = item.Employee.GetFIO()
		}
		if err := writeColumn(f, sheet, col, row, employeeName); err != nil {
			return err
		}

		// "Дата"
		col++
		if err := writeColumn(f, sheet, col, row, item.Date.Format(time.DateOnly)); err != nil {
			return err
		}

		// "Начало"
		col++
		if err := writeColumn(f, sheet, col, row, item.StartTime); err != nil {
			return err
		}

		// "Окончание"
		col++
		if err := writeColumn(f, sheet, col, row, item.EndTime); err != nil {
			return err
		}

		// "Перерыв (мин)"
		col++
		if err := writeColumn(f, sheet, col, row, item.BreakMinutes); err != nil {
			return err
		}

		// "Часы"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%.2f", item.TotalHours)); err != nil {
			return err
		}

		// "Статус"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return err
		}
	}
	return nil
}
