package timesheethandler

import (
	log "github.com/sirupsen/logrus"

	"company-portal-backend/db"
	timesheetstore "company-portal-backend/lib/timesheet/store"
	"company-portal-backend/models"
	timesheetapimodels "company-portal-backend/models/api/timesheet"
	dbmodels "company-portal-backend/models/db"
)

type Provider interface {
	GetList() (list []timesheetapimodels.TimesheetView, err error)
	Create(request timesheetapimodels.TimesheetData) (view timesheetapimodels.TimesheetView, err error)
	Update(id string, request timesheetapimodels.TimesheetData) (view timesheetapimodels.TimesheetView, err error)
	SetStatus(id string, status string) (view timesheetapimodels.TimesheetView, err error)
	GetRecList() (list []dbmodels.Timesheet, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: timesheetstore.NewInstance(db.DB),
	}
}

type impl struct {
	store timesheetstore.Provider
}

func (i impl) GetList() (list []timesheetapimodels.TimesheetView, err error) {
	recList, err := i.store.GetList()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка табелей")
		return nil, err
	}
	list = make([]timesheetapimodels.TimesheetView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// GetRecList список записей БД для экспорта
func (i impl) GetRecList() (list []dbmodels.Timesheet, err error) {
	return i.store.GetList()
}

func (i impl) Create(request timesheetapimodels.TimesheetData) (view timesheetapimodels.TimesheetView, err error) {
	logger := log.WithField("employee_id", request.EmployeeID)
	date, err := request.GetDate()
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	status := models.TimesheetStatusDraft
	if request.Status != "" {
		status = models.TimesheetStatus(request.Status)
		if !status.IsValid() {
			return timesheetapimodels.TimesheetView{}, models.ErrInvalidStatus
		}
	}
	rec := dbmodels.Timesheet{
		EmployeeID:   request.EmployeeID,
		Date:         date,
		StartTime:    request.StartTime,
		EndTime:      request.EndTime,
		BreakMinutes: request.BreakMinutes,
		// часы всегда вычисляются на сервере
		TotalHours: CalcTotalHours(request.StartTime, request.EndTime, request.BreakMinutes),
		Notes:      request.Notes,
		Status:     status,
	}
	created, err := i.store.Create(rec)
	if err != nil {
		if err != models.ErrNotFound {
			logger.WithError(err).Error("ошибка создания табеля")
		}
		return timesheetapimodels.TimesheetView{}, err
	}
	logger.
		WithField("rec_id", created.ID).
		Info("добавлен табель")
	return created.ToModel(), nil
}

func (i impl) Update(id string, request timesheetapimodels.TimesheetData) (view timesheetapimodels.TimesheetView, err error) {
	logger := log.WithField("rec_id", id)
	date, err := request.GetDate()
	if err != nil {
		return timesheetapimodels.TimesheetView{}, err
	}
	updMap := map[string]interface{}{
		"employee_id":   request.EmployeeID,
		"date":          date,
		"start_time":    request.StartTime,
		"end_time":      request.EndTime,
		"break_minutes": request.BreakMinutes,
		"total_hours":   CalcTotalHours(request.StartTime, request.EndTime, request.BreakMinutes),
		"notes":         request.Notes,
	}
	updated, err := i.store.Update(id, updMap)
	if err != nil {
		if err != models.ErrNotFound {
			logger.WithError(err).Error("ошибка обновления табеля")
		}
		return timesheetapimodels.TimesheetView{}, err
	}
	logger.Info("обновлен табель")
	return updated.ToModel(), nil
}

func (i impl) SetStatus(id string, status string) (view timesheetapimodels.TimesheetView, err error) {
	logger := log.WithField("rec_id", id).WithField("status", status)
	newStatus := models.TimesheetStatus(status)
	if !newStatus.IsValid() {
		return timesheetapimodels.TimesheetView{}, models.ErrInvalidStatus
	}
	updated, err := i.store.Update(id, map[string]interface{}{"status": newStatus})
	if err != nil {
		if err != models.ErrNotFound {
			logger.WithError(err).Error("ошибка смены статуса табеля")
		}
		return timesheetapimodels.TimesheetView{}, err
	}
	logger.Info("изменен статус табеля")
	return updated.ToModel(), nil
}
