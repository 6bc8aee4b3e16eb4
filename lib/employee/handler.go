package employeehandler

import (
	log "github.com/sirupsen/logrus"

	"company-portal-backend/db"
	employeestore "company-portal-backend/lib/employee/store"
	"company-portal-backend/models"
	employeeapimodels "company-portal-backend/models/api/employee"
	dbmodels "company-portal-backend/models/db"
)

type Provider interface {
	GetList() (list []employeeapimodels.EmployeeView, err error)
	Create(request employeeapimodels.EmployeeData) (view employeeapimodels.EmployeeView, err error)
	Update(id string, request employeeapimodels.EmployeeData) (view employeeapimodels.EmployeeView, err error)
	Delete(id string) error
	GetRecList() (list []dbmodels.Employee, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) GetList() (list []employeeapimodels.EmployeeView, err error) {
	recList, err := i.store.GetList()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка сотрудников")
		return nil, err
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

// GetRecList список записей БД для экспорта
func (i impl) GetRecList() (list []dbmodels.Employee, err error) {
	return i.store.GetList()
}

func (i impl) Create(request employeeapimodels.EmployeeData) (view employeeapimodels.EmployeeView, err error) {
	logger := log.WithField("email", request.Email)
	joinDate, err := request.GetJoinDate()
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	status := models.EmployeeStatus(request.Status)
	if request.Status == "" {
		status = models.EmployeeStatusActive
	}
	rec := dbmodels.Employee{
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Email:        request.Email,
		Position:     request.Position,
		Department:   request.Department,
		Status:       status,
		JoinDate:     joinDate,
		ProfilePhoto: request.ProfilePhoto,
	}
	created, err := i.store.Create(rec)
	if err != nil {
		if err != models.ErrDuplicateEmail {
			logger.WithError(err).Error("ошибка создания сотрудника")
		}
		return employeeapimodels.EmployeeView{}, err
	}
	logger.
		WithField("rec_id", created.ID).
		Info("добавлен сотрудник")
	return created.ToModel(), nil
}

func (i impl) Update(id string, request employeeapimodels.EmployeeData) (view employeeapimodels.EmployeeView, err error) {
	logger := log.WithField("rec_id", id)
	joinDate, err := request.GetJoinDate()
	if err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	updMap := map[string]interface{}{
		"first_name":    request.FirstName,
		"last_name":     request.LastName,
		"email":         request.Email,
		"position":      request.Position,
		"department":    request.Department,
		"profile_photo": request.ProfilePhoto,
	}
	if request.Status != "" {
		updMap["status"] = request.Status
	}
	if !joinDate.IsZero() {
		updMap["join_date"] = joinDate
	}
	updated, err := i.store.Update(id, updMap)
	if err != nil {
		if err != models.ErrNotFound && err != models.ErrDuplicateEmail {
			logger.WithError(err).Error("ошибка обновления сотрудника")
		}
		return employeeapimodels.EmployeeView{}, err
	}
	logger.Info("обновлен сотрудник")
	return updated.ToModel(), nil
}

func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	err := i.store.Delete(id)
	if err != nil {
		if err != models.ErrNotFound {
			logger.WithError(err).Error("ошибка удаления сотрудника")
		}
		return err
	}
	logger.Info("удален сотрудник")
	return nil
}
