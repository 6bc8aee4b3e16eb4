package marketinghandler

import (
	"time"

	log "github.com/sirupsen/logrus"

	"company-portal-backend/db"
	marketingstore "company-portal-backend/lib/marketing/store"
	"company-portal-backend/models"
	marketingapimodels "company-portal-backend/models/api/marketing"
	dbmodels "company-portal-backend/models/db"
)

type Provider interface {
	GetList() (list []marketingapimodels.CandidateView, err error)
	Create(request marketingapimodels.CandidateData) (view marketingapimodels.CandidateView, err error)
	Update(id string, request marketingapimodels.CandidateData) (view marketingapimodels.CandidateView, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: marketingstore.NewInstance(db.DB),
	}
}

type impl struct {
	store marketingstore.Provider
}

func (i impl) GetList() (list []marketingapimodels.CandidateView, err error) {
	recList, err := i.store.GetList()
	if err != nil {
		log.WithError(err).Error("ошибка получения списка кандидатов")
		return nil, err
	}
	list = make([]marketingapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) Create(request marketingapimodels.CandidateData) (view marketingapimodels.CandidateView, err error) {
	logger := log.WithField("email", request.Email)
	status := request.Status
	if status == "" {
		status = models.CandidateStatusDefault
	}
	rec := dbmodels.MarketingCandidate{
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Position: request.Position,
		Source:   request.Source,
		Status:   status,
		Notes:    request.Notes,
		// счетчики начинаются с нуля и меняются только явным обновлением
		LastContact: time.Now(),
	}
	created, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания кандидата")
		return marketingapimodels.CandidateView{}, err
	}
	logger.
		WithField("rec_id", created.ID).
		Info("добавлен кандидат")
	return created.ToModel(), nil
}

func (i impl) Update(id string, request marketingapimodels.CandidateData) (view marketingapimodels.CandidateView, err error) {
	logger := log.WithField("rec_id", id)
	updMap := map[string]interface{}{
		"name":         request.Name,
		"email":        request.Email,
		"phone":        request.Phone,
		"position":     request.Position,
		"source":       request.Source,
		"status":       request.Status,
		"submissions":  request.Submissions,
		"interviews":   request.Interviews,
		"notes":        request.Notes,
		"last_contact": time.Now(),
	}
	updated, err := i.store.Update(id, updMap)
	if err != nil {
		if err != models.ErrNotFound {
			logger.WithError(err).Error("ошибка обновления кандидата")
		}
		return marketingapimodels.CandidateView{}, err
	}
	logger.Info("обновлен кандидат")
	return updated.ToModel(), nil
}
