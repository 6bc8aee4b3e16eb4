package marketingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"company-portal-backend/models"
	dbmodels "company-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.MarketingCandidate) (*dbmodels.MarketingCandidate, error)
	Update(id string, updMap map[string]interface{}) (*dbmodels.MarketingCandidate, error)
	GetList() (list []dbmodels.MarketingCandidate, err error)
	GetByID(id string) (rec *dbmodels.MarketingCandidate, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.MarketingCandidate) (*dbmodels.MarketingCandidate, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) (*dbmodels.MarketingCandidate, error) {
	tx := i.db.
		Model(&dbmodels.MarketingCandidate{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, models.ErrNotFound
	}
	return i.GetByID(id)
}

func (i impl) GetList() (list []dbmodels.MarketingCandidate, err error) {
	err = i.db.Model(dbmodels.MarketingCandidate{}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.MarketingCandidate, err error) {
	err = i.db.Model(dbmodels.MarketingCandidate{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}
