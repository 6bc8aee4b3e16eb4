package documentstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"company-portal-backend/models"
	dbmodels "company-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Document) (*dbmodels.Document, error)
	Delete(id string) error
	GetList() (list []dbmodels.Document, err error)
	GetByID(id string) (rec *dbmodels.Document, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Document) (*dbmodels.Document, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Document{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) GetList() (list []dbmodels.Document, err error) {
	err = i.db.Model(dbmodels.Document{}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Document, err error) {
	err = i.db.Model(dbmodels.Document{}).
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
