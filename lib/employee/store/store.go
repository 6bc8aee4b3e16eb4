package employeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"company-portal-backend/models"
	dbmodels "company-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (*dbmodels.Employee, error)
	Update(id string, updMap map[string]interface{}) (*dbmodels.Employee, error)
	Delete(id string) error
	GetList() (list []dbmodels.Employee, err error)
	GetByID(id string) (rec *dbmodels.Employee, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (*dbmodels.Employee, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		// уникальность почты обеспечивает индекс, предварительной выборки нет
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) (*dbmodels.Employee, error) {
	tx := i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrDuplicatedKey) {
			return nil, models.ErrDuplicateEmail
		}
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, models.ErrNotFound
	}
	return i.GetByID(id)
}

func (i impl) Delete(id string) error {
	tx := i.db.
		Where("id = ?", id).
		Delete(&dbmodels.Employee{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (i impl) GetList() (list []dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
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
