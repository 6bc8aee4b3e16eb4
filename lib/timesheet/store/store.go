package timesheetstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"company-portal-backend/models"
	dbmodels "company-portal-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Timesheet) (*dbmodels.Timesheet, error)
	Update(id string, updMap map[string]interface{}) (*dbmodels.Timesheet, error)
	GetList() (list []dbmodels.Timesheet, err error)
	GetByID(id string) (rec *dbmodels.Timesheet, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Timesheet) (*dbmodels.Timesheet, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		// ссылку на сотрудника проверяет внешний ключ
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return i.GetByID(rec.ID)
}

func (i impl) Update(id string, updMap map[string]interface{}) (*dbmodels.Timesheet, error) {
	tx := i.db.
		Model(&dbmodels.Timesheet{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrForeignKeyViolated) {
			return nil, models.ErrNotFound
		}
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, models.ErrNotFound
	}
	return i.GetByID(id)
}

func (i impl) GetList() (list []dbmodels.Timesheet, err error) {
	err = i.db.Model(dbmodels.Timesheet{}).
		Preload("Employee").
		Order("date desc, created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) GetByID(id string) (rec *dbmodels.Timesheet, err error) {
	err = i.db.Model(dbmodels.Timesheet{}).
		Where("id = ?", id).
		Preload("Employee").
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
