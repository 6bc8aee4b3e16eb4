package dbmodels

import (
	"github.com/lib/pq"

	docapimodels "company-portal-backend/models/api/document"
)

type Document struct {
	BaseModel
	Name       string         `gorm:"type:varchar(255)"`
	FilePath   string         `gorm:"type:varchar(500)"` // ключ объекта в s3
	FileType   string         `gorm:"type:varchar(100)"` // content-type
	Category   string         `gorm:"type:varchar(100)"`
	Tags       pq.StringArray `gorm:"type:text[]"`
	UploadedBy string         `gorm:"type:varchar(36)"`
	FileSize   int64
}

func (d Document) ToModel() docapimodels.DocumentView {
	return docapimodels.DocumentView{
		ID:         d.ID,
		Name:       d.Name,
		FileType:   d.FileType,
		Category:   d.Category,
		Tags:       d.Tags,
		UploadedBy: d.UploadedBy,
		FileSize:   d.FileSize,
		CreatedAt:  d.CreatedAt,
	}
}
