package dbmodels

import (
	"time"
)

// BaseModel общие поля всех таблиц, идентификатор генерирует postgres.
// Наружу записи отдаются через ToModel, поэтому json теги не нужны
type BaseModel struct {
	ID        string    `gorm:"primaryKey;default:uuid_generate_v4()"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}
