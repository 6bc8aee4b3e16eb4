package dbmodels

import (
	"time"

	marketingapimodels "company-portal-backend/models/api/marketing"
)

type MarketingCandidate struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	Email       string `gorm:"type:varchar(255)"`
	Phone       string `gorm:"type:varchar(50)"`
	Position    string `gorm:"type:varchar(255)"`
	Source      string `gorm:"type:varchar(255)"`
	Status      string `gorm:"type:varchar(100)"` // произвольная стадия воронки, не enum
	Submissions int
	Interviews  int
	LastContact time.Time
	Notes       string
}

func (c MarketingCandidate) ToModel() marketingapimodels.CandidateView {
	view := marketingapimodels.CandidateView{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Position:    c.Position,
		Source:      c.Source,
		Status:      c.Status,
		Submissions: c.Submissions,
		Interviews:  c.Interviews,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if !c.LastContact.IsZero() {
		view.LastContact = c.LastContact.Format(time.DateOnly)
	}
	return view
}
