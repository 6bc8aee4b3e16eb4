package docapimodels

import "time"

type DocumentView struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	FileType   string    `json:"fileType"`
	Category   string    `json:"category,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	UploadedBy string    `json:"uploadedBy"`
	FileSize   int64     `json:"fileSize"`
	CreatedAt  time.Time `json:"createdAt"`
}
