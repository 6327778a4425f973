package types

import "time"

type ImageInfo struct {
	ID          uint      `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	UploadDate  time.Time `json:"uploadDate"`
}

type ImageListResponse struct {
	Limit   int         `json:"limit"`
	PageMax int64       `json:"pageMax"`
	List    []ImageInfo `json:"list"`
}
