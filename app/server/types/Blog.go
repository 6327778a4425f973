package types

import "time"

type PostInput struct {
	Title         *string    `json:"title"`
	Content       *string    `json:"content"`
	Excerpt       *string    `json:"excerpt"`
	FeaturedImage *string    `json:"featuredImage"`
	Status        *string    `json:"status"`
	PublishDate   *time.Time `json:"publishDate"`
}

type PostUpdateRequest struct {
	ID *uint `json:"id"`
	PostInput
}

type PostInfo struct {
	ID            uint       `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       string     `json:"excerpt,omitempty"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Status        string     `json:"status"`
	WordCount     int        `json:"wordCount"`
	PublishDate   *time.Time `json:"publishDate,omitempty"`
	AuthorID      uint       `json:"authorId"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type PostListResponse struct {
	Limit   int        `json:"limit"`
	PageMax int64      `json:"pageMax"`
	List    []PostInfo `json:"list"`
}
