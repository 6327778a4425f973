package types

import "time"

type SubscribeRequest struct {
	Email *string `json:"email"`
}

type UnsubscribeRequest struct {
	Token *string `json:"token"`
}

type BookDownloadRequest struct {
	Email *string `json:"email"`
}

type SubscriberActiveUpdateRequest struct {
	IsActive *bool `json:"isActive"`
}

type SubscriberInfo struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"isActive"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

type SubscriberListResponse struct {
	Limit   int              `json:"limit"`
	PageMax int64            `json:"pageMax"`
	List    []SubscriberInfo `json:"list"`
}
