package types

import "time"

type ProductInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Images      *[]string `json:"images"`
	Status      *string   `json:"status"`
	Width       *float64  `json:"width"`
	Height      *float64  `json:"height"`
	Depth       *float64  `json:"depth"`
}

type ProductInfo struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	Width       *float64  `json:"width,omitempty"`
	Height      *float64  `json:"height,omitempty"`
	Depth       *float64  `json:"depth,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type OrderRequest struct {
	ProductID *uint   `json:"productId"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Message   *string `json:"message"`
}

type OrderResult struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}
