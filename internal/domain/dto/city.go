package dto

import "time"

type City struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Image     string    `json:"image"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Confirmation struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
