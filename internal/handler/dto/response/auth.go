package response

import "delacream-park/internal/usecase"

// LoginResponse is a complete top-level body: token and user sit beside
// success/message rather than under data, which is the shape the admin
// frontend consumes.
type LoginResponse struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Token   string                `json:"token"`
	User    *usecase.AdminAccount `json:"user"`
}
