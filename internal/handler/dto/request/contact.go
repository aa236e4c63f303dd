package request

import "delacream-park/internal/usecase"

type ContactRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"omitempty,max=30"`
	Subject   string `json:"subject" binding:"required,max=200"`
	Message   string `json:"message" binding:"required,min=10,max=5000"`
}

func (r *ContactRequest) ToMessage() usecase.ContactMessage {
	return usecase.ContactMessage{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Subject:   r.Subject,
		Message:   r.Message,
	}
}
