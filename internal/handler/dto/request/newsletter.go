package request

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type BroadcastRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}

type SubscriberListQuery struct {
	Status string `form:"status,default=active" binding:"omitempty,oneof=active unsubscribed all"`
	Page   int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit  int    `form:"limit,default=50" binding:"omitempty,min=1,max=200"`
}
