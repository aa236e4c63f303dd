package response

import (
	"time"

	"delacream-park/internal/domain/newsletter"
	"delacream-park/internal/usecase"
)

type SubscriberResponse struct {
	ID             int        `json:"id"`
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	SubscribedAt   time.Time  `json:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty"`
}

func FromSubscriber(s *newsletter.Subscriber) *SubscriberResponse {
	return &SubscriberResponse{
		ID:             s.ID,
		Email:          s.Email,
		Status:         string(s.Status),
		SubscribedAt:   s.SubscribedAt,
		UnsubscribedAt: s.UnsubscribedAt,
	}
}

func FromSubscriberList(items []*newsletter.Subscriber) []*SubscriberResponse {
	res := make([]*SubscriberResponse, len(items))
	for i, s := range items {
		res[i] = FromSubscriber(s)
	}
	return res
}

type BroadcastResponse struct {
	TotalSubscribers int `json:"totalSubscribers"`
	SuccessCount     int `json:"successCount"`
	FailCount        int `json:"failCount"`
}

func FromBroadcastReport(r *usecase.BroadcastReport) *BroadcastResponse {
	return &BroadcastResponse{
		TotalSubscribers: r.TotalSubscribers,
		SuccessCount:     r.SuccessCount,
		FailCount:        r.FailCount,
	}
}
