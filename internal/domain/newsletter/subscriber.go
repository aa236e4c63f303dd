package newsletter

import "time"

type Status string

const (
	StatusActive       Status = "active"
	StatusUnsubscribed Status = "unsubscribed"
)

func (s Status) String() string {
	return string(s)
}

type Subscriber struct {
	ID             int
	Email          string
	Status         Status
	SubscribedAt   time.Time
	UnsubscribedAt *time.Time
}

func NewSubscriber(email string, now time.Time) *Subscriber {
	return &Subscriber{
		Email:        email,
		Status:       StatusActive,
		SubscribedAt: now,
	}
}

func (s *Subscriber) Unsubscribe(now time.Time) {
	s.Status = StatusUnsubscribed
	s.UnsubscribedAt = &now
}
