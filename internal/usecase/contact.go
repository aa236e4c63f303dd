package usecase

import (
	"context"

	"delacream-park/internal/pkg/errs"
)

// ContactInfo is the static directory served on the public contact page.
type ContactInfo struct {
	Phone         string                `json:"phone"`
	Email         string                `json:"email"`
	Address       Address               `json:"address"`
	Departments   map[string]Department `json:"departments"`
	SocialMedia   map[string]string     `json:"socialMedia"`
	BusinessHours map[string]string     `json:"businessHours"`
}

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

type Department struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ContactUseCase interface {
	Send(ctx context.Context, m ContactMessage) error
	Info(ctx context.Context) *ContactInfo
}

type contactUseCaseImpl struct {
	notifier Notifier
}

func NewContactUseCase(notifier Notifier) ContactUseCase {
	return &contactUseCaseImpl{notifier: notifier}
}

// Send dispatches the business notification and the sender acknowledgement.
// Unlike booking and newsletter mail, both sends must succeed for the
// submission to count as delivered.
func (u *contactUseCaseImpl) Send(ctx context.Context, m ContactMessage) error {
	if err := u.notifier.ContactReceived(ctx, m); err != nil {
		return errs.Mark(err, errs.ErrMailDelivery)
	}
	if err := u.notifier.ContactAcknowledgement(ctx, m); err != nil {
		return errs.Mark(err, errs.ErrMailDelivery)
	}
	return nil
}

func (u *contactUseCaseImpl) Info(_ context.Context) *ContactInfo {
	return &ContactInfo{
		Phone: "0111717542",
		Email: "info@delacream.co.ke",
		Address: Address{
			Street:  "De La Cream Business Park",
			City:    "Busia",
			Country: "Kenya",
		},
		Departments: map[string]Department{
			"leasing":    {Email: "leasing@delacream.co.ke", Phone: "0111717542 Ext. 1"},
			"restaurant": {Email: "restaurant@delacream.co.ke", Phone: "0111717542 Ext. 2"},
			"hotel":      {Email: "hotel@delacream.co.ke", Phone: "0111717542 Ext. 3"},
		},
		SocialMedia: map[string]string{
			"facebook":  "https://facebook.com/delacream",
			"instagram": "https://instagram.com/delacream",
			"twitter":   "https://twitter.com/delacream",
			"linkedin":  "https://linkedin.com/company/delacream",
		},
		BusinessHours: map[string]string{
			"reception":    "24/7",
			"restaurant":   "6:00 AM - 11:00 PM",
			"businessPark": "24/7 Access for Tenants",
		},
	}
}
