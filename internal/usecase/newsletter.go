package usecase

import (
	"context"
	"log/slog"
	"time"

	"delacream-park/internal/domain/newsletter"
	"delacream-park/internal/pkg/clock"
	"delacream-park/internal/pkg/errs"
)

type SubscriberFilter struct {
	// Status filters by subscription state; "all" disables the filter.
	Status string
}

type SubscriberRepository interface {
	Create(s *newsletter.Subscriber) *newsletter.Subscriber
	FindByEmail(email string) (*newsletter.Subscriber, bool)
	List(f SubscriberFilter, offset, limit int) ([]*newsletter.Subscriber, int)
	Unsubscribe(email string, now time.Time) (*newsletter.Subscriber, error)
	ActiveEmails() []string
}

type SubscriberList struct {
	Items []*newsletter.Subscriber
	PageInfo
}

// BroadcastReport tallies a newsletter send across all active subscribers.
type BroadcastReport struct {
	TotalSubscribers int
	SuccessCount     int
	FailCount        int
}

type NewsletterUseCase interface {
	Subscribe(ctx context.Context, email string) (*newsletter.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	ListSubscribers(ctx context.Context, f SubscriberFilter, page, limit int) (*SubscriberList, error)
	Broadcast(ctx context.Context, subject, content string) (*BroadcastReport, error)
}

type newsletterUseCaseImpl struct {
	repo     SubscriberRepository
	notifier Notifier
	clock    clock.Clock
}

func NewNewsletterUseCase(repo SubscriberRepository, notifier Notifier, clock clock.Clock) NewsletterUseCase {
	return &newsletterUseCaseImpl{
		repo:     repo,
		notifier: notifier,
		clock:    clock,
	}
}

func (u *newsletterUseCaseImpl) Subscribe(ctx context.Context, email string) (*newsletter.Subscriber, error) {
	// Conflict applies to any prior record, unsubscribed included.
	if _, exists := u.repo.FindByEmail(email); exists {
		return nil, errs.ErrAlreadySubscribed
	}

	sub := u.repo.Create(newsletter.NewSubscriber(email, u.clock.Now()))

	// A failed welcome email must not undo the subscription.
	if err := u.notifier.NewsletterWelcome(ctx, email); err != nil {
		slog.Warn("welcome email failed", "email", email, "error", err)
	}

	return sub, nil
}

func (u *newsletterUseCaseImpl) Unsubscribe(_ context.Context, email string) error {
	_, err := u.repo.Unsubscribe(email, u.clock.Now())
	return err
}

func (u *newsletterUseCaseImpl) ListSubscribers(_ context.Context, f SubscriberFilter, page, limit int) (*SubscriberList, error) {
	items, total := u.repo.List(f, Offset(page, limit), limit)
	return &SubscriberList{
		Items:    items,
		PageInfo: NewPageInfo(len(items), total, page, limit),
	}, nil
}

func (u *newsletterUseCaseImpl) Broadcast(ctx context.Context, subject, content string) (*BroadcastReport, error) {
	emails := u.repo.ActiveEmails()
	if len(emails) == 0 {
		return nil, errs.ErrNoActiveSubscribers
	}

	report := &BroadcastReport{TotalSubscribers: len(emails)}
	for _, email := range emails {
		if err := u.notifier.NewsletterIssue(ctx, email, subject, content); err != nil {
			slog.Error("newsletter delivery failed", "email", email, "error", err)
			report.FailCount++
			continue
		}
		report.SuccessCount++
	}

	return report, nil
}
