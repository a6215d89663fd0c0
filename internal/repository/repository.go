package repository

import (
	"context"
	"time"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	Update(ctx context.Context, event *entity.Event) error
	Delete(ctx context.Context, eventID string) error
	GetByID(ctx context.Context, eventID string) (*entity.Event, error)
	ListByEventDate(ctx context.Context) ([]*entity.Event, error)
	ListByCreatedAt(ctx context.Context) ([]*entity.Event, error)
}

type TeamMemberRepository interface {
	Create(ctx context.Context, member *entity.TeamMember) error
	Update(ctx context.Context, member *entity.TeamMember) error
	Delete(ctx context.Context, memberID string) error
	GetByID(ctx context.Context, memberID string) (*entity.TeamMember, error)
	List(ctx context.Context) ([]*entity.TeamMember, error)
}

type ContactRepository interface {
	Create(ctx context.Context, submission *entity.ContactSubmission) error
	List(ctx context.Context) ([]*entity.ContactSubmission, error)
}

type SubscriberRepository interface {
	Create(ctx context.Context, subscriber *entity.Subscriber) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*entity.Subscriber, error)
}

type NewsletterRepository interface {
	Create(ctx context.Context, newsletter *entity.Newsletter) error
	List(ctx context.Context) ([]*entity.Newsletter, error)
	Delete(ctx context.Context, newsletterID string) error
}

type StatisticsRepository interface {
	GetStatistics(ctx context.Context) (*entity.Statistics, error)
}

type SessionRepository interface {
	Save(ctx context.Context, session *entity.VisitorSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*entity.VisitorSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
