package http

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
)

type memEvents struct {
	mu     sync.Mutex
	events []*entity.Event
}

func (r *memEvents) Create(_ context.Context, e *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *memEvents) Update(_ context.Context, e *entity.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.events {
		if existing.ID == e.ID {
			r.events[i] = e
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (r *memEvents) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.events {
		if existing.ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (r *memEvents) GetByID(_ context.Context, id string) (*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.events {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *memEvents) ListByEventDate(_ context.Context) ([]*entity.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.Event(nil), r.events...), nil
}

func (r *memEvents) ListByCreatedAt(ctx context.Context) ([]*entity.Event, error) {
	return r.ListByEventDate(ctx)
}

type memTeam struct {
	members []*entity.TeamMember
}

func (r *memTeam) Create(_ context.Context, m *entity.TeamMember) error {
	r.members = append(r.members, m)
	return nil
}

func (r *memTeam) Update(_ context.Context, m *entity.TeamMember) error {
	for i, existing := range r.members {
		if existing.ID == m.ID {
			r.members[i] = m
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (r *memTeam) Delete(_ context.Context, id string) error {
	for i, existing := range r.members {
		if existing.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (r *memTeam) GetByID(_ context.Context, id string) (*entity.TeamMember, error) {
	for _, existing := range r.members {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *memTeam) List(_ context.Context) ([]*entity.TeamMember, error) {
	return append([]*entity.TeamMember(nil), r.members...), nil
}

type memContacts struct {
	submissions []*entity.ContactSubmission
}

func (r *memContacts) Create(_ context.Context, s *entity.ContactSubmission) error {
	r.submissions = append(r.submissions, s)
	return nil
}

func (r *memContacts) List(_ context.Context) ([]*entity.ContactSubmission, error) {
	return r.submissions, nil
}

type memSubscribers struct {
	subscribers []*entity.Subscriber
}

func (r *memSubscribers) Create(_ context.Context, s *entity.Subscriber) error {
	r.subscribers = append(r.subscribers, s)
	return nil
}

func (r *memSubscribers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, s := range r.subscribers {
		if strings.EqualFold(s.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memSubscribers) List(_ context.Context) ([]*entity.Subscriber, error) {
	return r.subscribers, nil
}

type memNewsletters struct {
	newsletters []*entity.Newsletter
}

func (r *memNewsletters) Create(_ context.Context, n *entity.Newsletter) error {
	r.newsletters = append(r.newsletters, n)
	return nil
}

func (r *memNewsletters) List(_ context.Context) ([]*entity.Newsletter, error) {
	return r.newsletters, nil
}

func (r *memNewsletters) Delete(_ context.Context, id string) error {
	for i, n := range r.newsletters {
		if n.ID == id {
			r.newsletters = append(r.newsletters[:i], r.newsletters[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

type memStats struct {
	events *memEvents
}

func (r *memStats) GetStatistics(_ context.Context) (*entity.Statistics, error) {
	return &entity.Statistics{TotalEvents: len(r.events.events)}, nil
}

type memSessions struct {
	sessions map[string]entity.VisitorSession
}

func (r *memSessions) Save(_ context.Context, s *entity.VisitorSession, _ time.Duration) error {
	r.sessions[s.ID] = *s
	return nil
}

func (r *memSessions) Get(_ context.Context, id string) (*entity.VisitorSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &s, nil
}

func (r *memSessions) Delete(_ context.Context, id string) error {
	if _, ok := r.sessions[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingNotifier struct {
	types []string
}

func (n *recordingNotifier) Publish(_ context.Context, notificationType string, _ any) error {
	n.types = append(n.types, notificationType)
	return nil
}
