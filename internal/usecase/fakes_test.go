package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
)

var errStore = errors.New("store unavailable")

type fakeEventRepo struct {
	events map[string]*entity.Event
	err    error
}

func newFakeEventRepo(events ...*entity.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: make(map[string]*entity.Event)}
	for _, e := range events {
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeEventRepo) Create(_ context.Context, event *entity.Event) error {
	if r.err != nil {
		return r.err
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *entity.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, eventID string) error {
	if _, ok := r.events[eventID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.events, eventID)
	return nil
}

func (r *fakeEventRepo) GetByID(_ context.Context, eventID string) (*entity.Event, error) {
	e, ok := r.events[eventID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEventRepo) ListByEventDate(_ context.Context) ([]*entity.Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	events := r.all()
	sort.Slice(events, func(i, j int) bool { return events[i].EventDate.After(events[j].EventDate) })
	return events, nil
}

func (r *fakeEventRepo) ListByCreatedAt(_ context.Context) ([]*entity.Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	events := r.all()
	sort.Slice(events, func(i, j int) bool { return events[i].CreatedAt.After(events[j].CreatedAt) })
	return events, nil
}

func (r *fakeEventRepo) all() []*entity.Event {
	events := make([]*entity.Event, 0, len(r.events))
	for _, e := range r.events {
		events = append(events, e)
	}
	return events
}

type fakeTeamRepo struct {
	members []*entity.TeamMember
}

func (r *fakeTeamRepo) Create(_ context.Context, member *entity.TeamMember) error {
	r.members = append(r.members, member)
	return nil
}

func (r *fakeTeamRepo) Update(_ context.Context, member *entity.TeamMember) error {
	for i, m := range r.members {
		if m.ID == member.ID {
			r.members[i] = member
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (r *fakeTeamRepo) Delete(_ context.Context, memberID string) error {
	for i, m := range r.members {
		if m.ID == memberID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

func (r *fakeTeamRepo) GetByID(_ context.Context, memberID string) (*entity.TeamMember, error) {
	for _, m := range r.members {
		if m.ID == memberID {
			return m, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *fakeTeamRepo) List(_ context.Context) ([]*entity.TeamMember, error) {
	return append([]*entity.TeamMember(nil), r.members...), nil
}

type fakeContactRepo struct {
	submissions []*entity.ContactSubmission
	err         error
}

func (r *fakeContactRepo) Create(_ context.Context, s *entity.ContactSubmission) error {
	if r.err != nil {
		return r.err
	}
	r.submissions = append(r.submissions, s)
	return nil
}

func (r *fakeContactRepo) List(_ context.Context) ([]*entity.ContactSubmission, error) {
	return r.submissions, nil
}

type fakeSubscriberRepo struct {
	subscribers []*entity.Subscriber
}

func (r *fakeSubscriberRepo) Create(_ context.Context, s *entity.Subscriber) error {
	for _, existing := range r.subscribers {
		if strings.EqualFold(existing.Email, s.Email) {
			return domainErrors.ErrAlreadySubscribed
		}
	}
	r.subscribers = append(r.subscribers, s)
	return nil
}

func (r *fakeSubscriberRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, existing := range r.subscribers {
		if strings.EqualFold(existing.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSubscriberRepo) List(_ context.Context) ([]*entity.Subscriber, error) {
	return r.subscribers, nil
}

type fakeNewsletterRepo struct {
	newsletters []*entity.Newsletter
}

func (r *fakeNewsletterRepo) Create(_ context.Context, n *entity.Newsletter) error {
	r.newsletters = append(r.newsletters, n)
	return nil
}

func (r *fakeNewsletterRepo) List(_ context.Context) ([]*entity.Newsletter, error) {
	return r.newsletters, nil
}

func (r *fakeNewsletterRepo) Delete(_ context.Context, newsletterID string) error {
	for i, n := range r.newsletters {
		if n.ID == newsletterID {
			r.newsletters = append(r.newsletters[:i], r.newsletters[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

type fakeStatsRepo struct {
	stats entity.Statistics
}

func (r *fakeStatsRepo) GetStatistics(_ context.Context) (*entity.Statistics, error) {
	stats := r.stats
	return &stats, nil
}

type fakeSessionRepo struct {
	sessions map[string]entity.VisitorSession
	ttls     map[string]time.Duration
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[string]entity.VisitorSession),
		ttls:     make(map[string]time.Duration),
	}
}

func (r *fakeSessionRepo) Save(_ context.Context, s *entity.VisitorSession, ttl time.Duration) error {
	r.sessions[s.ID] = *s
	r.ttls[s.ID] = ttl
	return nil
}

func (r *fakeSessionRepo) Get(_ context.Context, sessionID string) (*entity.VisitorSession, error) {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &s, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, sessionID string) error {
	if _, ok := r.sessions[sessionID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.sessions, sessionID)
	return nil
}

// fakeTxManager откатывает изменения фейковых репозиториев рассылки при ошибке
type fakeTxManager struct {
	newsletters *fakeNewsletterRepo
	calls       int
	commitErr   error
}

func (m *fakeTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	var snapshot []*entity.Newsletter
	if m.newsletters != nil {
		snapshot = append(snapshot, m.newsletters.newsletters...)
	}
	err := fn(ctx)
	if err == nil {
		err = m.commitErr
	}
	if err != nil {
		if m.newsletters != nil {
			m.newsletters.newsletters = snapshot
		}
		return err
	}
	return nil
}

type publishedNotification struct {
	Type    string
	Payload any
}

type fakeNotifier struct {
	mu        sync.Mutex
	published []publishedNotification
	err       error
}

func (n *fakeNotifier) Publish(_ context.Context, notificationType string, payload any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.published = append(n.published, publishedNotification{Type: notificationType, Payload: payload})
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func strPtr(s string) *string {
	return &s
}
