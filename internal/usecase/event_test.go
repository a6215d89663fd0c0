package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
)

var eventNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestEventUseCase(repo *fakeEventRepo) *EventUseCase {
	uc := NewEventUseCase(repo, 3*time.Hour, time.UTC, zap.NewNop())
	uc.now = fixedClock(eventNow)
	return uc
}

func seededEvent(id string, start time.Time) *entity.Event {
	return &entity.Event{
		ID:           id,
		Title:        id,
		Description:  "desc",
		EventDate:    start,
		StoredStatus: entity.EventStatusUpcoming,
		CreatedAt:    start.Add(-24 * time.Hour),
		UpdatedAt:    start.Add(-24 * time.Hour),
	}
}

func TestEventUseCase_GetEventBuckets(t *testing.T) {
	repo := newFakeEventRepo(
		seededEvent("past", eventNow.Add(-48*time.Hour)),
		seededEvent("live", eventNow.Add(-time.Hour)),
		seededEvent("later", eventNow.Add(72*time.Hour)),
		seededEvent("soon", eventNow.Add(2*time.Hour)),
	)
	uc := newTestEventUseCase(repo)

	buckets, err := uc.GetEventBuckets(context.Background())
	require.NoError(t, err)

	require.Len(t, buckets.Upcoming, 2)
	assert.Equal(t, "soon", buckets.Upcoming[0].Event.ID)
	assert.Equal(t, "later", buckets.Upcoming[1].Event.ID)
	require.Len(t, buckets.Ongoing, 1)
	assert.Equal(t, "live", buckets.Ongoing[0].Event.ID)
	require.Len(t, buckets.Past, 1)
	assert.Equal(t, entity.EventStatusPast, buckets.Past[0].Status)
}

func TestEventUseCase_GetEventBuckets_StoreError(t *testing.T) {
	repo := newFakeEventRepo()
	repo.err = errStore
	uc := newTestEventUseCase(repo)

	_, err := uc.GetEventBuckets(context.Background())
	require.ErrorIs(t, err, errStore)
}

func TestEventUseCase_ListForAdmin_DerivesStatus(t *testing.T) {
	stale := seededEvent("stale", eventNow.Add(-72*time.Hour))
	stale.StoredStatus = entity.EventStatusUpcoming
	uc := newTestEventUseCase(newFakeEventRepo(stale))

	events, err := uc.ListForAdmin(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, entity.EventStatusPast, events[0].Status)
	assert.Equal(t, entity.EventStatusUpcoming, events[0].Event.StoredStatus)
}

func TestEventUseCase_CreateEvent(t *testing.T) {
	repo := newFakeEventRepo()
	uc := newTestEventUseCase(repo)

	event, err := uc.CreateEvent(context.Background(), EventInput{
		Title:       "  Hackathon ",
		Description: "24h build sprint",
		EventDate:   "2024-04-01T09:30",
		ImageURL:    "   ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Hackathon", event.Title)
	assert.Equal(t, time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC), event.EventDate)
	assert.Equal(t, entity.EventStatusUpcoming, event.StoredStatus)
	assert.Nil(t, event.ImageURL)
	assert.Equal(t, eventNow, event.CreatedAt)
	assert.Contains(t, repo.events, event.ID)
}

func TestEventUseCase_CreateEvent_UsesConfiguredLocation(t *testing.T) {
	loc := time.FixedZone("IST", 5*60*60+30*60)
	uc := NewEventUseCase(newFakeEventRepo(), 3*time.Hour, loc, zap.NewNop())

	event, err := uc.CreateEvent(context.Background(), EventInput{
		Title:       "Talk",
		Description: "d",
		EventDate:   "2024-04-01T10:00",
	})
	require.NoError(t, err)
	assert.True(t, event.EventDate.Equal(time.Date(2024, 4, 1, 4, 30, 0, 0, time.UTC)))
}

func TestEventUseCase_CreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input EventInput
	}{
		{name: "empty title", input: EventInput{Title: " ", Description: "d", EventDate: "2024-04-01T09:30"}},
		{name: "empty description", input: EventInput{Title: "t", EventDate: "2024-04-01T09:30"}},
		{name: "bad date", input: EventInput{Title: "t", Description: "d", EventDate: "next friday"}},
		{name: "bad status", input: EventInput{Title: "t", Description: "d", EventDate: "2024-04-01T09:30", Status: "cancelled"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestEventUseCase(newFakeEventRepo())

			_, err := uc.CreateEvent(context.Background(), tt.input)
			require.Error(t, err)

			var domainErr *domainErrors.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domainErrors.CodeInvalidInput, domainErr.Code)
		})
	}
}

func TestEventUseCase_UpdateEvent(t *testing.T) {
	original := seededEvent("e1", eventNow.Add(time.Hour))
	original.ImageURL = strPtr("https://img/old.png")
	repo := newFakeEventRepo(original)
	uc := newTestEventUseCase(repo)

	updated, err := uc.UpdateEvent(context.Background(), "e1", EventInput{
		Title:       "Renamed",
		Description: "new",
		EventDate:   "2024-03-10T11:00:00Z",
		Status:      "ongoing",
	})
	require.NoError(t, err)

	assert.Equal(t, "e1", updated.ID)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
	assert.Equal(t, eventNow, updated.UpdatedAt)
	assert.Nil(t, updated.ImageURL)
	assert.Equal(t, entity.EventStatusOngoing, repo.events["e1"].StoredStatus)
}

func TestEventUseCase_NotFound(t *testing.T) {
	uc := newTestEventUseCase(newFakeEventRepo())
	ctx := context.Background()

	_, err := uc.GetEvent(ctx, "missing")
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	_, err = uc.UpdateEvent(ctx, "missing", EventInput{Title: "t", Description: "d", EventDate: "2024-04-01T09:30"})
	assert.ErrorIs(t, err, domainErrors.ErrNotFound)

	err = uc.DeleteEvent(ctx, "missing")
	var domainErr *domainErrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainErrors.CodeNotFound, domainErr.Code)
}

func TestEventUseCase_DeleteEvent(t *testing.T) {
	repo := newFakeEventRepo(seededEvent("e1", eventNow))
	uc := newTestEventUseCase(repo)

	require.NoError(t, uc.DeleteEvent(context.Background(), "e1"))
	assert.Empty(t, repo.events)
}
