package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
)

func TestStatisticsUseCase_GetStatistics(t *testing.T) {
	events := newFakeEventRepo(
		seededEvent("past", eventNow.Add(-72*time.Hour)),
		seededEvent("live", eventNow.Add(-30*time.Minute)),
		seededEvent("next", eventNow.Add(24*time.Hour)),
		seededEvent("later", eventNow.Add(48*time.Hour)),
	)
	stats := &fakeStatsRepo{stats: entity.Statistics{TotalEvents: 4, TeamMembers: 9, Subscribers: 3}}

	uc := NewStatisticsUseCase(stats, events, 3*time.Hour)
	uc.now = fixedClock(eventNow)

	result, err := uc.GetStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, result.TotalEvents)
	assert.Equal(t, 2, result.UpcomingEvents)
	assert.Equal(t, 1, result.OngoingEvents)
	assert.Equal(t, 1, result.PastEvents)
	assert.Equal(t, 9, result.TeamMembers)
	assert.Equal(t, 3, result.Subscribers)
}
