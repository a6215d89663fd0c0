package entity

import (
	"sort"
	"strings"
	"time"
)

// EventStatus статус мероприятия относительно текущего времени
type EventStatus string

const (
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusOngoing  EventStatus = "ongoing"
	EventStatusPast     EventStatus = "past"
)

// DefaultEventDuration длительность мероприятия по умолчанию
const DefaultEventDuration = 3 * time.Hour

// eventDateLayouts допустимые форматы даты мероприятия
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// IsValid проверяет, что статус входит в допустимый набор
func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusUpcoming, EventStatusOngoing, EventStatusPast:
		return true
	default:
		return false
	}
}

type Event struct {
	ID           string
	Title        string
	Description  string
	EventDate    time.Time
	StoredStatus EventStatus
	ImageURL     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Status вычисляет статус мероприятия на момент now
func (e *Event) Status(now time.Time, duration time.Duration) EventStatus {
	return ClassifyEvent(e.EventDate, now, duration)
}

// ClassifyEvent определяет статус мероприятия по времени начала.
// Нулевое время начала считается неизвестным и даёт upcoming.
func ClassifyEvent(start, now time.Time, duration time.Duration) EventStatus {
	if start.IsZero() {
		return EventStatusUpcoming
	}
	if duration <= 0 {
		duration = DefaultEventDuration
	}

	end := start.Add(duration)
	switch {
	case now.After(end):
		return EventStatusPast
	case !now.Before(start):
		return EventStatusOngoing
	default:
		return EventStatusUpcoming
	}
}

// ParseEventDate разбирает дату мероприятия из формы.
// Строка без зоны трактуется в loc.
func ParseEventDate(raw string, loc *time.Location) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ClassifiedEvent мероприятие с вычисленным статусом
type ClassifiedEvent struct {
	Event  *Event
	Status EventStatus
}

// EventBuckets мероприятия, разложенные по статусам
type EventBuckets struct {
	Upcoming []ClassifiedEvent
	Ongoing  []ClassifiedEvent
	Past     []ClassifiedEvent
}

// GroupEvents раскладывает мероприятия по статусам.
// Предстоящие сортируются по возрастанию даты, остальные сохраняют входной порядок.
func GroupEvents(events []*Event, now time.Time, duration time.Duration) EventBuckets {
	buckets := EventBuckets{
		Upcoming: []ClassifiedEvent{},
		Ongoing:  []ClassifiedEvent{},
		Past:     []ClassifiedEvent{},
	}

	for _, e := range events {
		ce := ClassifiedEvent{Event: e, Status: e.Status(now, duration)}
		switch ce.Status {
		case EventStatusPast:
			buckets.Past = append(buckets.Past, ce)
		case EventStatusOngoing:
			buckets.Ongoing = append(buckets.Ongoing, ce)
		default:
			buckets.Upcoming = append(buckets.Upcoming, ce)
		}
	}

	sort.SliceStable(buckets.Upcoming, func(i, j int) bool {
		return buckets.Upcoming[i].Event.EventDate.Before(buckets.Upcoming[j].Event.EventDate)
	})

	return buckets
}
