package calendar

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
)

const productID = "-//ITESA DYPCOE//Events//EN"

// Feed формирует iCalendar с мероприятиями клуба
type Feed struct {
	Name     string
	Duration time.Duration
}

// Build собирает календарь. Мероприятия без даты пропускаются
func (f Feed) Build(events []*entity.Event, now time.Time) *ical.Calendar {
	duration := f.Duration
	if duration <= 0 {
		duration = entity.DefaultEventDuration
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	if f.Name != "" {
		cal.Props.SetText("X-WR-CALNAME", f.Name)
	}

	for _, e := range events {
		if e.EventDate.IsZero() {
			continue
		}

		ev := ical.NewEvent()
		ev.Props.SetText(ical.PropUID, e.ID+"@itesa")
		ev.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeStart, e.EventDate.UTC())
		ev.Props.SetDateTime(ical.PropDateTimeEnd, e.EventDate.Add(duration).UTC())
		ev.Props.SetText(ical.PropSummary, e.Title)
		if e.Description != "" {
			ev.Props.SetText(ical.PropDescription, e.Description)
		}
		if e.ImageURL != nil && *e.ImageURL != "" {
			ev.Props.SetText(ical.PropURL, *e.ImageURL)
		}

		cal.Children = append(cal.Children, ev.Component)
	}

	// Пустой VCALENDAR не кодируется, поэтому календарь без мероприятий получает зону UTC
	if len(cal.Children) == 0 {
		cal.Children = append(cal.Children, utcTimezone())
	}

	return cal
}

func utcTimezone() *ical.Component {
	standard := ical.NewComponent(ical.CompTimezoneStandard)
	standard.Props.Set(rawProp(ical.PropDateTimeStart, "19700101T000000"))
	standard.Props.Set(rawProp(ical.PropTimezoneOffsetFrom, "+0000"))
	standard.Props.Set(rawProp(ical.PropTimezoneOffsetTo, "+0000"))

	tz := ical.NewComponent(ical.CompTimezone)
	tz.Props.SetText(ical.PropTimezoneID, "UTC")
	tz.Children = append(tz.Children, standard)
	return tz
}

func rawProp(name, value string) *ical.Prop {
	prop := ical.NewProp(name)
	prop.Value = value
	return prop
}

// Write кодирует календарь в w
func (f Feed) Write(w io.Writer, events []*entity.Event, now time.Time) error {
	if err := ical.NewEncoder(w).Encode(f.Build(events, now)); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}
