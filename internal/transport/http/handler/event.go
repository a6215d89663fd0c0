package handler

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/calendar"
	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	"github.com/https-dhanesh/itesa-website/internal/transport/http/dto"
	"github.com/https-dhanesh/itesa-website/internal/usecase"
)

// EventHandler обрабатывает запросы для мероприятий
type EventHandler struct {
	eventUseCase *usecase.EventUseCase
	feed         calendar.Feed
	logger       *zap.Logger
}

// NewEventHandler создает новый handler для мероприятий
func NewEventHandler(eventUseCase *usecase.EventUseCase, feed calendar.Feed, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventUseCase: eventUseCase,
		feed:         feed,
		logger:       logger,
	}
}

// ListEvents обрабатывает GET /events
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.eventUseCase.GetEventBuckets(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToEventsResponse(buckets))
}

// Calendar обрабатывает GET /events/calendar.ics
func (h *EventHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventUseCase.ListEvents(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	var buf bytes.Buffer
	if err := h.feed.Write(&buf, events, h.eventUseCase.Now()); err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="itesa-events.ics"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write calendar", zap.Error(err))
	}
}

// AdminListEvents обрабатывает GET /admin/events
func (h *EventHandler) AdminListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventUseCase.ListForAdmin(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	result := make([]dto.EventDTO, 0, len(events))
	for _, ce := range events {
		result = append(result, dto.ToAdminEventDTO(ce))
	}

	respondJSON(w, http.StatusOK, dto.EventListResponse{Events: result})
}

// AdminGetEvent обрабатывает GET /admin/events/{id}
func (h *EventHandler) AdminGetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventUseCase.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.EventResponse{Event: dto.ToAdminEventDTO(*event)})
}

// CreateEvent обрабатывает POST /admin/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.EventRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	event, err := h.eventUseCase.CreateEvent(r.Context(), toEventInput(req))
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.EventResponse{Event: h.classified(event)})
}

// UpdateEvent обрабатывает PUT /admin/events/{id}
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.EventRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	event, err := h.eventUseCase.UpdateEvent(r.Context(), chi.URLParam(r, "id"), toEventInput(req))
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.EventResponse{Event: h.classified(event)})
}

// DeleteEvent обрабатывает DELETE /admin/events/{id}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.eventUseCase.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandler) classified(event *entity.Event) dto.EventDTO {
	return dto.ToAdminEventDTO(entity.ClassifiedEvent{
		Event:  event,
		Status: event.Status(h.eventUseCase.Now(), h.eventUseCase.Duration()),
	})
}

func toEventInput(req dto.EventRequest) usecase.EventInput {
	return usecase.EventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Status:      req.Status,
		ImageURL:    req.ImageURL,
	}
}
