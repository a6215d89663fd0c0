package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/transport/http/dto"
	"github.com/https-dhanesh/itesa-website/internal/usecase"
)

// NewsletterHandler обрабатывает запросы подписки и рассылки
type NewsletterHandler struct {
	newsletterUseCase *usecase.NewsletterUseCase
	logger            *zap.Logger
}

// NewNewsletterHandler создает новый handler для рассылки
func NewNewsletterHandler(newsletterUseCase *usecase.NewsletterUseCase, logger *zap.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterUseCase: newsletterUseCase,
		logger:            logger,
	}
}

// Subscribe обрабатывает POST /subscribers
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req dto.SubscribeRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	subscriber, err := h.newsletterUseCase.Subscribe(r.Context(), req.Email)
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.SubscriberResponse{Subscriber: subscriber})
}

// ListSubscribers обрабатывает GET /admin/subscribers
func (h *NewsletterHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	subscribers, err := h.newsletterUseCase.ListSubscribers(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.SubscriberListResponse{Subscribers: subscribers})
}

// SendNewsletter обрабатывает POST /admin/newsletter
func (h *NewsletterHandler) SendNewsletter(w http.ResponseWriter, r *http.Request) {
	var req dto.NewsletterRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	newsletter, err := h.newsletterUseCase.SendNewsletter(r.Context(), req.Subject, req.Message)
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusAccepted, dto.NewsletterResponse{Newsletter: dto.ToNewsletterDTO(newsletter)})
}

// ListNewsletters обрабатывает GET /admin/newsletters
func (h *NewsletterHandler) ListNewsletters(w http.ResponseWriter, r *http.Request) {
	newsletters, err := h.newsletterUseCase.ListNewsletters(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewsletterListResponse{Newsletters: dto.ToNewsletterDTOs(newsletters)})
}
