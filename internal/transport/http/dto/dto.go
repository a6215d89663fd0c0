package dto

import (
	"time"

	"github.com/https-dhanesh/itesa-website/internal/content"
	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит детали ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EventDTO представляет мероприятие
type EventDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html"`
	EventDate       time.Time `json:"event_date"`
	Status          string    `json:"status"`
	StoredStatus    string    `json:"stored_status,omitempty"`
	ImageURL        *string   `json:"image_url"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EventCounts количество мероприятий по статусам
type EventCounts struct {
	Upcoming int `json:"upcoming"`
	Ongoing  int `json:"ongoing"`
	Past     int `json:"past"`
}

// EventsResponse ответ со списком мероприятий по статусам
type EventsResponse struct {
	Upcoming []EventDTO  `json:"upcoming"`
	Ongoing  []EventDTO  `json:"ongoing"`
	Past     []EventDTO  `json:"past"`
	Counts   EventCounts `json:"counts"`
}

// EventRequest запрос на создание или изменение мероприятия
type EventRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
	EventDate   string `json:"event_date" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=upcoming ongoing past"`
	ImageURL    string `json:"image_url" validate:"max=2048"`
}

// EventResponse ответ с одним мероприятием
type EventResponse struct {
	Event EventDTO `json:"event"`
}

// EventListResponse список мероприятий для админ-панели
type EventListResponse struct {
	Events []EventDTO `json:"events"`
}

// TeamMemberDTO представляет участника команды
type TeamMemberDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Domain      string    `json:"domain"`
	ImageURL    *string   `json:"image_url"`
	LinkedInURL *string   `json:"linkedin_url"`
	Email       *string   `json:"email"`
	DiscordURL  *string   `json:"discord_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdminTeamMemberDTO участник команды в админ-панели, направление отдаётся как есть
type AdminTeamMemberDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Domain      *string   `json:"domain"`
	ImageURL    *string   `json:"image_url"`
	LinkedInURL *string   `json:"linkedin_url"`
	Email       *string   `json:"email"`
	DiscordURL  *string   `json:"discord_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DomainTeamDTO руководители и координаторы направления
type DomainTeamDTO struct {
	Domain       string          `json:"domain"`
	Leads        []TeamMemberDTO `json:"leads"`
	Coordinators []TeamMemberDTO `json:"coordinators"`
}

// HierarchyResponse структура команды для публичной страницы
type HierarchyResponse struct {
	Dignitaries    []TeamMemberDTO `json:"dignitaries"`
	President      *TeamMemberDTO  `json:"president"`
	VicePresidents []TeamMemberDTO `json:"vice_presidents"`
	DomainTeams    []DomainTeamDTO `json:"domain_teams"`
	Empty          bool            `json:"empty"`
}

// TeamMemberRequest запрос на создание или изменение участника
type TeamMemberRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Position    string `json:"position" validate:"required"`
	Domain      string `json:"domain" validate:"max=100"`
	ImageURL    string `json:"image_url" validate:"max=2048"`
	LinkedInURL string `json:"linkedin_url" validate:"omitempty,url"`
	Email       string `json:"email" validate:"omitempty,email"`
	DiscordURL  string `json:"discord_url" validate:"omitempty,url"`
}

// TeamMemberResponse ответ с одним участником
type TeamMemberResponse struct {
	Member AdminTeamMemberDTO `json:"member"`
}

// TeamMemberListResponse список участников
type TeamMemberListResponse struct {
	Members []AdminTeamMemberDTO `json:"members"`
}

// ContactRequest запрос формы обратной связи
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactSubmissionListResponse список сообщений обратной связи
type ContactSubmissionListResponse struct {
	Submissions []*entity.ContactSubmission `json:"submissions"`
}

// SubscribeRequest запрос на подписку
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SubscriberResponse ответ на подписку
type SubscriberResponse struct {
	Subscriber *entity.Subscriber `json:"subscriber"`
}

// SubscriberListResponse список подписчиков
type SubscriberListResponse struct {
	Subscribers []*entity.Subscriber `json:"subscribers"`
}

// NewsletterRequest запрос на рассылку, message в формате markdown
type NewsletterRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

// NewsletterDTO выпуск рассылки
type NewsletterDTO struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	BodyHTML   string    `json:"body_html"`
	Recipients int       `json:"recipients"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewsletterResponse ответ на рассылку
type NewsletterResponse struct {
	Newsletter NewsletterDTO `json:"newsletter"`
}

// NewsletterListResponse список выпусков
type NewsletterListResponse struct {
	Newsletters []NewsletterDTO `json:"newsletters"`
}

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse выданный токен
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionResponse сессия посетителя
type SessionResponse struct {
	Session *entity.VisitorSession `json:"session"`
}

// ToEventDTO конвертирует мероприятие с вычисленным статусом в DTO
func ToEventDTO(ce entity.ClassifiedEvent) EventDTO {
	e := ce.Event
	html, err := content.RenderMarkdown(e.Description)
	if err != nil {
		html = ""
	}
	return EventDTO{
		ID:              e.ID,
		Title:           e.Title,
		Description:     e.Description,
		DescriptionHTML: html,
		EventDate:       e.EventDate,
		Status:          string(ce.Status),
		ImageURL:        e.ImageURL,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

// ToAdminEventDTO дополняет DTO сохранённым статусом
func ToAdminEventDTO(ce entity.ClassifiedEvent) EventDTO {
	d := ToEventDTO(ce)
	d.StoredStatus = string(ce.Event.StoredStatus)
	return d
}

// ToEventDTOs конвертирует список мероприятий
func ToEventDTOs(events []entity.ClassifiedEvent) []EventDTO {
	result := make([]EventDTO, 0, len(events))
	for _, ce := range events {
		result = append(result, ToEventDTO(ce))
	}
	return result
}

// ToEventsResponse собирает ответ публичной страницы мероприятий
func ToEventsResponse(b entity.EventBuckets) EventsResponse {
	return EventsResponse{
		Upcoming: ToEventDTOs(b.Upcoming),
		Ongoing:  ToEventDTOs(b.Ongoing),
		Past:     ToEventDTOs(b.Past),
		Counts: EventCounts{
			Upcoming: len(b.Upcoming),
			Ongoing:  len(b.Ongoing),
			Past:     len(b.Past),
		},
	}
}

// ToTeamMemberDTO конвертирует участника в DTO
func ToTeamMemberDTO(m *entity.TeamMember) TeamMemberDTO {
	return TeamMemberDTO{
		ID:          m.ID,
		Name:        m.Name,
		Position:    string(m.Position),
		Domain:      m.DomainName(),
		ImageURL:    m.ImageURL,
		LinkedInURL: m.LinkedInURL,
		Email:       m.Email,
		DiscordURL:  m.DiscordURL,
		CreatedAt:   m.CreatedAt,
	}
}

// ToTeamMemberDTOs конвертирует список участников
func ToTeamMemberDTOs(members []*entity.TeamMember) []TeamMemberDTO {
	result := make([]TeamMemberDTO, 0, len(members))
	for _, m := range members {
		result = append(result, ToTeamMemberDTO(m))
	}
	return result
}

// ToAdminTeamMemberDTO конвертирует участника для админ-панели
func ToAdminTeamMemberDTO(m *entity.TeamMember) AdminTeamMemberDTO {
	return AdminTeamMemberDTO{
		ID:          m.ID,
		Name:        m.Name,
		Position:    string(m.Position),
		Domain:      m.Domain,
		ImageURL:    m.ImageURL,
		LinkedInURL: m.LinkedInURL,
		Email:       m.Email,
		DiscordURL:  m.DiscordURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToAdminTeamMemberDTOs конвертирует список участников для админ-панели
func ToAdminTeamMemberDTOs(members []*entity.TeamMember) []AdminTeamMemberDTO {
	result := make([]AdminTeamMemberDTO, 0, len(members))
	for _, m := range members {
		result = append(result, ToAdminTeamMemberDTO(m))
	}
	return result
}

// ToHierarchyResponse конвертирует иерархию команды
func ToHierarchyResponse(h *entity.Hierarchy) HierarchyResponse {
	resp := HierarchyResponse{
		Dignitaries:    ToTeamMemberDTOs(h.Dignitaries),
		VicePresidents: ToTeamMemberDTOs(h.VicePresidents),
		DomainTeams:    make([]DomainTeamDTO, 0, len(h.DomainTeams)),
		Empty:          h.IsEmpty(),
	}

	if h.President != nil {
		president := ToTeamMemberDTO(h.President)
		resp.President = &president
	}

	for _, team := range h.DomainTeams {
		resp.DomainTeams = append(resp.DomainTeams, DomainTeamDTO{
			Domain:       team.Domain,
			Leads:        ToTeamMemberDTOs(team.Leads),
			Coordinators: ToTeamMemberDTOs(team.Coordinators),
		})
	}

	return resp
}

// ToNewsletterDTO конвертирует выпуск рассылки в DTO
func ToNewsletterDTO(n *entity.Newsletter) NewsletterDTO {
	return NewsletterDTO{
		ID:         n.ID,
		Subject:    n.Subject,
		Body:       n.Body,
		BodyHTML:   n.BodyHTML,
		Recipients: n.Recipients,
		CreatedAt:  n.CreatedAt,
	}
}

// ToNewsletterDTOs конвертирует список выпусков
func ToNewsletterDTOs(newsletters []*entity.Newsletter) []NewsletterDTO {
	result := make([]NewsletterDTO, 0, len(newsletters))
	for _, n := range newsletters {
		result = append(result, ToNewsletterDTO(n))
	}
	return result
}
