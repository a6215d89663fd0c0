package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/transport/http/dto"
	"github.com/https-dhanesh/itesa-website/internal/usecase"
)

// TeamHandler обрабатывает запросы для команды клуба
type TeamHandler struct {
	teamUseCase *usecase.TeamUseCase
	logger      *zap.Logger
}

// NewTeamHandler создает новый handler для команды
func NewTeamHandler(teamUseCase *usecase.TeamUseCase, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{
		teamUseCase: teamUseCase,
		logger:      logger,
	}
}

// GetHierarchy обрабатывает GET /team
func (h *TeamHandler) GetHierarchy(w http.ResponseWriter, r *http.Request) {
	hierarchy, err := h.teamUseCase.GetHierarchy(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToHierarchyResponse(hierarchy))
}

// ListMembers обрабатывает GET /admin/team
func (h *TeamHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamUseCase.ListMembers(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TeamMemberListResponse{Members: dto.ToAdminTeamMemberDTOs(members)})
}

// GetMember обрабатывает GET /admin/team/{id}
func (h *TeamHandler) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := h.teamUseCase.GetMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TeamMemberResponse{Member: dto.ToAdminTeamMemberDTO(member)})
}

// CreateMember обрабатывает POST /admin/team
func (h *TeamHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req dto.TeamMemberRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	member, err := h.teamUseCase.CreateMember(r.Context(), toTeamMemberInput(req))
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.TeamMemberResponse{Member: dto.ToAdminTeamMemberDTO(member)})
}

// UpdateMember обрабатывает PUT /admin/team/{id}
func (h *TeamHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req dto.TeamMemberRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	member, err := h.teamUseCase.UpdateMember(r.Context(), chi.URLParam(r, "id"), toTeamMemberInput(req))
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.TeamMemberResponse{Member: dto.ToAdminTeamMemberDTO(member)})
}

// DeleteMember обрабатывает DELETE /admin/team/{id}
func (h *TeamHandler) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := h.teamUseCase.DeleteMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTeamMemberInput(req dto.TeamMemberRequest) usecase.TeamMemberInput {
	return usecase.TeamMemberInput{
		Name:        req.Name,
		Position:    req.Position,
		Domain:      req.Domain,
		ImageURL:    req.ImageURL,
		LinkedInURL: req.LinkedInURL,
		Email:       req.Email,
		DiscordURL:  req.DiscordURL,
	}
}
