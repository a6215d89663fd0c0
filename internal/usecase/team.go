package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/domain/entity"
	domainErrors "github.com/https-dhanesh/itesa-website/internal/domain/errors"
	"github.com/https-dhanesh/itesa-website/internal/metrics"
	"github.com/https-dhanesh/itesa-website/internal/repository"
)

// TeamMemberInput данные формы участника команды
type TeamMemberInput struct {
	Name        string
	Position    string
	Domain      string
	ImageURL    string
	LinkedInURL string
	Email       string
	DiscordURL  string
}

// TeamUseCase реализует бизнес-логику для команды клуба
type TeamUseCase struct {
	memberRepo repository.TeamMemberRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewTeamUseCase создает новый usecase для команды
func NewTeamUseCase(
	memberRepo repository.TeamMemberRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *TeamUseCase {
	return &TeamUseCase{
		memberRepo: memberRepo,
		metrics:    m,
		logger:     logger,
		now:        time.Now,
	}
}

// GetHierarchy строит иерархию команды для публичной страницы
func (uc *TeamUseCase) GetHierarchy(ctx context.Context) (*entity.Hierarchy, error) {
	members, err := uc.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}

	h := entity.BuildHierarchy(members)

	if len(h.ExtraPresidents) > 0 {
		uc.logger.Warn("more than one president in team data",
			zap.String("shown", h.President.ID),
			zap.Strings("ignored", memberIDs(h.ExtraPresidents)),
		)
		uc.metrics.HierarchyIssues("extra_president", len(h.ExtraPresidents))
	}

	if len(h.Unrecognized) > 0 {
		uc.logger.Warn("team members with unknown position",
			zap.Strings("ignored", memberIDs(h.Unrecognized)),
		)
		uc.metrics.HierarchyIssues("unknown_position", len(h.Unrecognized))
	}

	return h, nil
}

// ListMembers возвращает всех участников в порядке добавления
func (uc *TeamUseCase) ListMembers(ctx context.Context) ([]*entity.TeamMember, error) {
	members, err := uc.memberRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	return members, nil
}

// GetMember возвращает участника по ID
func (uc *TeamUseCase) GetMember(ctx context.Context, memberID string) (*entity.TeamMember, error) {
	member, err := uc.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, notFoundOr(err, "team member not found")
	}
	return member, nil
}

// CreateMember добавляет участника команды
func (uc *TeamUseCase) CreateMember(ctx context.Context, input TeamMemberInput) (*entity.TeamMember, error) {
	member, err := buildTeamMember(input)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	member.ID = uuid.New().String()
	member.CreatedAt = now
	member.UpdatedAt = now

	if err := uc.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create team member: %w", err)
	}

	uc.logger.Info("team member created",
		zap.String("member_id", member.ID),
		zap.String("position", string(member.Position)),
	)

	return member, nil
}

// UpdateMember обновляет участника команды
func (uc *TeamUseCase) UpdateMember(ctx context.Context, memberID string, input TeamMemberInput) (*entity.TeamMember, error) {
	existing, err := uc.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, notFoundOr(err, "team member not found")
	}

	member, err := buildTeamMember(input)
	if err != nil {
		return nil, err
	}

	member.ID = existing.ID
	member.CreatedAt = existing.CreatedAt
	member.UpdatedAt = uc.now()

	if err := uc.memberRepo.Update(ctx, member); err != nil {
		return nil, notFoundOr(err, "team member not found")
	}

	uc.logger.Info("team member updated", zap.String("member_id", member.ID))

	return member, nil
}

// DeleteMember удаляет участника команды
func (uc *TeamUseCase) DeleteMember(ctx context.Context, memberID string) error {
	if err := uc.memberRepo.Delete(ctx, memberID); err != nil {
		return notFoundOr(err, "team member not found")
	}

	uc.logger.Info("team member deleted", zap.String("member_id", memberID))
	return nil
}

func buildTeamMember(input TeamMemberInput) (*entity.TeamMember, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainErrors.InvalidInput("name is required")
	}

	position := entity.Position(strings.TrimSpace(input.Position))
	if !position.IsValid() {
		return nil, domainErrors.InvalidInput(fmt.Sprintf("unknown position %q", input.Position))
	}

	return &entity.TeamMember{
		Name:        name,
		Position:    position,
		Domain:      optionalString(input.Domain),
		ImageURL:    optionalString(input.ImageURL),
		LinkedInURL: optionalString(input.LinkedInURL),
		Email:       optionalString(input.Email),
		DiscordURL:  optionalString(input.DiscordURL),
	}, nil
}

func memberIDs(members []*entity.TeamMember) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.ID)
	}
	return ids
}
