package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/https-dhanesh/itesa-website/internal/usecase"
)

// StatisticsHandler обрабатывает запросы для статистики
type StatisticsHandler struct {
	statsUseCase *usecase.StatisticsUseCase
	logger       *zap.Logger
}

// NewStatisticsHandler создает новый handler для статистики
func NewStatisticsHandler(statsUseCase *usecase.StatisticsUseCase, logger *zap.Logger) *StatisticsHandler {
	return &StatisticsHandler{
		statsUseCase: statsUseCase,
		logger:       logger,
	}
}

// GetDashboard обрабатывает GET /admin/dashboard
func (h *StatisticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUseCase.GetStatistics(r.Context())
	if err != nil {
		handleUseCaseError(w, r, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
