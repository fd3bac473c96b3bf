package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/agency-dashboard-api/internal/dto"
	"github.com/noah-isme/agency-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/agency-dashboard-api/pkg/errors"
)

type dashboardRepository interface {
	Summary(ctx context.Context, today time.Time, criticalAfterDays int) (*models.DashboardSummary, error)
}

type dashboardRecorder interface {
	RecordDashboardSummary(summary models.DashboardSummary)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CriticalAfterDays int
	Clock             Clock
}

// DashboardService computes the global post summary. Every call hits the store; nothing is cached.
//
// Critical and attention follow the same day arithmetic as Classifier. OnTime deliberately differs from
// the per-post ON_TIME label: it counts posts delivered for today, not every posted item.
type DashboardService struct {
	repo    dashboardRepository
	metrics dashboardRecorder
	logger  *zap.Logger
	cfg     DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService. metrics may be nil.
func NewDashboardService(repo dashboardRepository, metrics dashboardRecorder, logger *zap.Logger, cfg DashboardServiceConfig) *DashboardService {
	if cfg.CriticalAfterDays <= 0 {
		cfg.CriticalAfterDays = DefaultCriticalAfterDays
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: repo, metrics: metrics, logger: logger, cfg: cfg}
}

// Summary returns the critical, attention and delivered-today counts.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	today := s.cfg.Clock.Today()
	summary, err := s.repo.Summary(ctx, today, s.cfg.CriticalAfterDays)
	if err != nil {
		s.logger.Error("dashboard summary failed", zap.Error(err))
		return nil, appErrors.Storage(err, "failed to load dashboard summary")
	}
	if s.metrics != nil {
		s.metrics.RecordDashboardSummary(*summary)
	}
	return &dto.DashboardResponse{
		Critical:  summary.Critical,
		Attention: summary.Attention,
		OnTime:    summary.OnTime,
		Date:      today.Format(dateLayout),
	}, nil
}
