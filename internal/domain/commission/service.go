// Package commission triggers payout generation on the remote API and
// keeps the resulting payout list.
package commission

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"quotedesk/backend/internal/domain/dashboard"
	"quotedesk/backend/internal/infra/store"
)

var ErrPeriodRequired = errors.New("billing period is required")

type PayoutSource interface {
	FetchCommissionPayouts(ctx context.Context) ([]dashboard.CommissionPayout, error)
	GeneratePayouts(ctx context.Context, period string) (dashboard.GenerateResult, error)
	UpdatePayoutStatus(ctx context.Context, id, status string) error
	DeletePayout(ctx context.Context, id string) error
}

type Service struct {
	src     PayoutSource
	payouts *store.Store[dashboard.CommissionPayout]
	logger  *zap.Logger
}

func New(src PayoutSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{src: src, payouts: store.New[dashboard.CommissionPayout](), logger: logger}
}

// Generate asks the remote API to compute payouts for period. On success
// the payout list is reloaded; on failure it is left exactly as it was and
// the server's message is returned.
func (s *Service) Generate(ctx context.Context, period string) (dashboard.GenerateResult, error) {
	period = strings.TrimSpace(period)
	if period == "" {
		return dashboard.GenerateResult{}, ErrPeriodRequired
	}

	res, err := s.src.GeneratePayouts(ctx, period)
	if err != nil {
		s.logger.Info("commission: generate rejected", zap.String("period", period), zap.Error(err))
		return dashboard.GenerateResult{}, err
	}
	s.logger.Info("commission: generated",
		zap.String("period", period), zap.Int("count", res.GeneratedCount))

	if _, err := s.reload(ctx); err != nil {
		s.logger.Warn("commission: reload after generate failed", zap.Error(err))
	}
	return res, nil
}

// List returns the cached payouts, loading them on first use or when
// refresh is set.
func (s *Service) List(ctx context.Context, refresh bool) ([]dashboard.CommissionPayout, error) {
	if !refresh && s.payouts.Loaded() {
		return s.payouts.List(), nil
	}
	return s.reload(ctx)
}

// Cached returns the current copy without touching the network.
func (s *Service) Cached() []dashboard.CommissionPayout { return s.payouts.List() }

func (s *Service) UpdateStatus(ctx context.Context, id, status string) error {
	if err := s.src.UpdatePayoutStatus(ctx, id, status); err != nil {
		return err
	}
	_, err := s.reload(ctx)
	return err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.src.DeletePayout(ctx, id); err != nil {
		return err
	}
	_, err := s.reload(ctx)
	return err
}

func (s *Service) reload(ctx context.Context) ([]dashboard.CommissionPayout, error) {
	items, err := s.src.FetchCommissionPayouts(ctx)
	if err != nil {
		return nil, err
	}
	s.payouts.Replace(items)
	return s.payouts.List(), nil
}
