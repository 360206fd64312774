// Package analytics exposes the spending and price aggregations behind the
// dashboard. Every query is scoped to one currency so EUR and CHF amounts
// are never summed together.
package analytics

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mhaefliger/grocery/pkg/currency"
	"github.com/mhaefliger/grocery/pkg/domain"
	"github.com/mhaefliger/grocery/pkg/dto"
	"github.com/mhaefliger/grocery/pkg/repository"
)

// Service provides read-only analytics over committed receipt data.
type Service struct {
	repo   repository.AnalyticsRepository
	logger *slog.Logger
}

// New creates a new Service.
func New(repo repository.AnalyticsRepository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CategorySpending returns total spending per category.
func (s *Service) CategorySpending(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.CategorySpendingRow, error) {
	if err := checkCurrency(filter); err != nil {
		return nil, err
	}
	return s.repo.CategorySpending(ctx, filter)
}

// MonthlySpending returns spending per YYYY-MM month and category.
func (s *Service) MonthlySpending(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.MonthlySpendingRow, error) {
	if err := checkCurrency(filter); err != nil {
		return nil, err
	}
	return s.repo.MonthlySpending(ctx, filter)
}

// StoreComparison returns normalized-price statistics per store.
func (s *Service) StoreComparison(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.StoreComparisonRow, error) {
	if err := checkCurrency(filter); err != nil {
		return nil, err
	}
	return s.repo.StoreComparison(ctx, filter)
}

// PriceTrends returns normalized-price observations over time for the
// selected items.
func (s *Service) PriceTrends(ctx context.Context, filter dto.AnalyticsFilter) ([]dto.PriceTrendRow, error) {
	if err := checkCurrency(filter); err != nil {
		return nil, err
	}
	return s.repo.PriceTrends(ctx, filter)
}

func checkCurrency(filter dto.AnalyticsFilter) error {
	if !currency.IsSupported(currency.Code(filter.Currency)) {
		return fmt.Errorf("%w: currency must be one of %v, got %q",
			domain.ErrValidation, currency.ListSupported(), filter.Currency)
	}
	return nil
}
