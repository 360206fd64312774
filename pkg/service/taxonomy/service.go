// Package taxonomy manages categories and stores directly. Most rows come
// into existence lazily during a receipt save; this service covers the
// explicit paths: listing for pickers and creating a category ahead of time
// with hierarchy, icon and color.
package taxonomy

import (
	"context"
	"log/slog"

	categorydomain "github.com/mhaefliger/grocery/pkg/domain/category"
	"github.com/mhaefliger/grocery/pkg/dto"
	"github.com/mhaefliger/grocery/pkg/repository"
)

// Service provides category and store operations over a unit of work.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// CreateCategory validates and creates a category. A duplicate name surfaces
// as domain.ErrAlreadyExists.
func (s *Service) CreateCategory(ctx context.Context, payload categorydomain.Payload) (*dto.CategoryRead, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	var created *dto.CategoryRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.CategoryRepository()
		if err != nil {
			return err
		}
		created, err = repo.Create(ctx, dto.CategoryCreate{
			Name:     payload.Name,
			ParentID: payload.ParentID,
			Icon:     optional(payload.Icon),
			Color:    optional(payload.Color),
		})
		return err
	})
	if err != nil {
		s.logger.Error("creating category failed", "name", payload.Name, "error", err)
		return nil, err
	}
	s.logger.Info("category created", "id", created.ID, "name", created.Name)
	return created, nil
}

// ListCategories returns categories ordered by name, optionally only the
// top-level ones.
func (s *Service) ListCategories(ctx context.Context, topLevelOnly bool) ([]*dto.CategoryRead, error) {
	repo, err := s.uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, topLevelOnly)
}

// ListStores returns all stores ordered by name.
func (s *Service) ListStores(ctx context.Context) ([]*dto.StoreRead, error) {
	repo, err := s.uow.StoreRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
