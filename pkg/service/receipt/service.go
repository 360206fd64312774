// Package receipt implements the persistence workflow for receipt
// submissions: one save or update is exactly one transaction that resolves
// referenced categories and stores (creating them lazily), computes the
// derived price fields for every item, and commits all rows together or none
// of them.
package receipt

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mhaefliger/grocery/pkg/domain"
	receiptdomain "github.com/mhaefliger/grocery/pkg/domain/receipt"
	"github.com/mhaefliger/grocery/pkg/dto"
	"github.com/mhaefliger/grocery/pkg/repository"
	"github.com/mhaefliger/grocery/pkg/unit"
)

// Service provides the receipt business operations over a unit of work.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// Save validates and persists a receipt submission atomically. Validation
// failures return before any transaction is opened. On success the persisted
// receipt comes back with its generated id, computed totals and items.
func (s *Service) Save(ctx context.Context, payload receiptdomain.Payload) (*dto.ReceiptRead, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	logger := s.logger.With("store", payload.Store, "items", len(payload.Items))
	var created *dto.ReceiptRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		categoryIDs, err := s.resolveCategoriesAndStore(ctx, uow, &payload)
		if err != nil {
			return err
		}

		receiptRepo, err := uow.ReceiptRepository()
		if err != nil {
			return err
		}
		header, err := receiptRepo.Create(ctx, dto.ReceiptCreate{
			Date:        payload.Date,
			Store:       payload.Store,
			Currency:    payload.Currency.String(),
			TotalAmount: payload.TotalAmount(),
			Notes:       optional(payload.Notes),
		})
		if err != nil {
			return err
		}

		if err := s.createItems(ctx, uow, header.ID, &payload, categoryIDs); err != nil {
			return err
		}

		created, err = receiptRepo.Get(ctx, header.ID)
		return err
	})
	if err != nil {
		logger.Error("saving receipt failed", "error", err)
		return nil, err
	}
	logger.Info("receipt saved", "id", created.ID, "total", created.TotalAmount)
	return created, nil
}

// Update replaces an existing receipt atomically: the header is overwritten
// and the full item set is deleted and recreated from the payload. Returns
// domain.ErrNotFound (before any mutation) when the receipt does not exist.
func (s *Service) Update(ctx context.Context, id uint, payload receiptdomain.Payload) (*dto.ReceiptRead, error) {
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	logger := s.logger.With("id", id, "store", payload.Store, "items", len(payload.Items))
	var updated *dto.ReceiptRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		receiptRepo, err := uow.ReceiptRepository()
		if err != nil {
			return err
		}
		if _, err := receiptRepo.Get(ctx, id); err != nil {
			return err
		}

		categoryIDs, err := s.resolveCategoriesAndStore(ctx, uow, &payload)
		if err != nil {
			return err
		}

		if err := receiptRepo.Update(ctx, id, dto.ReceiptUpdate{
			Date:        payload.Date,
			Store:       payload.Store,
			Currency:    payload.Currency.String(),
			TotalAmount: payload.TotalAmount(),
			Notes:       optional(payload.Notes),
		}); err != nil {
			return err
		}

		itemRepo, err := uow.ItemRepository()
		if err != nil {
			return err
		}
		if err := itemRepo.DeleteByReceipt(ctx, id); err != nil {
			return err
		}
		if err := s.createItems(ctx, uow, id, &payload, categoryIDs); err != nil {
			return err
		}

		updated, err = receiptRepo.Get(ctx, id)
		return err
	})
	if err != nil {
		logger.Error("updating receipt failed", "error", err)
		return nil, err
	}
	logger.Info("receipt updated", "total", updated.TotalAmount)
	return updated, nil
}

// Get returns a receipt with its items.
func (s *Service) Get(ctx context.Context, id uint) (*dto.ReceiptRead, error) {
	repo, err := s.uow.ReceiptRepository()
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, id)
}

// List returns receipt summaries matching the filter.
func (s *Service) List(ctx context.Context, filter dto.ReceiptFilter) ([]*dto.ReceiptSummary, error) {
	repo, err := s.uow.ReceiptRepository()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, filter)
}

// Delete removes a receipt and, via the cascade, its items. Categories and
// stores stay untouched.
func (s *Service) Delete(ctx context.Context, id uint) error {
	repo, err := s.uow.ReceiptRepository()
	if err != nil {
		return err
	}
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("receipt deleted", "id", id)
	return nil
}

// DistinctItemNames lists every item name on record, for filter dropdowns.
func (s *Service) DistinctItemNames(ctx context.Context) ([]string, error) {
	repo, err := s.uow.ItemRepository()
	if err != nil {
		return nil, err
	}
	return repo.DistinctNames(ctx)
}

// DistinctStoreNames lists store names that appear on receipts.
func (s *Service) DistinctStoreNames(ctx context.Context) ([]string, error) {
	repo, err := s.uow.ReceiptRepository()
	if err != nil {
		return nil, err
	}
	return repo.DistinctStoreNames(ctx)
}

// resolveCategoriesAndStore resolves the category reference of every item and
// lazily creates the store. Category names are cached in a map local to this
// call, so two items naming the same new category within one save produce
// exactly one row; the cache never outlives the transaction.
func (s *Service) resolveCategoriesAndStore(
	ctx context.Context,
	uow repository.UnitOfWork,
	payload *receiptdomain.Payload,
) ([]*uint, error) {
	categoryRepo, err := uow.CategoryRepository()
	if err != nil {
		return nil, err
	}
	storeRepo, err := uow.StoreRepository()
	if err != nil {
		return nil, err
	}

	cache := make(map[string]uint)
	categoryIDs := make([]*uint, len(payload.Items))
	for i := range payload.Items {
		item := &payload.Items[i]
		if item.NewCategoryName == "" {
			categoryIDs[i] = item.CategoryID
			continue
		}

		id, ok := cache[item.NewCategoryName]
		if !ok {
			existing, err := categoryRepo.GetByName(ctx, item.NewCategoryName)
			switch {
			case err == nil:
				id = existing.ID
			case errors.Is(err, domain.ErrNotFound):
				created, err := categoryRepo.Create(ctx, dto.CategoryCreate{Name: item.NewCategoryName})
				if err != nil {
					return nil, err
				}
				id = created.ID
			default:
				return nil, err
			}
			cache[item.NewCategoryName] = id
		}
		resolved := id
		categoryIDs[i] = &resolved
	}

	if _, err := storeRepo.GetByName(ctx, payload.Store); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		if _, err := storeRepo.Create(ctx, dto.StoreCreate{Name: payload.Store}); err != nil {
			return nil, err
		}
	}

	return categoryIDs, nil
}

// createItems computes the derived price fields and writes one row per item.
func (s *Service) createItems(
	ctx context.Context,
	uow repository.UnitOfWork,
	receiptID uint,
	payload *receiptdomain.Payload,
	categoryIDs []*uint,
) error {
	itemRepo, err := uow.ItemRepository()
	if err != nil {
		return err
	}

	for i := range payload.Items {
		item := &payload.Items[i]
		pricePerUnit, err := unit.PricePerUnit(item.Quantity, item.TotalPrice)
		if err != nil {
			return err
		}
		normalizedPrice, normalizedUnit, err := unit.Normalize(item.Quantity, item.Unit, item.TotalPrice)
		if err != nil {
			return err
		}

		_, err = itemRepo.Create(ctx, dto.ItemCreate{
			ReceiptID:       receiptID,
			Name:            item.Name,
			Brand:           optional(item.Brand),
			CategoryID:      categoryIDs[i],
			Quantity:        item.Quantity,
			Unit:            item.Unit.String(),
			PricePerUnit:    pricePerUnit,
			TotalPrice:      item.TotalPrice,
			NormalizedPrice: normalizedPrice,
			NormalizedUnit:  normalizedUnit.String(),
			OriginalPrice:   item.OriginalPrice,
			Notes:           optional(item.Notes),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// optional maps an empty string to nil, matching the nullable text columns.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
