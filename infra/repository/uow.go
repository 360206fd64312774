package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/mhaefliger/grocery/pkg/repository"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Repositories are always resolved against the transaction session, so every
// operation inside Do shares one atomic scope.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs the given function in a transaction boundary, providing a UoW whose
// repositories use the transaction session. When fn returns an error the
// transaction rolls back and the error is returned unchanged.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

// session returns the transaction session when inside Do, the base session
// otherwise (for plain reads that need no transaction).
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// ReceiptRepository returns a receipt repository bound to the current session.
func (u *UoW) ReceiptRepository() (repository.ReceiptRepository, error) {
	return NewReceiptRepository(u.session()), nil
}

// ItemRepository returns an item repository bound to the current session.
func (u *UoW) ItemRepository() (repository.ItemRepository, error) {
	return NewItemRepository(u.session()), nil
}

// CategoryRepository returns a category repository bound to the current session.
func (u *UoW) CategoryRepository() (repository.CategoryRepository, error) {
	return NewCategoryRepository(u.session()), nil
}

// StoreRepository returns a store repository bound to the current session.
func (u *UoW) StoreRepository() (repository.StoreRepository, error) {
	return NewStoreRepository(u.session()), nil
}
